package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mentepro/utils"
)

// HealthHandler handles GET /health with the latest monitor snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
