package scheduler

import (
	"fmt"
	"strings"
)

// ValidationError reports one or more violated appointment constraints.
// Errors holds every accumulated message, in check order.
type ValidationError struct {
	Errors []string
}

func (e ValidationError) Error() string {
	return strings.Join(e.Errors, "; ")
}

// NotFoundError indicates an operation referenced an appointment ID that is
// not in the collection.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("agendamento %s não encontrado", e.ID)
}
