package handlers

import (
	userRepo "mentepro/database/repository/user"
)

// HandlerBundle groups the handlers and the repositories the route
// middleware needs, so route registration takes a single argument.
type HandlerBundle struct {
	Appointments *AppointmentHandler
	Patients     *PatientHandler
	Payments     *PaymentHandler
	Records      *RecordHandler
	Auth         *AuthHandler

	UserRepo userRepo.UserRepository
}
