package models

import "time"

// Appointment status values.
const (
	StatusScheduled = "scheduled"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no-show"
)

// AppointmentStatuses lists every recognized status value.
var AppointmentStatuses = []string{
	StatusScheduled,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// Appointment represents a scheduled session between the clinic and a patient.
type Appointment struct {
	ID            string    `bson:"id" json:"id"`
	PatientID     string    `bson:"patient_id" json:"patientId"`
	PatientName   string    `bson:"patient_name" json:"patientName"`
	Date          string    `bson:"date" json:"date"`         // "YYYY-MM-DD"
	Time          string    `bson:"time" json:"time"`         // "HH:MM", local time of day
	Duration      int       `bson:"duration" json:"duration"` // minutes
	Type          string    `bson:"type" json:"type"`
	Status        string    `bson:"status" json:"status"`
	PaymentStatus string    `bson:"payment_status" json:"paymentStatus"`
	PaymentAmount float64   `bson:"payment_amount,omitempty" json:"paymentAmount,omitempty"`
	PaymentMethod string    `bson:"payment_method,omitempty" json:"paymentMethod,omitempty"`
	PaymentDate   string    `bson:"payment_date,omitempty" json:"paymentDate,omitempty"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// AppointmentInput carries the fields a caller may set when creating or
// validating an appointment. ID is only consulted by validation, to exclude
// the appointment itself from conflict checks on self-update.
type AppointmentInput struct {
	ID            string `json:"id,omitempty"`
	PatientID     string `json:"patientId"`
	PatientName   string `json:"patientName"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Duration      int    `json:"duration"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	Notes         string `json:"notes"`
}

// AppointmentUpdate is a patch document for an existing appointment.
// Nil fields are left untouched.
type AppointmentUpdate struct {
	PatientID     *string  `json:"patientId,omitempty"`
	PatientName   *string  `json:"patientName,omitempty"`
	Date          *string  `json:"date,omitempty"`
	Time          *string  `json:"time,omitempty"`
	Duration      *int     `json:"duration,omitempty"`
	Type          *string  `json:"type,omitempty"`
	Status        *string  `json:"status,omitempty"`
	PaymentStatus *string  `json:"paymentStatus,omitempty"`
	PaymentAmount *float64 `json:"paymentAmount,omitempty"`
	PaymentMethod *string  `json:"paymentMethod,omitempty"`
	PaymentDate   *string  `json:"paymentDate,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

// AppointmentResult reports the outcome of a mutating scheduler operation.
// Persisted is false when the in-memory collection was changed but the
// backing store write failed and only the local snapshot holds the change.
type AppointmentResult struct {
	Success     bool         `json:"success"`
	Persisted   bool         `json:"persisted"`
	Appointment *Appointment `json:"appointment,omitempty"`
	Error       string       `json:"error,omitempty"`
}

// ValidationResult accumulates every violated constraint.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// AppointmentStatistics is a snapshot aggregation over the collection.
type AppointmentStatistics struct {
	Today        int            `json:"today"`
	Week         int            `json:"week"`
	Pending      int            `json:"pending"`
	Completed    int            `json:"completed"`
	Cancelled    int            `json:"cancelled"`
	NoShow       int            `json:"noShow"`
	Total        int            `json:"total"`
	StatusCounts map[string]int `json:"statusCounts"`
}
