package models

import "time"

// Payment method values.
const (
	MethodCash      = "cash"
	MethodPix       = "pix"
	MethodCard      = "card"
	MethodInsurance = "insurance"
)

// Payment status values.
const (
	PaymentPaid    = "paid"
	PaymentPending = "pending"
	PaymentPartial = "partial"
)

// Payment is a manual payment record tied to an appointment.
type Payment struct {
	ID              string    `bson:"id" json:"id"`
	PatientID       string    `bson:"patient_id" json:"patientId"`
	PatientName     string    `bson:"patient_name" json:"patientName"`
	AppointmentID   string    `bson:"appointment_id" json:"appointmentId"`
	AppointmentDate string    `bson:"appointment_date" json:"appointmentDate"`
	AppointmentType string    `bson:"appointment_type" json:"appointmentType"`
	Amount          float64   `bson:"amount" json:"amount"`
	Method          string    `bson:"method" json:"method"`
	PaymentDate     string    `bson:"payment_date" json:"paymentDate"` // "YYYY-MM-DD"
	Status          string    `bson:"status" json:"status"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}

// ConsultationFees holds the configured price per session type.
type ConsultationFees struct {
	Standard  float64   `bson:"standard" json:"standard"`
	Return    float64   `bson:"return" json:"return"`
	Group     float64   `bson:"group" json:"group"`
	Online    float64   `bson:"online" json:"online"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// FinancialSummary aggregates payments for the current month.
type FinancialSummary struct {
	MonthlyRevenue float64 `json:"monthlyRevenue"`
	Pending        float64 `json:"pending"`
	Received       float64 `json:"received"`
}

// FinancialReport aggregates payments over an arbitrary period.
type FinancialReport struct {
	TotalReceived    float64            `json:"totalReceived"`
	TotalPending     float64            `json:"totalPending"`
	PaymentCount     int                `json:"paymentCount"`
	MethodsBreakdown map[string]float64 `json:"methodsBreakdown"`
}

// PaymentInput carries the fields needed to register or update a payment.
// Patient and appointment details are denormalized onto the record by the
// payment service.
type PaymentInput struct {
	PatientID     string  `json:"patientId"`
	AppointmentID string  `json:"appointmentId"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	PaymentDate   string  `json:"paymentDate"`
	Status        string  `json:"status"`
	Notes         string  `json:"notes"`
}
