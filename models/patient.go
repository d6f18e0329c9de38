package models

import "time"

// Patient status values.
const (
	PatientActive   = "active"
	PatientInactive = "inactive"
)

// Patient represents a clinic patient record.
type Patient struct {
	ID               string    `bson:"id" json:"id"`
	Name             string    `bson:"name" json:"name"`
	Email            string    `bson:"email" json:"email"`
	Phone            string    `bson:"phone" json:"phone"`
	BirthDate        string    `bson:"birth_date" json:"birthDate"` // "YYYY-MM-DD"
	CPF              string    `bson:"cpf,omitempty" json:"cpf,omitempty"`
	Address          string    `bson:"address,omitempty" json:"address,omitempty"`
	EmergencyContact string    `bson:"emergency_contact,omitempty" json:"emergencyContact,omitempty"`
	Status           string    `bson:"status" json:"status"`
	Notes            string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updatedAt"`
}
