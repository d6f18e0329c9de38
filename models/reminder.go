package models

// ReminderPayload is the message carried by a scheduled appointment reminder task.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	PatientID     string `json:"patientId"`
	PatientName   string `json:"patientName"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	FireDate      string `json:"fireDate"`
}
