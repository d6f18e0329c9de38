package models

import "time"

// Progress metrics tracked per session, each rated 1-10.
const (
	MetricMood       = "mood"
	MetricAnxiety    = "anxiety"
	MetricProgress   = "progress"
	MetricMedication = "medication"
)

// SessionRecord is a clinical note for a single therapy session.
type SessionRecord struct {
	ID                  string    `bson:"id" json:"id"`
	PatientID           string    `bson:"patient_id" json:"patientId"`
	PatientName         string    `bson:"patient_name" json:"patientName"`
	SessionDate         string    `bson:"session_date" json:"sessionDate"` // "YYYY-MM-DD"
	SessionTime         string    `bson:"session_time" json:"sessionTime"` // "HH:MM"
	SessionType         string    `bson:"session_type" json:"sessionType"`
	SessionDuration     int       `bson:"session_duration" json:"sessionDuration"`
	MoodLevel           int       `bson:"mood_level" json:"moodLevel"`
	AnxietyLevel        int       `bson:"anxiety_level" json:"anxietyLevel"`
	ProgressLevel       int       `bson:"progress_level" json:"progressLevel"`
	MedicationAdherence int       `bson:"medication_adherence" json:"medicationAdherence"`
	Objectives          string    `bson:"objectives,omitempty" json:"objectives,omitempty"`
	Notes               string    `bson:"notes" json:"notes"`
	Behavior            string    `bson:"behavior,omitempty" json:"behavior,omitempty"`
	Techniques          string    `bson:"techniques,omitempty" json:"techniques,omitempty"`
	Interventions       string    `bson:"interventions,omitempty" json:"interventions,omitempty"`
	MedicationNotes     string    `bson:"medication_notes,omitempty" json:"medicationNotes,omitempty"`
	Homework            string    `bson:"homework,omitempty" json:"homework,omitempty"`
	NextSessionPlan     string    `bson:"next_session_plan,omitempty" json:"nextSessionPlan,omitempty"`
	TreatmentGoals      string    `bson:"treatment_goals,omitempty" json:"treatmentGoals,omitempty"`
	Tags                string    `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt           time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt           time.Time `bson:"updated_at" json:"updatedAt"`
}

// ProgressPoint is one sample of a patient progress metric over time.
type ProgressPoint struct {
	Date  string `json:"date"`
	Level int    `json:"level"`
}
