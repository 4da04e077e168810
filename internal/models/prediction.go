package models

import "time"

// VitalsInput carries the measurements supplied for a single prediction.
// It is not persisted on its own; the prediction row stores a snapshot of it.
type VitalsInput struct {
	PatientID   int64   `json:"patient_id"`
	Age         float64 `json:"age"`
	BMI         float64 `json:"bmi"`
	Glucose     float64 `json:"glucose"`
	BPSystolic  int     `json:"bp_systolic"`
	Cholesterol float64 `json:"cholesterol"`
	Symptoms    string  `json:"symptoms"`
}

// Prediction defines the structure for stored prediction results, including
// the vitals snapshot captured at prediction time.
type Prediction struct {
	ID          int64     `db:"id" json:"id"`
	PatientID   int64     `db:"patient_id" json:"patient_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	RiskScore   float64   `db:"risk_score" json:"risk_score"`
	RiskLabel   string    `db:"risk_label" json:"risk_label"`
	Age         float64   `db:"age" json:"age"`
	BMI         float64   `db:"bmi" json:"bmi"`
	Glucose     float64   `db:"glucose" json:"glucose"`
	BPSystolic  int       `db:"bp_systolic" json:"bp_systolic"`
	Cholesterol float64   `db:"cholesterol" json:"cholesterol"`
	Symptoms    string    `db:"symptoms" json:"symptoms"`
}
