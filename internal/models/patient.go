package models

import "time"

// Gender codes accepted for a patient record.
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)

// Patient defines the structure for patient records. Records are immutable
// after creation and are never deleted.
type Patient struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	DateOfBirth time.Time `db:"date_of_birth" json:"date_of_birth"`
	Gender      string    `db:"gender" json:"gender"`
}
