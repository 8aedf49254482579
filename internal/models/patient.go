package models

import (
	"errors"
	"strings"
)

// UnassignedDoctorID marks a patient without a doctor.
const UnassignedDoctorID int64 = 0

type Patient struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Ailment  string `json:"ailment"`
	DoctorID int64  `json:"doctor_id"`
}

// PatientView is a patient as listed, with the name of the referenced doctor
// when that doctor exists.
type PatientView struct {
	Patient
	DoctorName *string `json:"doctor_name,omitempty"`
}

type PatientInput struct {
	Name     string `json:"name"`
	Ailment  string `json:"ailment"`
	DoctorID int64  `json:"doctor_id"`
}

func (in PatientInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("name is required")
	}
	if in.DoctorID < 0 {
		return errors.New("doctor_id must not be negative")
	}
	return nil
}
