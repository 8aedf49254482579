package models

import (
	"errors"
	"strings"
)

type Doctor struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// DoctorInput carries the mutable fields of a doctor on create and update.
type DoctorInput struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

func (in DoctorInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}
