package model

import (
	"github.com/google/uuid"
)

// PatientSex is a closed set; the patients.sex column is a Postgres enum with
// the same two values.
type PatientSex string

const (
	SexMale   PatientSex = "male"
	SexFemale PatientSex = "female"
)

// Valid reports whether s is one of the allowed values.
func (s PatientSex) Valid() bool {
	switch s {
	case SexMale, SexFemale:
		return true
	}
	return false
}

type Patient struct {
	Base
	ClinicID    uuid.UUID  `db:"clinic_id" json:"clinic_id"`
	Name        string     `db:"name" json:"name"`
	Email       string     `db:"email" json:"email"`
	PhoneNumber string     `db:"phone_number" json:"phone_number"`
	Sex         PatientSex `db:"sex" json:"sex"`
}

type CreatePatientRequest struct {
	Name        string     `json:"name" binding:"required"`
	Email       string     `json:"email" binding:"required,email"`
	PhoneNumber string     `json:"phone_number" binding:"required"`
	Sex         PatientSex `json:"sex" binding:"required,oneof=male female"`
}

type UpdatePatientRequest struct {
	Name        *string     `json:"name"`
	Email       *string     `json:"email" binding:"omitempty,email"`
	PhoneNumber *string     `json:"phone_number"`
	Sex         *PatientSex `json:"sex" binding:"omitempty,oneof=male female"`
}
