package model

import (
	"time"

	"github.com/google/uuid"
)

// Clinic is the tenancy root: doctors, patients and appointments are scoped
// to exactly one clinic.
type Clinic struct {
	Base
	Name string `db:"name" json:"name"`
}

// UserClinic links a user to a clinic they are a member of.
type UserClinic struct {
	UserID    string    `db:"user_id" json:"user_id"`
	ClinicID  uuid.UUID `db:"clinic_id" json:"clinic_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type CreateClinicRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type UpdateClinicRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}
