package model

import (
	"github.com/google/uuid"
)

// Doctor belongs to exactly one clinic. Availability is a weekly window: a
// day-of-week range (0=Sunday..6=Saturday) and a time-of-day range, both
// inclusive. Times are stored as "HH:MM:SS" strings matching the TIME column.
type Doctor struct {
	Base
	ClinicID                uuid.UUID `db:"clinic_id" json:"clinic_id"`
	Name                    string    `db:"name" json:"name"`
	AvatarImageURL          *string   `db:"avatar_image_url" json:"avatar_image_url,omitempty"`
	Specialty               string    `db:"specialty" json:"specialty"`
	AvailableFromWeekDay    int       `db:"available_from_week_day" json:"available_from_week_day"`
	AvailableToWeekDay      int       `db:"available_to_week_day" json:"available_to_week_day"`
	AvailableFromTime       string    `db:"available_from_time" json:"available_from_time"`
	AvailableToTime         string    `db:"available_to_time" json:"available_to_time"`
	AppointmentPriceInCents int       `db:"appointment_price_in_cents" json:"appointment_price_in_cents"`
}

type CreateDoctorRequest struct {
	Name                    string  `json:"name" binding:"required"`
	AvatarImageURL          *string `json:"avatar_image_url"`
	Specialty               string  `json:"specialty" binding:"required"`
	AvailableFromWeekDay    int     `json:"available_from_week_day" binding:"min=0,max=6"`
	AvailableToWeekDay      int     `json:"available_to_week_day" binding:"min=0,max=6"`
	AvailableFromTime       string  `json:"available_from_time" binding:"required,timeofday"`
	AvailableToTime         string  `json:"available_to_time" binding:"required,timeofday"`
	AppointmentPriceInCents int     `json:"appointment_price_in_cents" binding:"min=0"`
}

type UpdateDoctorRequest struct {
	Name                    *string `json:"name"`
	AvatarImageURL          *string `json:"avatar_image_url"`
	Specialty               *string `json:"specialty"`
	AvailableFromWeekDay    *int    `json:"available_from_week_day" binding:"omitempty,min=0,max=6"`
	AvailableToWeekDay      *int    `json:"available_to_week_day" binding:"omitempty,min=0,max=6"`
	AvailableFromTime       *string `json:"available_from_time" binding:"omitempty,timeofday"`
	AvailableToTime         *string `json:"available_to_time" binding:"omitempty,timeofday"`
	AppointmentPriceInCents *int    `json:"appointment_price_in_cents" binding:"omitempty,min=0"`
}
