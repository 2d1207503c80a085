package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Doctor struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	Name          string     `json:"name" gorm:"not null"`
	Email         string     `json:"email" gorm:"unique;not null"`
	Password      string     `json:"password,omitempty" gorm:"not null"`
	Speciality    string     `json:"speciality"`
	Degree        string     `json:"degree"`
	Experience    string     `json:"experience"`
	About         string     `json:"about"`
	Fees          float64    `json:"fees" gorm:"not null"`
	ClinicName    string     `json:"clinic_name"`
	Address       Address    `json:"address" gorm:"type:jsonb"`
	Location      string     `json:"location"`
	// no column default: gorm drops zero-value fields from the insert when
	// one is set, so Available=false would be stored as the default
	Available     bool       `json:"available" gorm:"not null"`
	SlotsBooked   SlotLedger `json:"slots_booked" gorm:"type:jsonb"`
	LedgerVersion uint       `json:"-" gorm:"not null;default:0"`
	Image         string     `json:"image"`
	CreatedAt     time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// PrepareGive strips fields the public directory must not expose.
func (d *Doctor) PrepareGive() {
	d.Password = ""
	d.Email = ""
}

type DoctorClaims struct {
	DoctorID uint   `json:"did"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}
