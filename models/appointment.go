package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Appointment is the durable record of one booking attempt. User and doctor
// data are denormalized at booking time so the confirmation mail and the
// history view survive later profile edits.
type Appointment struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	BookingRef string         `json:"booking_ref" gorm:"unique;not null"`
	UserID     uint           `json:"user_id" gorm:"not null;index"`
	DoctorID   uint           `json:"doctor_id" gorm:"not null;index"`
	UserData   UserSnapshot   `json:"user_data" gorm:"type:jsonb"`
	DocData    DoctorSnapshot `json:"doc_data" gorm:"type:jsonb"`
	Amount     float64        `json:"amount"`
	SlotDate   string         `json:"slot_date" gorm:"not null"`
	SlotTime   string         `json:"slot_time" gorm:"not null"`
	Cancelled  bool           `json:"cancelled" gorm:"default:false"`
	CreatedAt  time.Time      `json:"created_at" gorm:"autoCreateTime"`
}

// UserSnapshot is the user as seen at booking time, minus the credential.
type UserSnapshot struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone string  `json:"phone"`
	Pet   string  `json:"pet"`
	Image string  `json:"image"`
	Addr  Address `json:"address"`
}

// DoctorSnapshot is the doctor as seen at booking time, minus the credential
// and the slot ledger.
type DoctorSnapshot struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Speciality string  `json:"speciality"`
	ClinicName string  `json:"clinic_name"`
	Address    Address `json:"address"`
	Location   string  `json:"location"`
	Fees       float64 `json:"fees"`
	Image      string  `json:"image"`
}

func (s UserSnapshot) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *UserSnapshot) Scan(value interface{}) error {
	return scanJSON(value, s)
}

func (s DoctorSnapshot) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *DoctorSnapshot) Scan(value interface{}) error {
	return scanJSON(value, s)
}

func scanJSON(value, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported jsonb source type: %T", value)
	}
}
