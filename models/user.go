package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// PlaceholderPhone is the default contact value for accounts that never set
// a phone number. Booking is refused while the phone still holds it.
const PlaceholderPhone = "0000000000"

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"unique;not null"`
	Phone     string    `json:"phone" gorm:"not null;default:0000000000"`
	Password  string    `json:"password,omitempty" gorm:"not null"`
	Pet       string    `json:"pet"`
	AboutPet  string    `json:"about_pet"`
	Gender    string    `json:"gender"`
	DOB       string    `json:"dob"`
	Address   Address   `json:"address" gorm:"type:jsonb"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// PrepareGive strips the credential before the record leaves the API.
func (u *User) PrepareGive() {
	u.Password = ""
}

// Address is the two-line clinic/home address stored as jsonb.
type Address struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
}

func (a Address) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *Address) Scan(value interface{}) error {
	if value == nil {
		*a = Address{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return fmt.Errorf("unsupported type for address: %T", value)
	}
}

type UserClaims struct {
	UserID uint   `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
