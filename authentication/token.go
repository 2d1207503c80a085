package authentication

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/FlixonCoder/Ketpa-backend/models"
)

var ErrBadToken = errors.New("invalid token")

const tokenLifetime = 24 * time.Hour

// GenerateUserToken signs a token carrying the user id.
func GenerateUserToken(userID uint, email, secret string) (string, error) {
	claims := &models.UserClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// AuthenticateUser parses and verifies a user token.
func AuthenticateUser(signed, secret string) (*models.UserClaims, error) {
	var claims models.UserClaims
	token, err := jwt.ParseWithClaims(signed, &claims, keyFunc(secret))
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserID == 0 {
		return nil, ErrBadToken
	}
	return &claims, nil
}

// GenerateDoctorToken signs a token carrying the doctor id.
func GenerateDoctorToken(doctorID uint, email, secret string) (string, error) {
	claims := &models.DoctorClaims{
		DoctorID: doctorID,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// AuthenticateDoctor parses and verifies a doctor token.
func AuthenticateDoctor(signed, secret string) (*models.DoctorClaims, error) {
	var claims models.DoctorClaims
	token, err := jwt.ParseWithClaims(signed, &claims, keyFunc(secret))
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.DoctorID == 0 {
		return nil, ErrBadToken
	}
	return &claims, nil
}

func keyFunc(secret string) jwt.Keyfunc {
	return func(t *jwt.Token) (interface{}, error) {
		// block alg confusion
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadToken
		}
		return []byte(secret), nil
	}
}
