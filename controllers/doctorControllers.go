package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/FlixonCoder/Ketpa-backend/authentication"
	"github.com/FlixonCoder/Ketpa-backend/models"
)

const (
	doctorListCacheKey = "doctors:list"
	doctorListCacheTTL = 5 * time.Minute
)

// ListDoctors returns the public doctor directory. Served from the redis
// cache when one is configured.
func (s *Server) ListDoctors(c *gin.Context) {
	if s.Cache != nil {
		if cached, err := s.Cache.Get(context.Background(), doctorListCacheKey).Result(); err == nil {
			var doctors []models.Doctor
			if err := json.Unmarshal([]byte(cached), &doctors); err == nil {
				c.JSON(http.StatusOK, gin.H{"success": true, "doctors": doctors})
				return
			}
		}
	}

	var doctors []models.Doctor
	if err := s.DB.Find(&doctors).Error; err != nil {
		storageFail(c)
		return
	}
	for i := range doctors {
		doctors[i].PrepareGive()
	}

	if s.Cache != nil {
		if payload, err := json.Marshal(doctors); err == nil {
			if err := s.Cache.Set(context.Background(), doctorListCacheKey, payload, doctorListCacheTTL).Err(); err != nil {
				log.Printf("doctor list cache set: %v", err)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "doctors": doctors})
}

// DoctorLogin verifies doctor credentials and returns a signed token.
func (s *Server) DoctorLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Missing Details")
		return
	}

	var doctor models.Doctor
	if err := s.DB.Where("email = ?", req.Email).First(&doctor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		storageFail(c)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(doctor.Password), []byte(req.Password)); err != nil {
		fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := authentication.GenerateDoctorToken(doctor.ID, doctor.Email, s.Config.JWTSecret)
	if err != nil {
		storageFail(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "message": "Login success."})
}

// ChangeAvailability toggles the caller's availability flag and drops the
// directory cache so the change shows up immediately.
func (s *Server) ChangeAvailability(c *gin.Context) {
	doctorID := c.GetUint(authentication.CtxDoctorID)

	var doctor models.Doctor
	if err := s.DB.First(&doctor, doctorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "Doctor not found")
			return
		}
		storageFail(c)
		return
	}

	if err := s.DB.Model(&doctor).Update("available", !doctor.Available).Error; err != nil {
		storageFail(c)
		return
	}

	if s.Cache != nil {
		if err := s.Cache.Del(context.Background(), doctorListCacheKey).Err(); err != nil {
			log.Printf("doctor list cache invalidate: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Availability Changed"})
}

// DoctorAppointments lists the appointments booked with the caller.
func (s *Server) DoctorAppointments(c *gin.Context) {
	doctorID := c.GetUint(authentication.CtxDoctorID)

	var appointments []models.Appointment
	if err := s.DB.Where("doctor_id = ?", doctorID).Order("created_at desc").Find(&appointments).Error; err != nil {
		storageFail(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "appointments": appointments})
}
