package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/FlixonCoder/Ketpa-backend/authentication"
	"github.com/FlixonCoder/Ketpa-backend/models"
)

// maxLedgerRetries bounds how often a booking or cancellation retries the
// read-check-commit cycle after losing the ledger compare-and-swap.
const maxLedgerRetries = 3

type BookAppointmentRequest struct {
	DoctorID uint   `json:"docId" binding:"required"`
	SlotDate string `json:"slotDate" binding:"required"`
	SlotTime string `json:"slotTime" binding:"required"`
}

// BookAppointment reserves a slot in the doctor's ledger and persists the
// appointment, both inside one transaction. The ledger write carries a
// version guard, so two racing requests for the same slot cannot both
// commit; the loser re-reads and then sees the slot as taken.
func (s *Server) BookAppointment(c *gin.Context) {
	userID := c.GetUint(authentication.CtxUserID)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Missing Details")
		return
	}

	var appt models.Appointment
	var err error
	for attempt := 0; attempt < maxLedgerRetries; attempt++ {
		appt, err = s.bookOnce(userID, req)
		if !errors.Is(err, errLedgerConflict) {
			break
		}
	}

	switch {
	case err == nil:
		go s.sendConfirmation(appt)
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Appointment Booked", "appointment": appt})
	case errors.Is(err, errNotFound):
		fail(c, http.StatusNotFound, "Doctor not found")
	case errors.Is(err, errDoctorUnavailable):
		fail(c, http.StatusBadRequest, "Doctor not available")
	case errors.Is(err, errMissingContact):
		fail(c, http.StatusBadRequest, "To book an appointment add contact number to profile")
	case errors.Is(err, errSlotUnavailable), errors.Is(err, errLedgerConflict):
		fail(c, http.StatusBadRequest, "Slot not available")
	default:
		storageFail(c)
	}
}

// bookOnce runs one attempt of the booking workflow in a transaction.
func (s *Server) bookOnce(userID uint, req BookAppointmentRequest) (models.Appointment, error) {
	var appt models.Appointment

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var doctor models.Doctor
		if err := tx.First(&doctor, req.DoctorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errNotFound
			}
			return err
		}
		if !doctor.Available {
			return errDoctorUnavailable
		}

		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errNotFound
			}
			return err
		}
		if user.Phone == "" || user.Phone == models.PlaceholderPhone {
			return errMissingContact
		}

		if doctor.SlotsBooked.IsBooked(req.SlotDate, req.SlotTime) {
			return errSlotUnavailable
		}
		if err := doctor.SlotsBooked.Book(req.SlotDate, req.SlotTime); err != nil {
			return errSlotUnavailable
		}

		appt = models.Appointment{
			BookingRef: uuid.NewString(),
			UserID:     user.ID,
			DoctorID:   doctor.ID,
			UserData: models.UserSnapshot{
				ID:    user.ID,
				Name:  user.Name,
				Email: user.Email,
				Phone: user.Phone,
				Pet:   user.Pet,
				Image: user.Image,
				Addr:  user.Address,
			},
			DocData: models.DoctorSnapshot{
				ID:         doctor.ID,
				Name:       doctor.Name,
				Speciality: doctor.Speciality,
				ClinicName: doctor.ClinicName,
				Address:    doctor.Address,
				Location:   doctor.Location,
				Fees:       doctor.Fees,
				Image:      doctor.Image,
			},
			Amount:   doctor.Fees,
			SlotDate: req.SlotDate,
			SlotTime: req.SlotTime,
		}
		if err := tx.Create(&appt).Error; err != nil {
			return err
		}

		return commitLedger(tx, &doctor)
	})

	return appt, err
}

// ListAppointments returns the caller's booking history, newest first.
func (s *Server) ListAppointments(c *gin.Context) {
	userID := c.GetUint(authentication.CtxUserID)

	var appointments []models.Appointment
	if err := s.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&appointments).Error; err != nil {
		storageFail(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "appointments": appointments})
}

type CancelAppointmentRequest struct {
	AppointmentID uint `json:"appointmentId" binding:"required"`
}

// CancelAppointment marks the caller's appointment cancelled and releases
// the slot. Cancelling an already cancelled appointment succeeds without
// touching the ledger again.
func (s *Server) CancelAppointment(c *gin.Context) {
	userID := c.GetUint(authentication.CtxUserID)

	var req CancelAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Missing Details")
		return
	}

	var err error
	for attempt := 0; attempt < maxLedgerRetries; attempt++ {
		err = s.cancelOnce(userID, req.AppointmentID)
		if !errors.Is(err, errLedgerConflict) {
			break
		}
	}

	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Appointment Cancelled"})
	case errors.Is(err, errAlreadyCancelled):
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Appointment already cancelled"})
	case errors.Is(err, errNotFound):
		fail(c, http.StatusNotFound, "Appointment not found")
	case errors.Is(err, errUnauthorized):
		fail(c, http.StatusUnauthorized, "Unauthorized action")
	default:
		storageFail(c)
	}
}

// cancelOnce runs one attempt of the cancellation workflow in a transaction.
func (s *Server) cancelOnce(userID, appointmentID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var appt models.Appointment
		if err := tx.First(&appt, appointmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errNotFound
			}
			return err
		}

		if appt.UserID != userID {
			return errUnauthorized
		}
		if appt.Cancelled {
			return errAlreadyCancelled
		}

		if err := tx.Model(&models.Appointment{}).Where("id = ?", appt.ID).Update("cancelled", true).Error; err != nil {
			return err
		}

		var doctor models.Doctor
		if err := tx.First(&doctor, appt.DoctorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// doctor record gone; nothing to release
				return nil
			}
			return err
		}

		doctor.SlotsBooked.Release(appt.SlotDate, appt.SlotTime)
		return commitLedger(tx, &doctor)
	})
}

// commitLedger writes the mutated ledger back with a compare-and-swap on
// the version column. A zero row count means another request committed
// first and the caller must redo its read and checks.
func commitLedger(tx *gorm.DB, doctor *models.Doctor) error {
	res := tx.Model(&models.Doctor{}).
		Where("id = ? AND ledger_version = ?", doctor.ID, doctor.LedgerVersion).
		Updates(map[string]interface{}{
			"slots_booked":   doctor.SlotsBooked,
			"ledger_version": doctor.LedgerVersion + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errLedgerConflict
	}
	return nil
}

// sendConfirmation delivers the booking confirmation. Best effort: failures
// are logged and never surface to the booking response.
func (s *Server) sendConfirmation(appt models.Appointment) {
	if s.Mail == nil {
		return
	}
	if err := s.Mail.Send(appt.UserData.Email, "Your Ketpa appointment is confirmed", &appt); err != nil {
		log.Printf("confirmation mail for booking %s: %v", appt.BookingRef, err)
	}
}
