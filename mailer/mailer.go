// Package mailer formats and delivers the booking confirmation email with
// its "Add to Calendar" link and attached PDF receipt.
package mailer

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-gomail/gomail"

	"github.com/FlixonCoder/Ketpa-backend/models"
)

// Sender is what the booking workflow depends on. Delivery is best effort;
// the workflow logs errors and never rolls a booking back over them.
type Sender interface {
	Send(to, subject string, appt *models.Appointment) error
}

// Config holds the SMTP credentials plus the static values substituted into
// the confirmation template.
type Config struct {
	Host     string
	Port     int
	From     string
	Password string

	FrontendURL string
	City        string
	Timezone    string
}

type Mailer struct {
	cfg  Config
	dial func(m ...*gomail.Message) error
}

func New(cfg Config) *Mailer {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.From, cfg.Password)
	return &Mailer{cfg: cfg, dial: d.DialAndSend}
}

// Send formats the confirmation for the appointment and delivers it.
func (m *Mailer) Send(to, subject string, appt *models.Appointment) error {
	if appt == nil {
		return errors.New("appointment data missing")
	}

	calendarDate, err := CalendarDate(appt.SlotDate)
	if err != nil {
		return fmt.Errorf("format slot date: %w", err)
	}
	start, end, err := CalendarTime(appt.SlotTime)
	if err != nil {
		return fmt.Errorf("format slot time: %w", err)
	}

	appointmentsURL := m.cfg.FrontendURL + "/my-appointments"
	data := map[string]string{
		"patientName":        appt.UserData.Name,
		"dateFormatted":      strings.ReplaceAll(appt.SlotDate, "_", "-"),
		"timeFormatted":      appt.SlotTime,
		"timezone":           m.cfg.Timezone,
		"doctorName":         appt.DocData.Name,
		"clinicName":         appt.DocData.ClinicName,
		"addressLine1":       appt.DocData.Address.Line1,
		"addressLine2":       appt.DocData.Address.Line2,
		"bookingId":          appt.BookingRef,
		"viewAppointmentUrl": appointmentsURL,
		"addToCalendarUrl":   CalendarURL(calendarDate, start, end),
		"mapsUrl":            appt.DocData.Location,
		"rescheduleUrl":      appointmentsURL,
		"year":               strconv.Itoa(time.Now().Year()),
		"city":               m.cfg.City,
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.cfg.From, "Ketpa Appointments")
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", FillTemplate(confirmationTemplate, data))

	if pdf, err := receiptPDF(appt); err != nil {
		log.Printf("skipping receipt attachment: %v", err)
	} else {
		msg.Attach("booking-receipt.pdf", gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(pdf)
			return err
		}))
	}

	if err := m.dial(msg); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	return nil
}
