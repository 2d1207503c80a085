package mailer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/FlixonCoder/Ketpa-backend/models"
)

// receiptPDF renders the booking receipt attached to the confirmation mail.
func receiptPDF(appt *models.Appointment) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(10, 143, 60)
	pdf.CellFormat(0, 10, "Ketpa - Veterinary Appointment Booking", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 7, "support@ketpa.com", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Booking Receipt", "1", 1, "C", false, 0, "")
	addDetail(pdf, "Booking ID", appt.BookingRef)
	addDetail(pdf, "Patient Name", appt.UserData.Name)
	addDetail(pdf, "Pet", appt.UserData.Pet)
	addDetail(pdf, "Doctor Name", appt.DocData.Name)
	addDetail(pdf, "Speciality", appt.DocData.Speciality)
	addDetail(pdf, "Clinic", appt.DocData.ClinicName)
	addDetail(pdf, "Date", strings.ReplaceAll(appt.SlotDate, "_", "-"))
	addDetail(pdf, "Time Slot", appt.SlotTime)

	pdf.CellFormat(0, 10, "Charges", "1", 1, "C", false, 0, "")
	addDetail(pdf, "Consultation Fee", fmt.Sprintf("%.2f", appt.Amount))

	pdf.SetFont("Arial", "", 10)
	pdf.SetY(pdf.GetY() + 12)
	pdf.CellFormat(0, 10, "This is a computer generated receipt", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// addDetail adds a label/value row to the receipt.
func addDetail(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(45, 10, label, "1", 0, "", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 10, value, "1", 1, "", false, 0, "")
}
