package mailer

import (
	"strings"
	"testing"

	"github.com/go-gomail/gomail"

	"github.com/FlixonCoder/Ketpa-backend/models"
)

func TestCalendarDate(t *testing.T) {
	got, err := CalendarDate("05_09_2025")
	if err != nil {
		t.Fatalf("calendar date: %v", err)
	}
	if got != "20250905" {
		t.Fatalf("got %q, want %q", got, "20250905")
	}
}

func TestCalendarDateNoValidation(t *testing.T) {
	// impossible calendar dates pass through, only the shape matters
	got, err := CalendarDate("31_02_2030")
	if err != nil {
		t.Fatalf("calendar date: %v", err)
	}
	if got != "20300231" {
		t.Fatalf("got %q, want %q", got, "20300231")
	}

	if _, err := CalendarDate("2030-02-31"); err == nil {
		t.Fatal("expected error for malformed label")
	}
}

func TestCalendarTime(t *testing.T) {
	tests := []struct {
		label string
		start string
		end   string
	}{
		{"02:30 PM", "143000", "153000"},
		{"10:00 AM", "100000", "110000"},
		{"12:00 PM", "120000", "130000"},
		{"12:00 AM", "000000", "010000"},
		// the end boundary wraps past midnight without a date adjustment
		{"11:30 PM", "233000", "003000"},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			start, end, err := CalendarTime(tt.label)
			if err != nil {
				t.Fatalf("calendar time: %v", err)
			}
			if start != tt.start || end != tt.end {
				t.Fatalf("got (%q, %q), want (%q, %q)", start, end, tt.start, tt.end)
			}
		})
	}
}

func TestCalendarTimeMalformed(t *testing.T) {
	for _, label := range []string{"", "10:00", "10 AM", "ten:00 AM", "10:00 XM"} {
		if _, _, err := CalendarTime(label); err == nil {
			t.Errorf("expected error for %q", label)
		}
	}
}

func TestFillTemplate(t *testing.T) {
	tmpl := "Hi {{name}}, see Dr. {{doctorName}} at {{clinicName}}. Bye {{name}}."
	data := map[string]string{
		"name":       "Asha",
		"doctorName": "Rao",
		"clinicName": "",
	}

	got := FillTemplate(tmpl, data)
	want := "Hi Asha, see Dr. Rao at . Bye Asha."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFillTemplateUnknownPlaceholderKept(t *testing.T) {
	tmpl := "Hello {{name}}, ref {{bookingId}}"
	got := FillTemplate(tmpl, map[string]string{"name": "Asha"})
	want := "Hello Asha, ref {{bookingId}}"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCalendarURL(t *testing.T) {
	url := CalendarURL("20300101", "100000", "110000")

	if !strings.Contains(url, "dates=20300101/100000/20300101/110000") {
		t.Fatalf("boundaries missing from %q", url)
	}
	if !strings.Contains(url, "text=Ketpa%20Appointment") {
		t.Fatalf("encoded title missing from %q", url)
	}
	if !strings.HasPrefix(url, "https://calendar.google.com/calendar/render?action=TEMPLATE") {
		t.Fatalf("unexpected base in %q", url)
	}
}

func TestSendMissingAppointment(t *testing.T) {
	m := New(Config{Host: "localhost", Port: 587})
	if err := m.Send("user@test.com", "subject", nil); err == nil {
		t.Fatal("expected error for nil appointment")
	}
}

func TestSendDeliversFormattedMail(t *testing.T) {
	var delivered []*gomail.Message
	m := New(Config{
		From:        "clinic@ketpa.com",
		FrontendURL: "https://ketpa-frontend.vercel.app",
		City:        "Bangalore",
		Timezone:    "IST",
	})
	m.dial = func(msgs ...*gomail.Message) error {
		delivered = append(delivered, msgs...)
		return nil
	}

	appt := &models.Appointment{
		BookingRef: "bk-123",
		SlotDate:   "01_01_2030",
		SlotTime:   "10:00 AM",
		UserData:   models.UserSnapshot{Name: "Asha", Email: "asha@test.com"},
		DocData:    models.DoctorSnapshot{Name: "Rao", ClinicName: "Ketpa Indiranagar"},
	}
	if err := m.Send("asha@test.com", "Your Ketpa appointment is confirmed", appt); err != nil {
		t.Fatalf("send: %v", err)
	}

	if len(delivered) != 1 {
		t.Fatalf("delivered %d messages, want 1", len(delivered))
	}
	to := delivered[0].GetHeader("To")
	if len(to) != 1 || to[0] != "asha@test.com" {
		t.Fatalf("to header %v", to)
	}
}

func TestSendBadSlotTime(t *testing.T) {
	m := New(Config{})
	m.dial = func(msgs ...*gomail.Message) error { return nil }

	appt := &models.Appointment{SlotDate: "01_01_2030", SlotTime: "sometime"}
	if err := m.Send("user@test.com", "subject", appt); err == nil {
		t.Fatal("expected error for malformed slot time")
	}
}
