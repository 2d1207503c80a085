package mailer

import (
	"fmt"
	"strconv"
	"strings"
)

// CalendarDate converts a slot date label "DD_MM_YYYY" into the compact
// calendar form "YYYYMMDD". This is pure string rearrangement; the day and
// month values are not validated against a calendar.
func CalendarDate(dateLabel string) (string, error) {
	parts := strings.Split(dateLabel, "_")
	if len(parts) != 3 {
		return "", fmt.Errorf("bad slot date %q", dateLabel)
	}
	return parts[2] + parts[1] + parts[0], nil
}

// CalendarTime converts a slot time label "hh:mm AM/PM" into the start and
// end of a one hour window in "HHMMSS" form. 12 PM stays hour 12, 12 AM
// becomes hour 0. For labels near midnight the end hour wraps into the next
// day but the date portion is not adjusted here; callers concatenate the
// same date onto both boundaries.
func CalendarTime(timeLabel string) (start, end string, err error) {
	fields := strings.Fields(timeLabel)
	if len(fields) != 2 {
		return "", "", fmt.Errorf("bad slot time %q", timeLabel)
	}
	clock, modifier := fields[0], strings.ToUpper(fields[1])

	hm := strings.Split(clock, ":")
	if len(hm) != 2 {
		return "", "", fmt.Errorf("bad slot time %q", timeLabel)
	}
	hours, err := strconv.Atoi(hm[0])
	if err != nil {
		return "", "", fmt.Errorf("bad slot time %q", timeLabel)
	}
	minutes, err := strconv.Atoi(hm[1])
	if err != nil {
		return "", "", fmt.Errorf("bad slot time %q", timeLabel)
	}

	switch modifier {
	case "PM":
		if hours != 12 {
			hours += 12
		}
	case "AM":
		if hours == 12 {
			hours = 0
		}
	default:
		return "", "", fmt.Errorf("bad slot time %q", timeLabel)
	}

	start = fmt.Sprintf("%02d%02d00", hours, minutes)
	end = fmt.Sprintf("%02d%02d00", (hours+1)%24, minutes)
	return start, end, nil
}

// FillTemplate substitutes {{key}} placeholders with the values in data.
// Empty values render as empty strings; placeholders without a matching key
// are left untouched.
func FillTemplate(template string, data map[string]string) string {
	out := template
	for key, value := range data {
		out = strings.ReplaceAll(out, "{{"+key+"}}", value)
	}
	return out
}

// CalendarURL builds the Google Calendar event deep link for a one hour
// appointment window. date is "YYYYMMDD", start and end are "HHMMSS".
func CalendarURL(date, start, end string) string {
	startBoundary := date + "/" + start
	stopBoundary := date + "/" + end
	return "https://calendar.google.com/calendar/render?action=TEMPLATE" +
		"&text=Ketpa%20Appointment" +
		"&dates=" + startBoundary + "/" + stopBoundary +
		"&details=This%20is%20a%20reminder%20to%20your%20pet%20appointment" +
		"&location=Event+Location"
}
