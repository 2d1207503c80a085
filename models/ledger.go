package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrSlotTaken is returned when a slot is already present in the ledger.
var ErrSlotTaken = errors.New("slot not available")

// SlotLedger maps a date label ("DD_MM_YYYY") to the list of time labels
// ("hh:mm AM/PM") already booked for that date. It is owned by the doctor
// record and stored as a jsonb column.
type SlotLedger map[string][]string

// IsBooked reports whether the time label is already booked on the date.
func (l SlotLedger) IsBooked(date, timeLabel string) bool {
	for _, t := range l[date] {
		if t == timeLabel {
			return true
		}
	}
	return false
}

// Book inserts the time label under the date, creating the date entry on
// first booking. Returns ErrSlotTaken if the slot is already booked.
func (l *SlotLedger) Book(date, timeLabel string) error {
	if *l == nil {
		*l = SlotLedger{}
	}
	if l.IsBooked(date, timeLabel) {
		return ErrSlotTaken
	}
	(*l)[date] = append((*l)[date], timeLabel)
	return nil
}

// Release removes the time label from the date entry. Releasing a slot that
// is not booked is a no-op. Emptied date entries are kept.
func (l SlotLedger) Release(date, timeLabel string) {
	times, ok := l[date]
	if !ok {
		return
	}
	kept := make([]string, 0, len(times))
	for _, t := range times {
		if t != timeLabel {
			kept = append(kept, t)
		}
	}
	l[date] = kept
}

func (l SlotLedger) Value() (driver.Value, error) {
	if l == nil {
		l = SlotLedger{}
	}
	return json.Marshal(l)
}

func (l *SlotLedger) Scan(value interface{}) error {
	if value == nil {
		*l = SlotLedger{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for slot ledger: %T", value)
	}
}
