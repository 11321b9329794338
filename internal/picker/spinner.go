package picker

import (
	"fmt"
	"time"
)

// Field is one editable part of the spinner.
type Field int

const (
	FieldDate Field = iota
	FieldHour
	FieldMinute
	FieldMeridiem
)

func (f Field) String() string {
	switch f {
	case FieldDate:
		return "date"
	case FieldHour:
		return "hour"
	case FieldMinute:
		return "minute"
	case FieldMeridiem:
		return "am/pm"
	default:
		return "unknown"
	}
}

// Part is a rendered field of the spinner.
type Part struct {
	Field  Field
	Text   string
	Active bool
}

// Spinner edits a timestamp inside [Min, Max], one field at a time.
type Spinner struct {
	value  time.Time
	min    time.Time
	max    time.Time
	field  Field
	use24h bool
}

// NewSpinner starts at value, clamped to [min, max]. Seconds are dropped.
func NewSpinner(value, min, max time.Time, use24h bool) *Spinner {
	s := &Spinner{min: min, max: max, use24h: use24h}
	s.set(value.Truncate(time.Minute))
	return s
}

// Value returns the selected timestamp.
func (s *Spinner) Value() time.Time { return s.value }

// Field returns the field under the cursor.
func (s *Spinner) Field() Field { return s.field }

func (s *Spinner) fields() []Field {
	if s.use24h {
		return []Field{FieldDate, FieldHour, FieldMinute}
	}
	return []Field{FieldDate, FieldHour, FieldMinute, FieldMeridiem}
}

// NextField moves the cursor right, wrapping around.
func (s *Spinner) NextField() {
	fs := s.fields()
	s.field = fs[(s.index()+1)%len(fs)]
}

// PrevField moves the cursor left, wrapping around.
func (s *Spinner) PrevField() {
	fs := s.fields()
	s.field = fs[(s.index()+len(fs)-1)%len(fs)]
}

func (s *Spinner) index() int {
	for i, f := range s.fields() {
		if f == s.field {
			return i
		}
	}
	return 0
}

// Increment steps the current field forward.
func (s *Spinner) Increment() { s.step(1) }

// Decrement steps the current field back.
func (s *Spinner) Decrement() { s.step(-1) }

func (s *Spinner) step(dir int) {
	v := s.value
	switch s.field {
	case FieldDate:
		v = v.AddDate(0, 0, dir)
	case FieldHour:
		v = v.Add(time.Duration(dir) * time.Hour)
	case FieldMinute:
		v = v.Add(time.Duration(dir) * time.Minute)
	case FieldMeridiem:
		if v.Hour() < 12 {
			v = v.Add(12 * time.Hour)
		} else {
			v = v.Add(-12 * time.Hour)
		}
	}
	s.set(v)
}

func (s *Spinner) set(v time.Time) {
	if !s.min.IsZero() && v.Before(s.min) {
		v = s.min
	}
	if !s.max.IsZero() && v.After(s.max) {
		v = s.max
	}
	s.value = v
}

// Parts returns the fields in display order.
func (s *Spinner) Parts() []Part {
	v := s.value
	parts := []Part{{Field: FieldDate, Text: v.Format("Mon Jan 2 2006")}}
	if s.use24h {
		parts = append(parts,
			Part{Field: FieldHour, Text: fmt.Sprintf("%02d", v.Hour())},
			Part{Field: FieldMinute, Text: fmt.Sprintf("%02d", v.Minute())},
		)
	} else {
		parts = append(parts,
			Part{Field: FieldHour, Text: v.Format("3")},
			Part{Field: FieldMinute, Text: v.Format("04")},
			Part{Field: FieldMeridiem, Text: v.Format("PM")},
		)
	}
	for i := range parts {
		parts[i].Active = parts[i].Field == s.field
	}
	return parts
}

// Format renders t the way the spinner displays it.
func Format(t time.Time, use24h bool) string {
	if use24h {
		return t.Format("Mon Jan 2 2006 15:04")
	}
	return t.Format("Mon Jan 2 2006 3:04 PM")
}
