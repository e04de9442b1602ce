// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
	"time"
)

// DueDateKind tells which representation a [DueDate] was read from.
type DueDateKind int

const (
	// DueDateMissing means the stored value was absent (NULL, empty string
	// or JSON null).
	DueDateMissing DueDateKind = iota

	// DueDateNative means the driver delivered a native timestamp.
	DueDateNative

	// DueDateISO means the value was stored as an ISO-8601 string.
	DueDateISO

	// DueDateUnsupported means the value had a type that cannot carry a
	// date (numbers, booleans, objects...).
	DueDateUnsupported
)

// isoLayouts are the ISO-8601 shapes accepted for string due dates: a date
// (extended or basic) optionally followed by a 'T' or space separated time of
// hour, hour:minute or hour:minute:second with optional fractional seconds,
// and an optional offset written as Z, ±hh:mm, ±hhmm or ±hh.
var isoLayouts = buildISOLayouts()

func buildISOLayouts() []string {
	times := []string{"15:04:05.999999999", "15:04", "15"}
	offsets := []string{"Z07:00", "Z0700", "Z07", ""}

	layouts := make([]string, 0, 2*len(times)*len(offsets)+2)
	for _, sep := range []string{"T", " "} {
		for _, clock := range times {
			for _, offset := range offsets {
				layouts = append(layouts, time.DateOnly+sep+clock+offset)
			}
		}
	}
	return append(layouts, time.DateOnly, "20060102")
}

// DueDate is the next-due moment of a schedule entry as it was found in
// storage. Storage backends disagree on representation, so the value is kept
// as a tagged union and resolved once, through [DueDate.Resolve], before any
// date arithmetic happens.
//
// The zero value is a missing due date.
type DueDate struct {
	kind   DueDateKind
	native time.Time
	iso    string
}

// NativeDueDate wraps a native timestamp.
func NativeDueDate(t time.Time) DueDate {
	return DueDate{kind: DueDateNative, native: t}
}

// ISODueDate wraps an ISO-8601 string. An empty string yields a missing due date.
func ISODueDate(s string) DueDate {
	s = strings.TrimSpace(s)
	if s == "" {
		return DueDate{}
	}
	return DueDate{kind: DueDateISO, iso: s}
}

// Kind returns the representation the due date was read from.
func (d DueDate) Kind() DueDateKind {
	return d.kind
}

// IsMissing reports whether no due date was stored at all.
func (d DueDate) IsMissing() bool {
	return d.kind == DueDateMissing
}

// Resolve converts the due date into an instant expressed in loc.
// Strings without an offset are interpreted in loc. The second result is
// false when the due date is missing, unparsable or of an unsupported type.
func (d DueDate) Resolve(loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}

	switch d.kind {
	case DueDateNative:
		return d.native.In(loc), true
	case DueDateISO:
		t, err := ParseISODate(d.iso, loc)
		if err != nil {
			return time.Time{}, false
		}
		return t.In(loc), true
	default:
		return time.Time{}, false
	}
}

// ParseISODate parses an ISO-8601 date or date-time. Values without an
// explicit offset are read in loc.
func ParseISODate(s string, loc *time.Location) (time.Time, error) {
	// a lowercase 't' separator is valid ISO-8601
	if len(s) > 10 && s[10] == 't' {
		s = s[:10] + "T" + s[11:]
	}

	var lastErr error
	for _, layout := range isoLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Scan implements [sql.Scanner]. It never fails: values that cannot carry a
// date are kept as [DueDateUnsupported] so that a single bad row does not
// abort a whole listing.
func (d *DueDate) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = DueDate{}
	case time.Time:
		*d = NativeDueDate(v)
	case string:
		*d = ISODueDate(v)
	case []byte:
		*d = ISODueDate(string(v))
	default:
		*d = DueDate{kind: DueDateUnsupported}
	}
	return nil
}

// Value implements [driver.Valuer]. Native dates are written as timestamps,
// ISO strings verbatim, everything else as NULL.
func (d DueDate) Value() (driver.Value, error) {
	switch d.kind {
	case DueDateNative:
		return d.native.UTC(), nil
	case DueDateISO:
		return d.iso, nil
	default:
		return nil, nil
	}
}

// MarshalJSON renders native dates as RFC 3339, ISO strings as stored and
// anything else as null.
func (d DueDate) MarshalJSON() ([]byte, error) {
	switch d.kind {
	case DueDateNative:
		return json.Marshal(d.native.Format(time.RFC3339))
	case DueDateISO:
		return json.Marshal(d.iso)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a string or null. Other JSON types become
// [DueDateUnsupported].
func (d *DueDate) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		*d = DueDate{}
	case string:
		*d = ISODueDate(value)
	default:
		*d = DueDate{kind: DueDateUnsupported}
	}
	return nil
}
