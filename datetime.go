// Copyright (c) 2026 Antti Kivi. All rights reserved.

package toml

import "fmt"

// A LocalDate is a calendar date with no time-of-day or timezone component.
// It implements Value.
type LocalDate struct {
	Year  int
	Month int // 1-12
	Day   int // 1-31

	span Span
}

// Span satisfies the Value interface.
func (d LocalDate) Span() Span { return d.span }

// Valid reports whether d names a real calendar date.
func (d LocalDate) Valid() bool {
	if d.Month < 1 || d.Month > 12 {
		return false
	}
	if d.Day < 1 || d.Day > daysInMonth(d.Year, d.Month) {
		return false
	}
	return true
}

// String renders d in RFC 3339 date form.
func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var daysInMonthTable = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func daysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	n := daysInMonthTable[month-1]
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return n
}

// A LocalTime is a time-of-day with no date or timezone component. It
// implements Value.
type LocalTime struct {
	Hour       int // 0-23
	Minute     int // 0-59
	Second     int // 0-60, 60 only as a leap second
	Nanosecond int // 0-999999999
	// Precision records how many fractional-second digits were present in
	// the source text, so formatting can round-trip "07:32:00.999" instead
	// of normalizing it to nine digits. Zero means no fractional part.
	Precision int

	span Span
}

// Span satisfies the Value interface.
func (t LocalTime) Span() Span { return t.span }

// Valid reports whether t names a structurally valid time-of-day. The leap
// second value 60 is accepted here unconditionally; whether it is legal on
// a particular calendar date is checked by DateTime.Valid /
// LocalDateTime.Valid, which have the date in hand.
func (t LocalTime) Valid() bool {
	if t.Hour < 0 || t.Hour > 23 {
		return false
	}
	if t.Minute < 0 || t.Minute > 59 {
		return false
	}
	if t.Second < 0 || t.Second > 60 {
		return false
	}
	if t.Nanosecond < 0 || t.Nanosecond > 999999999 {
		return false
	}
	return true
}

// String renders t in RFC 3339 time form.
func (t LocalTime) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Precision > 0 {
		frac := fmt.Sprintf("%09d", t.Nanosecond)[:t.Precision]
		s += "." + frac
	}
	return s
}

// leapSecondOK reports whether a :60 leap second is permitted on the given
// calendar date: only 30 June or 31 December.
func leapSecondOK(year, month, day int) bool {
	return (month == 6 && day == 30) || (month == 12 && day == 31)
}

// A LocalDateTime is a date and time-of-day with no timezone offset. It
// implements Value.
type LocalDateTime struct {
	Date LocalDate
	Time LocalTime

	span Span
}

// Span satisfies the Value interface.
func (dt LocalDateTime) Span() Span { return dt.span }

// Valid reports whether dt is structurally valid, including the leap-second
// exception which depends on the calendar date.
func (dt LocalDateTime) Valid() bool {
	if !dt.Date.Valid() {
		return false
	}
	if !dt.Time.Valid() {
		return false
	}
	if dt.Time.Second == 60 && !leapSecondOK(dt.Date.Year, dt.Date.Month, dt.Date.Day) {
		return false
	}
	return true
}

// String renders dt in RFC 3339 form, joined by 'T'.
func (dt LocalDateTime) String() string {
	return dt.Date.String() + "T" + dt.Time.String()
}

// A DateTime is a LocalDateTime plus a timezone offset from UTC, expressed
// in minutes.
type DateTime struct {
	LocalDateTime
	OffsetMinutes int // -1440..1440
}

// Valid reports whether dt is structurally valid.
func (dt DateTime) Valid() bool {
	if !dt.LocalDateTime.Valid() {
		return false
	}
	return dt.OffsetMinutes >= -1440 && dt.OffsetMinutes <= 1440
}

// String renders dt in RFC 3339 form with a "Z" or "+HH:MM"/"-HH:MM" suffix.
func (dt DateTime) String() string {
	s := dt.LocalDateTime.String()
	if dt.OffsetMinutes == 0 {
		return s + "Z"
	}
	off := dt.OffsetMinutes
	sign := byte('+')
	if off < 0 {
		sign = '-'
		off = -off
	}
	return fmt.Sprintf("%s%c%02d:%02d", s, sign, off/60, off%60)
}
