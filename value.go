// Copyright (c) 2026 Antti Kivi. All rights reserved.

package toml

import "strconv"

// A Value is an arbitrary decoded TOML value: a String, Integer, Float,
// Bool, one of the four date/time variants, an Array, or a Table.
type Value interface {
	// Span reports the byte range of source text the value was decoded
	// from. Values built programmatically rather than by decoding may
	// report a zero Span.
	Span() Span
}

// A Formatter is satisfied by any Value that can render a canonical textual
// form of itself. The rendering is intended for diagnostics and tests only;
// it is not a TOML encoder and its output is not guaranteed to be valid
// TOML for every case (tables/arrays are bracket-delimited rather than
// rendered as headers).
type Formatter interface {
	Format() string
}

type datum struct {
	span Span
}

// Span satisfies the Value interface.
func (d datum) Span() Span { return d.span }

// A String is a decoded TOML string value. Its Text is guaranteed to be
// valid UTF-8.
type String struct {
	datum
	Text string
}

// NewString constructs a String value.
func NewString(text string, span Span) String { return String{datum{span}, text} }

// Format satisfies Formatter. Strings are rendered raw, without quoting.
func (s String) Format() string { return s.Text }

// An Integer is a decoded TOML integer value.
type Integer struct {
	datum
	N int64
}

// NewInteger constructs an Integer value.
func NewInteger(n int64, span Span) Integer { return Integer{datum{span}, n} }

// Format satisfies Formatter.
func (z Integer) Format() string { return strconv.FormatInt(z.N, 10) }

// A Float is a decoded TOML floating-point value.
type Float struct {
	datum
	F float64
}

// NewFloat constructs a Float value.
func NewFloat(f float64, span Span) Float { return Float{datum{span}, f} }

// Format satisfies Formatter, rendering f in a round-trippable decimal form.
func (f Float) Format() string {
	switch {
	case f.F != f.F: // NaN
		return "nan"
	case f.F > 1.7976931348623157e+308:
		return "inf"
	case f.F < -1.7976931348623157e+308:
		return "-inf"
	}
	return strconv.FormatFloat(f.F, 'g', -1, 64)
}

// A Bool is a decoded TOML boolean value.
type Bool struct {
	datum
	B bool
}

// NewBool constructs a Bool value.
func NewBool(b bool, span Span) Bool { return Bool{datum{span}, b} }

// Format satisfies Formatter.
func (b Bool) Format() string {
	if b.B {
		return "true"
	}
	return "false"
}

// Format satisfies Formatter for the date/time variants, rendering RFC 3339.
func (d LocalDate) Format() string     { return d.String() }
func (t LocalTime) Format() string     { return t.String() }
func (dt LocalDateTime) Format() string { return dt.String() }
func (dt DateTime) Format() string      { return dt.String() }

// NewLocalDate constructs a LocalDate value.
func NewLocalDate(year, month, day int, span Span) LocalDate {
	return LocalDate{Year: year, Month: month, Day: day, span: span}
}

// NewLocalTime constructs a LocalTime value.
func NewLocalTime(hour, minute, second, nanosecond, precision int, span Span) LocalTime {
	return LocalTime{Hour: hour, Minute: minute, Second: second, Nanosecond: nanosecond, Precision: precision, span: span}
}

// NewLocalDateTime constructs a LocalDateTime value.
func NewLocalDateTime(date LocalDate, t LocalTime, span Span) LocalDateTime {
	return LocalDateTime{Date: date, Time: t, span: span}
}

// NewDateTime constructs a DateTime value.
func NewDateTime(local LocalDateTime, offsetMinutes int, span Span) DateTime {
	local.span = span
	return DateTime{LocalDateTime: local, OffsetMinutes: offsetMinutes}
}
