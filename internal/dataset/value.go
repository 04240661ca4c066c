package dataset

import (
	"strconv"
	"time"
)

// Kind identifies the concrete type held by a Value.
type Kind int

const (
	// KindEmpty marks a cell with no usable value, e.g. an unparseable
	// date or number. It is distinct from an empty string.
	KindEmpty Kind = iota
	KindString
	KindNumber
	KindDate
)

// Value is a single table cell. The zero Value is empty.
type Value struct {
	kind Kind
	str  string
	num  float64
	date time.Time
}

// Empty returns the explicit "no value" marker.
func Empty() Value { return Value{} }

// String wraps s as a string cell.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number wraps n as a numeric cell.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Date wraps t as a calendar date cell.
func Date(t time.Time) Value { return Value{kind: KindDate, date: t} }

// Kind reports the cell's concrete type.
func (v Value) Kind() Kind { return v.kind }

// IsEmpty reports whether the cell holds no value.
func (v Value) IsEmpty() bool { return v.kind == KindEmpty }

// Str returns the string payload; ok is false for non-string cells.
func (v Value) Str() (string, bool) { return v.str, v.kind == KindString }

// Num returns the numeric payload; ok is false for non-number cells.
func (v Value) Num() (float64, bool) { return v.num, v.kind == KindNumber }

// Time returns the date payload; ok is false for non-date cells.
func (v Value) Time() (time.Time, bool) { return v.date, v.kind == KindDate }

// Text renders the cell for display or export. Dates use the 2006-01-02
// layout, numbers the shortest exact decimal form, empty cells the empty
// string.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindDate:
		return v.date.Format("2006-01-02")
	default:
		return ""
	}
}
