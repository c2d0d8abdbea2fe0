package tabular

import (
	"encoding/json"
	"strconv"
	"unicode/utf8"
)

// Placeholder is what exporters render for null and undefined cells.
const Placeholder = "-"

type Kind uint8

const (
	KindUndefined Kind = iota // zero value
	KindNull
	KindString
	KindNumber
)

// Cell is a display-ready value: a string, a number, null or undefined.
// The zero Cell is undefined.
type Cell struct {
	kind Kind
	str  string
	num  float64
}

func String(s string) Cell  { return Cell{kind: KindString, str: s} }
func Number(n float64) Cell { return Cell{kind: KindNumber, num: n} }
func Int(n int) Cell        { return Cell{kind: KindNumber, num: float64(n)} }
func Null() Cell            { return Cell{kind: KindNull} }
func Undefined() Cell       { return Cell{} }

// StringOrNull returns a null Cell for an empty `s`.
func StringOrNull(s string) Cell {
	if s == "" {
		return Null()
	}
	return String(s)
}

func (c Cell) Kind() Kind { return c.kind }

// IsBlank reports whether the cell is null or undefined.
func (c Cell) IsBlank() bool { return c.kind == KindNull || c.kind == KindUndefined }

// Value returns the cell as a string, a float64 or nil.
func (c Cell) Value() interface{} {
	switch c.kind {
	case KindString:
		return c.str
	case KindNumber:
		return c.num
	}
	return nil
}

// Text is the cell's raw text: blank cells have none.
func (c Cell) Text() string {
	switch c.kind {
	case KindString:
		return c.str
	case KindNumber:
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	}
	return ""
}

// Display is the text exporters render: blank cells render as Placeholder.
func (c Cell) Display() string {
	if c.IsBlank() {
		return Placeholder
	}
	return c.Text()
}

// Len is the character count of the cell's Text.
func (c Cell) Len() int { return utf8.RuneCountInString(c.Text()) }

func (c Cell) String() string { return c.Display() }

func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Value())
}
