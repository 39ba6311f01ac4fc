package desa

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// optional trims s and returns nil when nothing is left.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func orDefault(s, def string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}

// FormInt is an integer form field. It accepts JSON numbers, numeric strings
// and blanks, both from JSON bodies and from form or query parameters.
// Valid is false when the input was blank or not a number.
type FormInt struct {
	Value int
	Valid bool
}

func (f *FormInt) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*f = FormInt{}
		return nil
	}

	if s, err := strconv.Unquote(raw); err == nil {
		raw = s
	}

	*f = parseFormInt(raw)
	return nil
}

// UnmarshalParam lets echo bind FormInt from form and query values.
func (f *FormInt) UnmarshalParam(param string) error {
	*f = parseFormInt(param)
	return nil
}

func (f FormInt) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Int returns the value, 0 when the field was blank or unparseable.
func (f FormInt) Int() int {
	if !f.Valid {
		return 0
	}
	return f.Value
}

func parseFormInt(s string) FormInt {
	s = strings.TrimSpace(s)
	if s == "" {
		return FormInt{}
	}

	// the columns are postgres integer, anything wider is treated as garbage
	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		return FormInt{Value: int(n), Valid: true}
	}

	fl, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(fl) || fl < math.MinInt32 || fl > math.MaxInt32 {
		return FormInt{}
	}

	return FormInt{Value: int(fl), Valid: true}
}
