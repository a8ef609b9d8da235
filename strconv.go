// Copyright 2025 Aleksandr Demakin. All rights reserved.

package hubfloat

import (
	"fmt"
	"strconv"
)

// FromString parses a decimal string into a Float. The shortest-form
// float64 parse rounds once, so a second rounding only happens at the
// hub grid, same as FromFloat64.
func FromString(s string) (Float, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing failed: %w", err)
	}
	return FromFloat64(f), nil
}

// MustFromString parses a string into a Float, panicking on bad input.
func MustFromString(s string) Float {
	f, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return f
}

// String returns the default decimal form of the underlying float64.
func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// GoString returns a debug representation with the compact encoding.
func (f Float) GoString() string {
	return f.String() + " {" + f.HexString() + "}"
}

// MarshalJSON marshals the value as a decimal string, which carries
// infinities safely.
func (f Float) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.String() + `"`), nil
}

// UnmarshalJSON unmarshals a number or a quoted string into a value.
func (f *Float) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	v, err := FromString(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}
