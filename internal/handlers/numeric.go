package handlers

import (
	"bytes"
	"fmt"
	"strconv"
)

// Clients are inconsistent about whether quantities and prices arrive
// as JSON numbers or as numeric strings. Number and Count accept
// both, and reject anything that does not parse so malformed input
// surfaces as a 400 instead of corrupting arithmetic downstream.

// Number is a float64 that also decodes from a numeric JSON string.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	raw := unquote(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return fmt.Errorf("expected a number, got %q", string(data))
	}
	v, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return fmt.Errorf("expected a number, got %q", string(data))
	}
	*n = Number(v)
	return nil
}

// Count is a uint that also decodes from a numeric JSON string.
type Count uint

func (c *Count) UnmarshalJSON(data []byte) error {
	raw := unquote(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return fmt.Errorf("expected a non-negative integer, got %q", string(data))
	}
	v, err := strconv.ParseUint(string(raw), 10, 64)
	if err != nil {
		return fmt.Errorf("expected a non-negative integer, got %q", string(data))
	}
	*c = Count(v)
	return nil
}

func unquote(data []byte) []byte {
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		return data[1 : len(data)-1]
	}
	return data
}
