package model

import (
	"encoding/json"
	"fmt"
)

// Text is a scalar reply value. Strings are kept as-is; numbers and booleans
// keep their JSON literal, so "Years of experience": 5 reads as "5".
type Text string

// TextOf returns a pointer to s as a Text.
func TextOf(s string) *Text {
	t := Text(s)
	return &t
}

// UnmarshalJSON accepts any JSON scalar. null leaves the value untouched.
func (t *Text) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case 'n':
	case '{', '[':
		return fmt.Errorf("expected a scalar value, got %s", data)
	default:
		*t = Text(data)
	}
	return nil
}
