package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// NumberString accepts either a JSON number or a JSON string and keeps the raw text,
// so numeric validation happens in one place for form and JSON callers alike.
type NumberString string

// UnmarshalJSON implements json.Unmarshaler.
func (n *NumberString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumberString(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return fmt.Errorf("expected a number or numeric string, got %s", b)
	}
	*n = NumberString(num.String())
	return nil
}
