package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Amount is a money field that accepts both JSON numbers and numeric strings.
// Forms submit strings, scripts tend to send numbers.
type Amount string

// UnmarshalJSON keeps the literal text of a number or the content of a string
func (a *Amount) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*a = ""
		return nil
	}

	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("amount must be a number or a numeric string: %w", err)
	}
	*a = Amount(n.String())
	return nil
}

// String returns the raw amount text
func (a Amount) String() string {
	return string(a)
}
