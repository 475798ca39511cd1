package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// OptionalString is a request field that remembers whether the caller sent it.
// Any JSON scalar is accepted and kept as text; null counts as absent.
type OptionalString struct {
	Value   string
	Present bool
}

// Some returns a present OptionalString holding v.
func Some(v string) OptionalString {
	return OptionalString{Value: v, Present: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*o = OptionalString{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode string field: %w", err)
		}
		*o = Some(s)
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return fmt.Errorf("decode composite field: %w", err)
		}
		*o = Some(buf.String())
	default:
		// numbers and booleans keep their literal text
		*o = Some(string(data))
	}
	return nil
}

// MarshalJSON implements json.Marshaler. Absent values encode as null.
func (o OptionalString) MarshalJSON() ([]byte, error) {
	if !o.Present {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Or returns the value if present, otherwise def.
func (o OptionalString) Or(def string) string {
	if o.Present {
		return o.Value
	}
	return def
}
