package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Timestamp is a point in time that tolerates the formats older clients and
// documents used. It decodes from an RFC 3339 string, a number of epoch
// milliseconds, or the same number as a string, and always encodes as an
// RFC 3339 string. A zero Timestamp encodes as null.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// ParseTimestamp decodes a JSON value in any accepted format.
func ParseTimestamp(data []byte) (Timestamp, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return Timestamp{}, nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return Timestamp{}, err
		}
		if s == "" {
			return Timestamp{}, nil
		}
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return Timestamp{Time: t}, nil
		}
		if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Timestamp{Time: time.UnixMilli(ms).UTC()}, nil
		}
		return Timestamp{}, fmt.Errorf("cannot parse time string %q", s)
	}

	ms, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return Timestamp{}, fmt.Errorf("cannot parse time %s", data)
	}
	return Timestamp{Time: time.UnixMilli(int64(ms)).UTC()}, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	parsed, err := ParseTimestamp(data)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}
