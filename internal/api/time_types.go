package api

import (
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/edinacircular/circular-server/internal/domain"
)

// FlexTime is a request timestamp that accepts either an RFC 3339 string or
// epoch milliseconds (as a number or a numeric string), the latter being what
// the original web client sends.
type FlexTime struct {
	domain.Timestamp
}

// UnmarshalJSON implements json.Unmarshaler.
func (ft *FlexTime) UnmarshalJSON(data []byte) error {
	return ft.Timestamp.UnmarshalJSON(data)
}

// Schema implements huma.SchemaProvider so request validation lets both
// encodings through.
func (FlexTime) Schema(_ huma.Registry) *huma.Schema {
	return &huma.Schema{
		Description: "RFC 3339 timestamp or epoch milliseconds",
		OneOf: []*huma.Schema{
			{Type: huma.TypeString},
			{Type: huma.TypeNumber},
		},
	}
}

// ToTime returns the underlying time, zero when unset.
func (ft *FlexTime) ToTime() time.Time {
	if ft == nil {
		return time.Time{}
	}
	return ft.Time
}
