package dto

import "time"

// DateLayout is the wire format for date-only fields (due_date,
// founding_date, transaction date).
const DateLayout = "2006-01-02"

// ParseWireDate accepts the two date encodings the API emits: plain dates
// and full RFC 3339 timestamps.
func ParseWireDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse(DateLayout, value)
}

// MessageResponse is the generic `{"message": ...}` acknowledgment body.
type MessageResponse struct {
	Message string `json:"message"`
}
