package model

import (
	"encoding/json"
	"time"
)

// IntervalRecord is a single tracked interval as returned by the time-tracking
// service. Start and Stop are kept as raw strings so that a malformed
// timestamp only invalidates its own record.
type IntervalRecord struct {
	ID          int64   `json:"id,omitempty"`
	Description string  `json:"description,omitempty"`
	Start       *string `json:"start"`
	Stop        *string `json:"stop"`
	// Duration is in seconds; the service reports a negative value while the
	// entry is still running.
	Duration int64 `json:"duration,omitempty"`
}

// UnmarshalJSON keeps a start or stop of the wrong JSON type as its raw text,
// so the record fails timestamp parsing on its own instead of failing the
// whole response.
func (r *IntervalRecord) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          json.RawMessage `json:"id"`
		Description json.RawMessage `json:"description"`
		Start       json.RawMessage `json:"start"`
		Stop        json.RawMessage `json:"stop"`
		Duration    json.RawMessage `json:"duration"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = IntervalRecord{Start: rawInstant(raw.Start), Stop: rawInstant(raw.Stop)}
	// Diagnostic fields are best effort.
	if len(raw.ID) > 0 {
		_ = json.Unmarshal(raw.ID, &r.ID)
	}
	if len(raw.Description) > 0 {
		_ = json.Unmarshal(raw.Description, &r.Description)
	}
	if len(raw.Duration) > 0 {
		_ = json.Unmarshal(raw.Duration, &r.Duration)
	}
	return nil
}

func rawInstant(m json.RawMessage) *string {
	if len(m) == 0 || string(m) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(m, &s); err == nil {
		return &s
	}
	s = string(m)
	return &s
}

// Running reports whether the record has no stop time yet.
func (r IntervalRecord) Running() bool {
	return r.Stop == nil || *r.Stop == ""
}

// DateRange is a half-open interval of instants [Start, End).
type DateRange struct {
	Start time.Time
	End   time.Time
}

// UTC returns the same range expressed in UTC.
func (r DateRange) UTC() DateRange {
	return DateRange{Start: r.Start.UTC(), End: r.End.UTC()}
}

// Contains reports whether t lies in [Start, End).
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}
