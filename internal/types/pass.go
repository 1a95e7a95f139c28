package types

import "time"

// PassRecord is one predicted ISS flyover
type PassRecord struct {
	Risetime int64 `json:"risetime"` // Unix epoch seconds
	Duration int64 `json:"duration"` // seconds
}

// RiseTime returns the start of the pass as a time.Time in UTC
func (p PassRecord) RiseTime() time.Time {
	return time.Unix(p.Risetime, 0).UTC()
}

// PassList is an ordered list of passes as returned upstream
type PassList []PassRecord
