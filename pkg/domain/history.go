package domain

import "time"

// HistoryFilter narrows a sensor history. Zero values disable a filter.
// Start and End are inclusive bounds.
type HistoryFilter struct {
	Chantier string
	Start    time.Time
	End      time.Time
}

// Contains reports whether t falls within the filter's date range.
func (f HistoryFilter) Contains(t time.Time) bool {
	if !f.Start.IsZero() && t.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && t.After(f.End) {
		return false
	}

	return true
}

// HistoryResponses groups the responses of a history by maintenance phase.
type HistoryResponses struct {
	Before []ResponseDetail `json:"before"`
	After  []ResponseDetail `json:"after"`
}

// SensorHistory is the assembled record of a sensor's movements and
// checklist responses.
type SensorHistory struct {
	SensorID  SensorID         `json:"sensorId"`
	Type      string           `json:"type"`
	Subtype   string           `json:"subtype"`
	Movements []Movement       `json:"movements"`
	Responses HistoryResponses `json:"responses"`
}
