package event

import (
	"time"

	"github.com/opensvc/sfclient/core/fabric"
	"github.com/opensvc/sfclient/util/jsonfield"
)

// HealthReport hosts the properties of the "New...HealthReport" events.
type HealthReport struct {
	SourceID           string
	Property           string
	HealthState        fabric.HealthState
	TimeToLiveMs       int64
	SequenceNumber     int64
	Description        string
	RemoveWhenExpired  bool
	SourceUTCTimestamp time.Time
}

func (t *HealthReport) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Required("SourceId", &t.SourceID, jsonfield.String),
		jsonfield.Required("Property", &t.Property, jsonfield.String),
		jsonfield.Required("HealthState", &t.HealthState, fabric.HealthStateCodec),
		jsonfield.Required("TimeToLiveMs", &t.TimeToLiveMs, jsonfield.Int64),
		jsonfield.Required("SequenceNumber", &t.SequenceNumber, jsonfield.Int64),
		jsonfield.Required("Description", &t.Description, jsonfield.String),
		jsonfield.Required("RemoveWhenExpired", &t.RemoveWhenExpired, jsonfield.Bool),
		jsonfield.Required("SourceUtcTimestamp", &t.SourceUTCTimestamp, jsonfield.Time),
	}
}

// Report returns the health report properties.
func (t *HealthReport) Report() *HealthReport {
	return t
}

// HealthReporter is implemented by the events carrying a health report.
type HealthReporter interface {
	Event
	Report() *HealthReport
}
