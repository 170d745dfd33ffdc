package fabric

import (
	"github.com/opensvc/sfclient/util/enum"
	"github.com/opensvc/sfclient/util/jsonfield"
)

// HealthState is the health of a cluster entity.
type HealthState int

const (
	HealthStateInvalid HealthState = iota
	HealthStateOk
	HealthStateWarning
	HealthStateError
	HealthStateUnknown HealthState = 65535
)

var (
	healthStates = enum.New("HealthState", map[HealthState]string{
		HealthStateInvalid: "Invalid",
		HealthStateOk:      "Ok",
		HealthStateWarning: "Warning",
		HealthStateError:   "Error",
		HealthStateUnknown: "Unknown",
	})

	HealthStateCodec = jsonfield.Enum[HealthState](healthStates)
)

func (t HealthState) String() string {
	return healthStates.String(t)
}

// ParseHealthState returns the HealthState value of the literal s.
func ParseHealthState(s string) (HealthState, error) {
	return healthStates.Parse(s)
}

func (t HealthState) MarshalText() ([]byte, error) {
	return healthStates.MarshalText(t)
}

func (t *HealthState) UnmarshalText(b []byte) error {
	return healthStates.UnmarshalText(t, b)
}
