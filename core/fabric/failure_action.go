package fabric

import (
	"github.com/opensvc/sfclient/util/enum"
	"github.com/opensvc/sfclient/util/jsonfield"
)

// FailureAction is the compensating action taken when a monitored upgrade
// meets a health policy violation or a timeout.
type FailureAction int

const (
	FailureActionInvalid FailureAction = iota
	FailureActionRollback
	FailureActionManual
)

var (
	failureActions = enum.New("FailureAction", map[FailureAction]string{
		FailureActionInvalid:  "Invalid",
		FailureActionRollback: "Rollback",
		FailureActionManual:   "Manual",
	})

	FailureActionCodec = jsonfield.Enum[FailureAction](failureActions)
)

func (t FailureAction) String() string {
	return failureActions.String(t)
}

// ParseFailureAction returns the FailureAction value of the literal s.
func ParseFailureAction(s string) (FailureAction, error) {
	return failureActions.Parse(s)
}

func (t FailureAction) MarshalText() ([]byte, error) {
	return failureActions.MarshalText(t)
}

func (t *FailureAction) UnmarshalText(b []byte) error {
	return failureActions.UnmarshalText(t, b)
}
