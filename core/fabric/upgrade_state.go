package fabric

import (
	"github.com/opensvc/sfclient/util/enum"
	"github.com/opensvc/sfclient/util/jsonfield"
)

// UpgradeState is the state of an application or cluster upgrade.
type UpgradeState int

// UpgradeStateUnrecognized is decoded from literals unknown to this client.
const UpgradeStateUnrecognized UpgradeState = -1

const (
	UpgradeStateInvalid UpgradeState = iota
	UpgradeStateRollingBackInProgress
	UpgradeStateRollingBackCompleted
	UpgradeStateRollingForwardPending
	UpgradeStateRollingForwardInProgress
	UpgradeStateRollingForwardCompleted
	UpgradeStateFailed
)

var (
	upgradeStates = enum.New("UpgradeState", map[UpgradeState]string{
		UpgradeStateInvalid:                  "Invalid",
		UpgradeStateRollingBackInProgress:    "RollingBackInProgress",
		UpgradeStateRollingBackCompleted:     "RollingBackCompleted",
		UpgradeStateRollingForwardPending:    "RollingForwardPending",
		UpgradeStateRollingForwardInProgress: "RollingForwardInProgress",
		UpgradeStateRollingForwardCompleted:  "RollingForwardCompleted",
		UpgradeStateFailed:                   "Failed",
	}).Lenient(UpgradeStateUnrecognized)

	UpgradeStateCodec = jsonfield.Enum[UpgradeState](upgradeStates)
)

func (t UpgradeState) String() string {
	return upgradeStates.String(t)
}

// ParseUpgradeState returns the UpgradeState value of the literal s.
func ParseUpgradeState(s string) (UpgradeState, error) {
	return upgradeStates.Parse(s)
}

func (t UpgradeState) MarshalText() ([]byte, error) {
	return upgradeStates.MarshalText(t)
}

func (t *UpgradeState) UnmarshalText(b []byte) error {
	return upgradeStates.UnmarshalText(t, b)
}
