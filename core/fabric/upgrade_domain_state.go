package fabric

import (
	"github.com/opensvc/sfclient/util/enum"
	"github.com/opensvc/sfclient/util/jsonfield"
)

// UpgradeDomainState is the upgrade state of an upgrade domain.
type UpgradeDomainState int

// UpgradeDomainStateUnrecognized is decoded from literals unknown to this client.
const UpgradeDomainStateUnrecognized UpgradeDomainState = -1

const (
	UpgradeDomainStateInvalid UpgradeDomainState = iota
	UpgradeDomainStatePending
	UpgradeDomainStateInProgress
	UpgradeDomainStateCompleted
)

var (
	upgradeDomainStates = enum.New("UpgradeDomainState", map[UpgradeDomainState]string{
		UpgradeDomainStateInvalid:    "Invalid",
		UpgradeDomainStatePending:    "Pending",
		UpgradeDomainStateInProgress: "InProgress",
		UpgradeDomainStateCompleted:  "Completed",
	}).Lenient(UpgradeDomainStateUnrecognized)

	UpgradeDomainStateCodec = jsonfield.Enum[UpgradeDomainState](upgradeDomainStates)
)

func (t UpgradeDomainState) String() string {
	return upgradeDomainStates.String(t)
}

// ParseUpgradeDomainState returns the UpgradeDomainState value of the literal s.
func ParseUpgradeDomainState(s string) (UpgradeDomainState, error) {
	return upgradeDomainStates.Parse(s)
}

func (t UpgradeDomainState) MarshalText() ([]byte, error) {
	return upgradeDomainStates.MarshalText(t)
}

func (t *UpgradeDomainState) UnmarshalText(b []byte) error {
	return upgradeDomainStates.UnmarshalText(t, b)
}
