package fabric

import (
	"github.com/opensvc/sfclient/util/enum"
	"github.com/opensvc/sfclient/util/jsonfield"
)

// UpgradeMode is the mode used to monitor health during a rolling upgrade.
type UpgradeMode int

const (
	UpgradeModeInvalid UpgradeMode = iota
	UpgradeModeUnmonitoredAuto
	UpgradeModeUnmonitoredManual
	UpgradeModeMonitored
	UpgradeModeUnmonitoredDeferred
)

var (
	upgradeModes = enum.New("UpgradeMode", map[UpgradeMode]string{
		UpgradeModeInvalid:             "Invalid",
		UpgradeModeUnmonitoredAuto:     "UnmonitoredAuto",
		UpgradeModeUnmonitoredManual:   "UnmonitoredManual",
		UpgradeModeMonitored:           "Monitored",
		UpgradeModeUnmonitoredDeferred: "UnmonitoredDeferred",
	})

	UpgradeModeCodec = jsonfield.Enum[UpgradeMode](upgradeModes)
)

func (t UpgradeMode) String() string {
	return upgradeModes.String(t)
}

// ParseUpgradeMode returns the UpgradeMode value of the literal s.
func ParseUpgradeMode(s string) (UpgradeMode, error) {
	return upgradeModes.Parse(s)
}

func (t UpgradeMode) MarshalText() ([]byte, error) {
	return upgradeModes.MarshalText(t)
}

func (t *UpgradeMode) UnmarshalText(b []byte) error {
	return upgradeModes.UnmarshalText(t, b)
}
