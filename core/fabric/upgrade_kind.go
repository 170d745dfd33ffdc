package fabric

import (
	"github.com/opensvc/sfclient/util/enum"
	"github.com/opensvc/sfclient/util/jsonfield"
)

// UpgradeKind is the kind of upgrade.
type UpgradeKind int

const (
	UpgradeKindInvalid UpgradeKind = iota
	UpgradeKindRolling
)

var (
	upgradeKinds = enum.New("UpgradeKind", map[UpgradeKind]string{
		UpgradeKindInvalid: "Invalid",
		UpgradeKindRolling: "Rolling",
	})

	UpgradeKindCodec = jsonfield.Enum[UpgradeKind](upgradeKinds)
)

func (t UpgradeKind) String() string {
	return upgradeKinds.String(t)
}

// ParseUpgradeKind returns the UpgradeKind value of the literal s.
func ParseUpgradeKind(s string) (UpgradeKind, error) {
	return upgradeKinds.Parse(s)
}

func (t UpgradeKind) MarshalText() ([]byte, error) {
	return upgradeKinds.MarshalText(t)
}

func (t *UpgradeKind) UnmarshalText(b []byte) error {
	return upgradeKinds.UnmarshalText(t, b)
}
