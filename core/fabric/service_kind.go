package fabric

import (
	"github.com/opensvc/sfclient/util/enum"
	"github.com/opensvc/sfclient/util/jsonfield"
)

// ServiceKind tells if the service replicas hold a state.
type ServiceKind int

const (
	ServiceKindInvalid ServiceKind = iota
	ServiceKindStateless
	ServiceKindStateful
)

var (
	serviceKinds = enum.New("ServiceKind", map[ServiceKind]string{
		ServiceKindInvalid:   "Invalid",
		ServiceKindStateless: "Stateless",
		ServiceKindStateful:  "Stateful",
	})

	ServiceKindCodec = jsonfield.Enum[ServiceKind](serviceKinds)
)

func (t ServiceKind) String() string {
	return serviceKinds.String(t)
}

// ParseServiceKind returns the ServiceKind value of the literal s.
func ParseServiceKind(s string) (ServiceKind, error) {
	return serviceKinds.Parse(s)
}

func (t ServiceKind) MarshalText() ([]byte, error) {
	return serviceKinds.MarshalText(t)
}

func (t *ServiceKind) UnmarshalText(b []byte) error {
	return serviceKinds.UnmarshalText(t, b)
}
