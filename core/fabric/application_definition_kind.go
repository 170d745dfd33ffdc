package fabric

import (
	"github.com/opensvc/sfclient/util/enum"
	"github.com/opensvc/sfclient/util/jsonfield"
)

// ApplicationDefinitionKind is the mechanism used to define an application.
type ApplicationDefinitionKind int

const (
	ApplicationDefinitionKindInvalid ApplicationDefinitionKind = iota
	ApplicationDefinitionKindServiceFabricApplicationDescription
	ApplicationDefinitionKindCompose
)

var (
	applicationDefinitionKinds = enum.New("ApplicationDefinitionKind", map[ApplicationDefinitionKind]string{
		ApplicationDefinitionKindInvalid:                             "Invalid",
		ApplicationDefinitionKindServiceFabricApplicationDescription: "ServiceFabricApplicationDescription",
		ApplicationDefinitionKindCompose:                             "Compose",
	})

	ApplicationDefinitionKindCodec = jsonfield.Enum[ApplicationDefinitionKind](applicationDefinitionKinds)
)

func (t ApplicationDefinitionKind) String() string {
	return applicationDefinitionKinds.String(t)
}

// ParseApplicationDefinitionKind returns the ApplicationDefinitionKind value of the literal s.
func ParseApplicationDefinitionKind(s string) (ApplicationDefinitionKind, error) {
	return applicationDefinitionKinds.Parse(s)
}

func (t ApplicationDefinitionKind) MarshalText() ([]byte, error) {
	return applicationDefinitionKinds.MarshalText(t)
}

func (t *ApplicationDefinitionKind) UnmarshalText(b []byte) error {
	return applicationDefinitionKinds.UnmarshalText(t, b)
}
