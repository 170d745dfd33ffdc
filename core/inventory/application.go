package inventory

import (
	"github.com/opensvc/sfclient/core/fabric"
	"github.com/opensvc/sfclient/core/upgrade"
	"github.com/opensvc/sfclient/util/jsonfield"
)

type (
	ApplicationInfo struct {
		ID                        fabric.ApplicationID
		Name                      fabric.ApplicationName
		TypeName                  string
		TypeVersion               string
		Status                    fabric.ApplicationStatus
		Parameters                []upgrade.ApplicationParameter
		HealthState               fabric.HealthState
		ApplicationDefinitionKind *fabric.ApplicationDefinitionKind
	}

	PagedApplicationInfoList struct {
		Page[ApplicationInfo]
	}
)

var (
	ApplicationInfoCodec          = jsonfield.Object[ApplicationInfo]()
	PagedApplicationInfoListCodec = jsonfield.Object[PagedApplicationInfoList]()
)

func (t *ApplicationInfo) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Required("Id", &t.ID, fabric.ApplicationIDCodec),
		jsonfield.Required("Name", &t.Name, fabric.ApplicationNameCodec),
		jsonfield.Required("TypeName", &t.TypeName, jsonfield.String),
		jsonfield.Required("TypeVersion", &t.TypeVersion, jsonfield.String),
		jsonfield.Required("Status", &t.Status, fabric.ApplicationStatusCodec),
		jsonfield.OptionalList("Parameters", &t.Parameters, upgrade.ApplicationParameterCodec),
		jsonfield.Required("HealthState", &t.HealthState, fabric.HealthStateCodec),
		jsonfield.Optional("ApplicationDefinitionKind", &t.ApplicationDefinitionKind, fabric.ApplicationDefinitionKindCodec),
	}
}

func (t *PagedApplicationInfoList) JSONFields() jsonfield.Fields {
	return t.fields(ApplicationInfoCodec)
}
