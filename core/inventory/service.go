package inventory

import (
	"github.com/opensvc/sfclient/core/fabric"
	"github.com/opensvc/sfclient/util/jsonfield"
)

type (
	// Kind is the discriminator value of the service and partition
	// families.
	Kind string

	// Service is implemented by the service records.
	Service interface {
		jsonfield.Variant[Kind]
		Info() *ServiceInfo
	}

	// ServiceInfo hosts the properties shared by the stateful and
	// stateless services. It is also the record of the "ServiceInfo"
	// kind.
	ServiceInfo struct {
		ID              fabric.ServiceID
		Name            fabric.ServiceName
		TypeName        string
		ManifestVersion string
		HealthState     fabric.HealthState
		ServiceStatus   fabric.ServiceStatus
		IsServiceGroup  *bool
	}

	StatefulServiceInfo struct {
		ServiceInfo
		HasPersistedState bool
	}

	StatelessServiceInfo struct {
		ServiceInfo
	}

	PagedServiceInfoList struct {
		Page[Service]
	}
)

const (
	// ServiceKindProperty is the discriminator property of the service
	// and service partition families.
	ServiceKindProperty = "ServiceKind"

	KindServiceInfo Kind = "ServiceInfo"
	KindStateful    Kind = "Stateful"
	KindStateless   Kind = "Stateless"
)

var (
	// Services is the service family.
	Services = jsonfield.NewUnion[Kind, Service]("ServiceInfo", ServiceKindProperty)

	ServiceCodec jsonfield.Codec[Service]

	PagedServiceInfoListCodec = jsonfield.Object[PagedServiceInfoList]()
)

func init() {
	Services.Register(KindServiceInfo, func() Service { return &ServiceInfo{} })
	Services.Register(KindStateful, func() Service { return &StatefulServiceInfo{} })
	Services.Register(KindStateless, func() Service { return &StatelessServiceInfo{} })
	ServiceCodec = Services.Codec()
}

func (t *ServiceInfo) Kind() Kind { return KindServiceInfo }

func (t *ServiceInfo) Info() *ServiceInfo { return t }

func (t *ServiceInfo) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Required("Id", &t.ID, fabric.ServiceIDCodec),
		jsonfield.Required("Name", &t.Name, fabric.ServiceNameCodec),
		jsonfield.Required("TypeName", &t.TypeName, jsonfield.String),
		jsonfield.Required("ManifestVersion", &t.ManifestVersion, jsonfield.String),
		jsonfield.Required("HealthState", &t.HealthState, fabric.HealthStateCodec),
		jsonfield.Required("ServiceStatus", &t.ServiceStatus, fabric.ServiceStatusCodec),
		jsonfield.Optional("IsServiceGroup", &t.IsServiceGroup, jsonfield.Bool),
	}
}

func (t *StatefulServiceInfo) Kind() Kind { return KindStateful }

func (t *StatefulServiceInfo) JSONFields() jsonfield.Fields {
	return t.ServiceInfo.JSONFields().With(
		jsonfield.Required("HasPersistedState", &t.HasPersistedState, jsonfield.Bool),
	)
}

func (t *StatelessServiceInfo) Kind() Kind { return KindStateless }

func (t *PagedServiceInfoList) JSONFields() jsonfield.Fields {
	return t.fields(ServiceCodec)
}
