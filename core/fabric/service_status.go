package fabric

import (
	"github.com/opensvc/sfclient/util/enum"
	"github.com/opensvc/sfclient/util/jsonfield"
)

// ServiceStatus is the lifecycle status of a service.
type ServiceStatus int

// ServiceStatusUnrecognized is decoded from literals unknown to this client.
const ServiceStatusUnrecognized ServiceStatus = -1

const (
	ServiceStatusUnknown ServiceStatus = iota
	ServiceStatusActive
	ServiceStatusUpgrading
	ServiceStatusDeleting
	ServiceStatusCreating
	ServiceStatusFailed
)

var (
	serviceStatuses = enum.New("ServiceStatus", map[ServiceStatus]string{
		ServiceStatusUnknown:   "Unknown",
		ServiceStatusActive:    "Active",
		ServiceStatusUpgrading: "Upgrading",
		ServiceStatusDeleting:  "Deleting",
		ServiceStatusCreating:  "Creating",
		ServiceStatusFailed:    "Failed",
	}).Lenient(ServiceStatusUnrecognized)

	ServiceStatusCodec = jsonfield.Enum[ServiceStatus](serviceStatuses)
)

func (t ServiceStatus) String() string {
	return serviceStatuses.String(t)
}

// ParseServiceStatus returns the ServiceStatus value of the literal s.
func ParseServiceStatus(s string) (ServiceStatus, error) {
	return serviceStatuses.Parse(s)
}

func (t ServiceStatus) MarshalText() ([]byte, error) {
	return serviceStatuses.MarshalText(t)
}

func (t *ServiceStatus) UnmarshalText(b []byte) error {
	return serviceStatuses.UnmarshalText(t, b)
}
