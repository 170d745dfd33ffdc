package fabric

import (
	"github.com/opensvc/sfclient/util/enum"
	"github.com/opensvc/sfclient/util/jsonfield"
)

// ApplicationStatus is the lifecycle status of an application.
type ApplicationStatus int

// ApplicationStatusUnrecognized is decoded from literals unknown to this client.
const ApplicationStatusUnrecognized ApplicationStatus = -1

const (
	ApplicationStatusInvalid ApplicationStatus = iota
	ApplicationStatusReady
	ApplicationStatusUpgrading
	ApplicationStatusCreating
	ApplicationStatusDeleting
	ApplicationStatusFailed
)

var (
	applicationStatuses = enum.New("ApplicationStatus", map[ApplicationStatus]string{
		ApplicationStatusInvalid:   "Invalid",
		ApplicationStatusReady:     "Ready",
		ApplicationStatusUpgrading: "Upgrading",
		ApplicationStatusCreating:  "Creating",
		ApplicationStatusDeleting:  "Deleting",
		ApplicationStatusFailed:    "Failed",
	}).Lenient(ApplicationStatusUnrecognized)

	ApplicationStatusCodec = jsonfield.Enum[ApplicationStatus](applicationStatuses)
)

func (t ApplicationStatus) String() string {
	return applicationStatuses.String(t)
}

// ParseApplicationStatus returns the ApplicationStatus value of the literal s.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	return applicationStatuses.Parse(s)
}

func (t ApplicationStatus) MarshalText() ([]byte, error) {
	return applicationStatuses.MarshalText(t)
}

func (t *ApplicationStatus) UnmarshalText(b []byte) error {
	return applicationStatuses.UnmarshalText(t, b)
}
