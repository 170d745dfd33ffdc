package event

import (
	"fmt"
	"strings"
	"time"
)

// Subject returns the identity of the entity the event is about, or an
// empty string for cluster-wide events.
func Subject(e Event) string {
	switch v := e.(type) {
	case ApplicationScoped:
		return string(v.Application().ApplicationID)
	case NodeScoped:
		return string(v.Node().NodeName)
	case PartitionScoped:
		return v.Partition().PartitionID.String()
	case ReplicaScoped:
		r := v.Replica()
		return fmt.Sprintf("%s/%d", r.PartitionID, r.ReplicaID)
	case ServiceScoped:
		return string(v.Service().ServiceID)
	default:
		return ""
	}
}

// Render formats an event as a single line.
func Render(e Event) string {
	c := e.Common()
	l := []string{
		c.TimeStamp.Format(time.RFC3339),
		string(e.Kind()),
	}
	if s := Subject(e); s != "" {
		l = append(l, s)
	}
	if r, ok := e.(HealthReporter); ok {
		h := r.Report()
		l = append(l, fmt.Sprintf("%s:%s=%s", h.SourceID, h.Property, h.HealthState))
	}
	return strings.Join(l, " ")
}
