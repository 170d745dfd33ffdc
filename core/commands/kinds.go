package commands

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/opensvc/sfclient/core/event"
	"github.com/opensvc/sfclient/core/health"
	"github.com/opensvc/sfclient/core/inventory"
	"github.com/opensvc/sfclient/core/output"
)

type (
	// CmdKinds lists the discriminator values of a polymorphic family.
	CmdKinds struct {
		OptsGlobal
		Family string
	}

	// FamilyInfo describes a polymorphic family.
	FamilyInfo struct {
		Name          string   `json:"name"`
		Family        string   `json:"family"`
		Discriminator string   `json:"discriminator"`
		Kinds         []string `json:"kinds"`
	}

	kindLister interface {
		Family() string
		Discriminator() string
	}
)

var ErrUnknownFamily = errors.New("unknown family")

func kindStrings[K ~string](l []K) []string {
	s := make([]string, len(l))
	for i, k := range l {
		s[i] = string(k)
	}
	return s
}

func familyInfo[K ~string](name string, u kindLister, kinds []K) FamilyInfo {
	return FamilyInfo{
		Name:          name,
		Family:        u.Family(),
		Discriminator: u.Discriminator(),
		Kinds:         kindStrings(kinds),
	}
}

// Families returns the polymorphic families, sorted by name.
func Families() []FamilyInfo {
	l := []FamilyInfo{
		familyInfo("event", event.Union, event.Union.Kinds()),
		familyInfo("application-event", event.ApplicationEvents, event.ApplicationEvents.Kinds()),
		familyInfo("cluster-event", event.ClusterEvents, event.ClusterEvents.Kinds()),
		familyInfo("node-event", event.NodeEvents, event.NodeEvents.Kinds()),
		familyInfo("partition-event", event.PartitionEvents, event.PartitionEvents.Kinds()),
		familyInfo("replica-event", event.ReplicaEvents, event.ReplicaEvents.Kinds()),
		familyInfo("service-event", event.ServiceEvents, event.ServiceEvents.Kinds()),
		familyInfo("health-evaluation", health.Evaluations, health.Evaluations.Kinds()),
		familyInfo("service-info", inventory.Services, inventory.Services.Kinds()),
		familyInfo("partition-info", inventory.Partitions, inventory.Partitions.Kinds()),
		familyInfo("partition-information", inventory.Partitionings, inventory.Partitionings.Kinds()),
	}
	sort.Slice(l, func(i, j int) bool { return l[i].Name < l[j].Name })
	return l
}

// LookupFamily returns the family named name, by its command name or its
// base kind, case insensitively.
func LookupFamily(name string) (FamilyInfo, bool) {
	for _, f := range Families() {
		if strings.EqualFold(f.Name, name) || strings.EqualFold(f.Family, name) {
			return f, true
		}
	}
	return FamilyInfo{}, false
}

func (t *CmdKinds) Run() error {
	if t.Family == "" {
		l := Families()
		return t.render(l, func() string {
			tbl := output.Table{Header: []string{"NAME", "FAMILY", "DISCRIMINATOR", "KINDS"}}
			for _, f := range l {
				tbl.AddRow(f.Name, f.Family, f.Discriminator, strings.Join(f.Kinds, ","))
			}
			return tbl.Render()
		})
	}
	f, ok := LookupFamily(t.Family)
	if !ok {
		return errors.Wrapf(ErrUnknownFamily, "%s", t.Family)
	}
	return t.render(f.Kinds, func() string {
		return strings.Join(f.Kinds, "\n") + "\n"
	})
}
