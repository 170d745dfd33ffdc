package fabric

import "sort"

type (
	// EnumInfo describes an enumeration and its literals.
	EnumInfo struct {
		Name     string   `json:"name"`
		Literals []string `json:"literals"`
		Lenient  bool     `json:"lenient"`
	}

	lister interface {
		Name() string
		Names() []string
		IsLenient() bool
	}
)

var tables = []lister{
	applicationDefinitionKinds,
	applicationStatuses,
	failureActions,
	healthStates,
	nodeStatuses,
	partitionStatuses,
	serviceKinds,
	servicePartitionKinds,
	serviceStatuses,
	upgradeDomainStates,
	upgradeKinds,
	upgradeModes,
	upgradeStates,
}

// Enums returns the description of the enumerations, sorted by name.
func Enums() []EnumInfo {
	l := make([]EnumInfo, len(tables))
	for i, t := range tables {
		l[i] = EnumInfo{
			Name:     t.Name(),
			Literals: t.Names(),
			Lenient:  t.IsLenient(),
		}
	}
	sort.Slice(l, func(i, j int) bool { return l[i].Name < l[j].Name })
	return l
}

// LookupEnum returns the description of the enumeration name.
func LookupEnum(name string) (EnumInfo, bool) {
	for _, e := range Enums() {
		if e.Name == name {
			return e, true
		}
	}
	return EnumInfo{}, false
}
