// Package event models the cluster event store records.
//
// Every record carries a "Kind" discriminator as its first property. The
// Union family decodes any known kind. The per-scope families
// (ApplicationEvents, NodeEvents, ...) decode only the kinds of their
// scope, plus the scope base kind ("ApplicationEvent", "NodeEvent", ...)
// which maps to the scope base record.
package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/opensvc/sfclient/util/jsonfield"
)

type (
	// Kind is the discriminator value of an event record.
	Kind string

	// Event is implemented by every event record.
	Event interface {
		jsonfield.Variant[Kind]
		Common() *FabricEvent
	}

	// FabricEvent hosts the properties shared by all events. It is also
	// the record of the "FabricEvent" kind.
	FabricEvent struct {
		EventInstanceID     uuid.UUID
		Category            *string
		TimeStamp           time.Time
		HasCorrelatedEvents *bool
	}

	// Events is a list of events of any kind.
	Events []Event

	entry struct {
		kind  Kind
		scope Kind
		new   func() Event
	}
)

const (
	// Discriminator is the name of the event discriminator property.
	Discriminator = "Kind"

	KindFabricEvent Kind = "FabricEvent"
)

var (
	registry []entry

	// Union decodes events of any known kind.
	Union *jsonfield.Union[Kind, Event]

	// Codec is the codec of an event of any known kind.
	Codec jsonfield.Codec[Event]

	// ListCodec is the codec of a list of events of any known kind.
	ListCodec jsonfield.Codec[[]Event]
)

func init() {
	register(KindFabricEvent, "", func() Event { return &FabricEvent{} })
	registerApplicationEvents()
	registerClusterEvents()
	registerNodeEvents()
	registerPartitionEvents()
	registerReplicaEvents()
	registerServiceEvents()

	Union = jsonfield.NewUnion[Kind, Event]("FabricEvent", Discriminator)
	for _, e := range registry {
		Union.Register(e.kind, e.new)
	}
	Codec = Union.Codec()
	ListCodec = jsonfield.List(Codec)

	ApplicationEvents = scopeUnion[ApplicationScoped](KindApplicationEvent)
	ClusterEvents = scopeUnion[ClusterScoped](KindClusterEvent)
	NodeEvents = scopeUnion[NodeScoped](KindNodeEvent)
	PartitionEvents = scopeUnion[PartitionScoped](KindPartitionEvent)
	ReplicaEvents = scopeUnion[ReplicaScoped](KindReplicaEvent)
	ServiceEvents = scopeUnion[ServiceScoped](KindServiceEvent)
}

// register adds a kind to the registry. scope is the kind of the scope
// base record, and is empty for kinds outside any scope.
func register(kind, scope Kind, fn func() Event) {
	registry = append(registry, entry{kind: kind, scope: scope, new: fn})
}

// scopeUnion returns the family of the kinds registered with scope.
func scopeUnion[T Event](scope Kind) *jsonfield.Union[Kind, T] {
	u := jsonfield.NewUnion[Kind, T](string(scope), Discriminator)
	for _, e := range registry {
		if e.scope != scope {
			continue
		}
		fn := e.new
		u.Register(e.kind, func() T { return fn().(T) })
	}
	return u
}

// Kinds returns the known event kinds, in registration order.
func Kinds() []Kind {
	return Union.Kinds()
}

// New allocates the record of the event kind.
func New(kind string) (Event, error) {
	return Union.New(kind)
}

// Decode returns the event record of the JSON object b.
func Decode(b []byte) (Event, error) {
	return jsonfield.UnmarshalValue(b, Codec)
}

// DecodeList returns the event records of the JSON array b.
func DecodeList(b []byte) (Events, error) {
	return jsonfield.UnmarshalValue(b, ListCodec)
}

// Encode returns the JSON encoding of e, its kind as first property.
func Encode(e Event) ([]byte, error) {
	return jsonfield.MarshalValue(e, Codec)
}

func (t *FabricEvent) Kind() Kind {
	return KindFabricEvent
}

func (t *FabricEvent) Common() *FabricEvent {
	return t
}

func (t *FabricEvent) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Required("EventInstanceId", &t.EventInstanceID, jsonfield.UUID),
		jsonfield.Optional("Category", &t.Category, jsonfield.String),
		jsonfield.Required("TimeStamp", &t.TimeStamp, jsonfield.Time),
		jsonfield.Optional("HasCorrelatedEvents", &t.HasCorrelatedEvents, jsonfield.Bool),
	}
}

func (t Events) MarshalJSON() ([]byte, error) {
	return jsonfield.MarshalValue([]Event(t), ListCodec)
}

func (t *Events) UnmarshalJSON(b []byte) error {
	l, err := DecodeList(b)
	if err != nil {
		return err
	}
	*t = l
	return nil
}
