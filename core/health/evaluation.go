package health

import (
	"github.com/opensvc/sfclient/core/fabric"
	"github.com/opensvc/sfclient/util/jsonfield"
)

type (
	// EvaluationKind is the discriminator value of a health evaluation.
	EvaluationKind string

	// Evaluation is implemented by the health evaluation records. An
	// evaluation explains why an entity has its aggregated health state,
	// and nests the evaluations of the unhealthy children.
	Evaluation interface {
		jsonfield.Variant[EvaluationKind]
		Base() *HealthEvaluation
	}

	// HealthEvaluation hosts the properties shared by all evaluations. It
	// is also the record of the "HealthEvaluation" kind.
	HealthEvaluation struct {
		AggregatedHealthState fabric.HealthState
		Description           *string
	}

	// EvaluationWrapper embeds an evaluation in the lists of unhealthy
	// evaluations.
	EvaluationWrapper struct {
		HealthEvaluation Evaluation
	}

	// Unhealthy hosts the children evaluations of the aggregate
	// evaluations.
	Unhealthy struct {
		UnhealthyEvaluations []EvaluationWrapper
	}

	ApplicationEvaluation struct {
		HealthEvaluation
		ApplicationName fabric.ApplicationName
		Unhealthy
	}

	ApplicationsEvaluation struct {
		HealthEvaluation
		MaxPercentUnhealthyApplications int32
		TotalCount                      int64
		Unhealthy
	}

	DeltaNodesCheckEvaluation struct {
		HealthEvaluation
		BaselineErrorCount            int64
		BaselineTotalCount            int64
		MaxPercentDeltaUnhealthyNodes int32
		TotalCount                    int64
		Unhealthy
	}

	EventEvaluation struct {
		HealthEvaluation
		ConsiderWarningAsError bool
		UnhealthyEvent         Event
	}

	NodeEvaluation struct {
		HealthEvaluation
		NodeName fabric.NodeName
		Unhealthy
	}

	NodesEvaluation struct {
		HealthEvaluation
		MaxPercentUnhealthyNodes int32
		TotalCount               int64
		Unhealthy
	}

	PartitionEvaluation struct {
		HealthEvaluation
		PartitionID fabric.PartitionID
		Unhealthy
	}

	PartitionsEvaluation struct {
		HealthEvaluation
		MaxPercentUnhealthyPartitionsPerService int32
		TotalCount                              int64
		Unhealthy
	}

	ReplicaEvaluation struct {
		HealthEvaluation
		PartitionID         fabric.PartitionID
		ReplicaOrInstanceID string
		Unhealthy
	}

	ServiceEvaluation struct {
		HealthEvaluation
		ServiceName fabric.ServiceName
		Unhealthy
	}

	ServicesEvaluation struct {
		HealthEvaluation
		ServiceTypeName             string
		MaxPercentUnhealthyServices int32
		TotalCount                  int64
		Unhealthy
	}

	SystemApplicationEvaluation struct {
		HealthEvaluation
		Unhealthy
	}

	UpgradeDomainNodesEvaluation struct {
		HealthEvaluation
		UpgradeDomainName        string
		MaxPercentUnhealthyNodes int32
		TotalCount               int64
		Unhealthy
	}
)

const (
	KindHealthEvaluation   EvaluationKind = "HealthEvaluation"
	KindApplication        EvaluationKind = "Application"
	KindApplications       EvaluationKind = "Applications"
	KindDeltaNodesCheck    EvaluationKind = "DeltaNodesCheck"
	KindEvent              EvaluationKind = "Event"
	KindNode               EvaluationKind = "Node"
	KindNodes              EvaluationKind = "Nodes"
	KindPartition          EvaluationKind = "Partition"
	KindPartitions         EvaluationKind = "Partitions"
	KindReplica            EvaluationKind = "Replica"
	KindService            EvaluationKind = "Service"
	KindServices           EvaluationKind = "Services"
	KindSystemApplication  EvaluationKind = "SystemApplication"
	KindUpgradeDomainNodes EvaluationKind = "UpgradeDomainNodes"
)

var (
	// Evaluations is the health evaluation family.
	Evaluations = newEvaluations()

	// EvaluationCodec is the codec of an evaluation of any known kind.
	EvaluationCodec jsonfield.Codec[Evaluation]

	EvaluationWrapperCodec = jsonfield.Object[EvaluationWrapper]()
)

func newEvaluations() *jsonfield.Union[EvaluationKind, Evaluation] {
	u := jsonfield.NewUnion[EvaluationKind, Evaluation]("HealthEvaluation", "Kind")
	u.Register(KindHealthEvaluation, func() Evaluation { return &HealthEvaluation{} })
	u.Register(KindApplication, func() Evaluation { return &ApplicationEvaluation{} })
	u.Register(KindApplications, func() Evaluation { return &ApplicationsEvaluation{} })
	u.Register(KindDeltaNodesCheck, func() Evaluation { return &DeltaNodesCheckEvaluation{} })
	u.Register(KindEvent, func() Evaluation { return &EventEvaluation{} })
	u.Register(KindNode, func() Evaluation { return &NodeEvaluation{} })
	u.Register(KindNodes, func() Evaluation { return &NodesEvaluation{} })
	u.Register(KindPartition, func() Evaluation { return &PartitionEvaluation{} })
	u.Register(KindPartitions, func() Evaluation { return &PartitionsEvaluation{} })
	u.Register(KindReplica, func() Evaluation { return &ReplicaEvaluation{} })
	u.Register(KindService, func() Evaluation { return &ServiceEvaluation{} })
	u.Register(KindServices, func() Evaluation { return &ServicesEvaluation{} })
	u.Register(KindSystemApplication, func() Evaluation { return &SystemApplicationEvaluation{} })
	u.Register(KindUpgradeDomainNodes, func() Evaluation { return &UpgradeDomainNodesEvaluation{} })
	return u
}

func init() {
	EvaluationCodec = Evaluations.Codec()
}

// DecodeEvaluation returns the evaluation record of the JSON object b.
func DecodeEvaluation(b []byte) (Evaluation, error) {
	return jsonfield.UnmarshalValue(b, EvaluationCodec)
}

func (t *HealthEvaluation) Kind() EvaluationKind { return KindHealthEvaluation }

func (t *HealthEvaluation) Base() *HealthEvaluation { return t }

func (t *HealthEvaluation) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Required("AggregatedHealthState", &t.AggregatedHealthState, fabric.HealthStateCodec),
		jsonfield.Optional("Description", &t.Description, jsonfield.String),
	}
}

func (t *EvaluationWrapper) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Required("HealthEvaluation", &t.HealthEvaluation, EvaluationCodec),
	}
}

func (t *Unhealthy) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.OptionalList("UnhealthyEvaluations", &t.UnhealthyEvaluations, EvaluationWrapperCodec),
	}
}

// Children returns the nested evaluations.
func (t *Unhealthy) Children() []Evaluation {
	l := make([]Evaluation, 0, len(t.UnhealthyEvaluations))
	for _, w := range t.UnhealthyEvaluations {
		if w.HealthEvaluation != nil {
			l = append(l, w.HealthEvaluation)
		}
	}
	return l
}

func (t *ApplicationEvaluation) Kind() EvaluationKind { return KindApplication }

func (t *ApplicationEvaluation) JSONFields() jsonfield.Fields {
	return t.HealthEvaluation.JSONFields().With(
		jsonfield.Required("ApplicationName", &t.ApplicationName, fabric.ApplicationNameCodec),
	).With(t.Unhealthy.JSONFields()...)
}

func (t *ApplicationsEvaluation) Kind() EvaluationKind { return KindApplications }

func (t *ApplicationsEvaluation) JSONFields() jsonfield.Fields {
	return t.HealthEvaluation.JSONFields().With(
		jsonfield.Required("MaxPercentUnhealthyApplications", &t.MaxPercentUnhealthyApplications, jsonfield.Int32),
		jsonfield.Required("TotalCount", &t.TotalCount, jsonfield.Int64),
	).With(t.Unhealthy.JSONFields()...)
}

func (t *DeltaNodesCheckEvaluation) Kind() EvaluationKind { return KindDeltaNodesCheck }

func (t *DeltaNodesCheckEvaluation) JSONFields() jsonfield.Fields {
	return t.HealthEvaluation.JSONFields().With(
		jsonfield.Required("BaselineErrorCount", &t.BaselineErrorCount, jsonfield.Int64),
		jsonfield.Required("BaselineTotalCount", &t.BaselineTotalCount, jsonfield.Int64),
		jsonfield.Required("MaxPercentDeltaUnhealthyNodes", &t.MaxPercentDeltaUnhealthyNodes, jsonfield.Int32),
		jsonfield.Required("TotalCount", &t.TotalCount, jsonfield.Int64),
	).With(t.Unhealthy.JSONFields()...)
}

func (t *EventEvaluation) Kind() EvaluationKind { return KindEvent }

func (t *EventEvaluation) JSONFields() jsonfield.Fields {
	return t.HealthEvaluation.JSONFields().With(
		jsonfield.Required("ConsiderWarningAsError", &t.ConsiderWarningAsError, jsonfield.Bool),
		jsonfield.Required("UnhealthyEvent", &t.UnhealthyEvent, EventCodec),
	)
}

func (t *NodeEvaluation) Kind() EvaluationKind { return KindNode }

func (t *NodeEvaluation) JSONFields() jsonfield.Fields {
	return t.HealthEvaluation.JSONFields().With(
		jsonfield.Required("NodeName", &t.NodeName, fabric.NodeNameCodec),
	).With(t.Unhealthy.JSONFields()...)
}

func (t *NodesEvaluation) Kind() EvaluationKind { return KindNodes }

func (t *NodesEvaluation) JSONFields() jsonfield.Fields {
	return t.HealthEvaluation.JSONFields().With(
		jsonfield.Required("MaxPercentUnhealthyNodes", &t.MaxPercentUnhealthyNodes, jsonfield.Int32),
		jsonfield.Required("TotalCount", &t.TotalCount, jsonfield.Int64),
	).With(t.Unhealthy.JSONFields()...)
}

func (t *PartitionEvaluation) Kind() EvaluationKind { return KindPartition }

func (t *PartitionEvaluation) JSONFields() jsonfield.Fields {
	return t.HealthEvaluation.JSONFields().With(
		jsonfield.Required("PartitionId", &t.PartitionID, fabric.PartitionIDCodec),
	).With(t.Unhealthy.JSONFields()...)
}

func (t *PartitionsEvaluation) Kind() EvaluationKind { return KindPartitions }

func (t *PartitionsEvaluation) JSONFields() jsonfield.Fields {
	return t.HealthEvaluation.JSONFields().With(
		jsonfield.Required("MaxPercentUnhealthyPartitionsPerService", &t.MaxPercentUnhealthyPartitionsPerService, jsonfield.Int32),
		jsonfield.Required("TotalCount", &t.TotalCount, jsonfield.Int64),
	).With(t.Unhealthy.JSONFields()...)
}

func (t *ReplicaEvaluation) Kind() EvaluationKind { return KindReplica }

func (t *ReplicaEvaluation) JSONFields() jsonfield.Fields {
	return t.HealthEvaluation.JSONFields().With(
		jsonfield.Required("PartitionId", &t.PartitionID, fabric.PartitionIDCodec),
		jsonfield.Required("ReplicaOrInstanceId", &t.ReplicaOrInstanceID, jsonfield.String),
	).With(t.Unhealthy.JSONFields()...)
}

func (t *ServiceEvaluation) Kind() EvaluationKind { return KindService }

func (t *ServiceEvaluation) JSONFields() jsonfield.Fields {
	return t.HealthEvaluation.JSONFields().With(
		jsonfield.Required("ServiceName", &t.ServiceName, fabric.ServiceNameCodec),
	).With(t.Unhealthy.JSONFields()...)
}

func (t *ServicesEvaluation) Kind() EvaluationKind { return KindServices }

func (t *ServicesEvaluation) JSONFields() jsonfield.Fields {
	return t.HealthEvaluation.JSONFields().With(
		jsonfield.Required("ServiceTypeName", &t.ServiceTypeName, jsonfield.String),
		jsonfield.Required("MaxPercentUnhealthyServices", &t.MaxPercentUnhealthyServices, jsonfield.Int32),
		jsonfield.Required("TotalCount", &t.TotalCount, jsonfield.Int64),
	).With(t.Unhealthy.JSONFields()...)
}

func (t *SystemApplicationEvaluation) Kind() EvaluationKind { return KindSystemApplication }

func (t *SystemApplicationEvaluation) JSONFields() jsonfield.Fields {
	return t.HealthEvaluation.JSONFields().With(t.Unhealthy.JSONFields()...)
}

func (t *UpgradeDomainNodesEvaluation) Kind() EvaluationKind { return KindUpgradeDomainNodes }

func (t *UpgradeDomainNodesEvaluation) JSONFields() jsonfield.Fields {
	return t.HealthEvaluation.JSONFields().With(
		jsonfield.Required("UpgradeDomainName", &t.UpgradeDomainName, jsonfield.String),
		jsonfield.Required("MaxPercentUnhealthyNodes", &t.MaxPercentUnhealthyNodes, jsonfield.Int32),
		jsonfield.Required("TotalCount", &t.TotalCount, jsonfield.Int64),
	).With(t.Unhealthy.JSONFields()...)
}

// Walk calls fn for e and each of its nested evaluations, depth first.
// depth is 0 for e.
func Walk(e Evaluation, fn func(e Evaluation, depth int)) {
	walk(e, 0, fn)
}

func walk(e Evaluation, depth int, fn func(Evaluation, int)) {
	if e == nil {
		return
	}
	fn(e, depth)
	p, ok := e.(interface{ Children() []Evaluation })
	if !ok {
		return
	}
	for _, child := range p.Children() {
		walk(child, depth+1, fn)
	}
}
