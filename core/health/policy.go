package health

import (
	"github.com/opensvc/sfclient/core/fabric"
	"github.com/opensvc/sfclient/util/jsonfield"
)

type (
	// ServiceTypeHealthPolicy bounds the unhealthy children tolerated for
	// the services of a type.
	ServiceTypeHealthPolicy struct {
		MaxPercentUnhealthyPartitionsPerService *int32
		MaxPercentUnhealthyReplicasPerPartition *int32
		MaxPercentUnhealthyServices             *int32
	}

	// ServiceTypeHealthPolicyMapItem is an entry of the per service type
	// policy map. Map entries are transmitted as a list of Key/Value
	// objects, and kept in the received order.
	ServiceTypeHealthPolicyMapItem struct {
		Key   string
		Value ServiceTypeHealthPolicy
	}

	ApplicationHealthPolicy struct {
		ConsiderWarningAsError                  *bool
		MaxPercentUnhealthyDeployedApplications *int32
		DefaultServiceTypeHealthPolicy          *ServiceTypeHealthPolicy
		ServiceTypeHealthPolicyMap              []ServiceTypeHealthPolicyMapItem
	}

	ApplicationHealthPolicyMapItem struct {
		Key   fabric.ApplicationName
		Value ApplicationHealthPolicy
	}

	// ApplicationHealthPolicies is the per application policy map.
	ApplicationHealthPolicies struct {
		ApplicationHealthPolicyMap []ApplicationHealthPolicyMapItem
	}

	// ApplicationTypeHealthPolicyMapItem bounds the percentage of
	// unhealthy applications of a type.
	ApplicationTypeHealthPolicyMapItem struct {
		Key   string
		Value int32
	}

	ClusterHealthPolicy struct {
		ConsiderWarningAsError          *bool
		MaxPercentUnhealthyNodes        *int32
		MaxPercentUnhealthyApplications *int32
		ApplicationTypeHealthPolicyMap  []ApplicationTypeHealthPolicyMapItem
	}

	// ClusterHealthPolicies is the body of the cluster health queries
	// evaluated with custom policies.
	ClusterHealthPolicies struct {
		ApplicationHealthPolicyMap []ApplicationHealthPolicyMapItem
		ClusterHealthPolicy        *ClusterHealthPolicy
	}

	ClusterUpgradeHealthPolicy struct {
		MaxPercentDeltaUnhealthyNodes              *int32
		MaxPercentUpgradeDomainDeltaUnhealthyNodes *int32
	}
)

var (
	ServiceTypeHealthPolicyCodec    = jsonfield.Object[ServiceTypeHealthPolicy]()
	ApplicationHealthPolicyCodec    = jsonfield.Object[ApplicationHealthPolicy]()
	ApplicationHealthPoliciesCodec  = jsonfield.Object[ApplicationHealthPolicies]()
	ClusterHealthPolicyCodec        = jsonfield.Object[ClusterHealthPolicy]()
	ClusterHealthPoliciesCodec      = jsonfield.Object[ClusterHealthPolicies]()
	ClusterUpgradeHealthPolicyCodec = jsonfield.Object[ClusterUpgradeHealthPolicy]()
)

func (t *ServiceTypeHealthPolicy) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Optional("MaxPercentUnhealthyPartitionsPerService", &t.MaxPercentUnhealthyPartitionsPerService, jsonfield.Int32),
		jsonfield.Optional("MaxPercentUnhealthyReplicasPerPartition", &t.MaxPercentUnhealthyReplicasPerPartition, jsonfield.Int32),
		jsonfield.Optional("MaxPercentUnhealthyServices", &t.MaxPercentUnhealthyServices, jsonfield.Int32),
	}
}

func (t *ServiceTypeHealthPolicyMapItem) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Required("Key", &t.Key, jsonfield.String),
		jsonfield.Required("Value", &t.Value, ServiceTypeHealthPolicyCodec),
	}
}

func (t *ApplicationHealthPolicy) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Optional("ConsiderWarningAsError", &t.ConsiderWarningAsError, jsonfield.Bool),
		jsonfield.Optional("MaxPercentUnhealthyDeployedApplications", &t.MaxPercentUnhealthyDeployedApplications, jsonfield.Int32),
		jsonfield.Optional("DefaultServiceTypeHealthPolicy", &t.DefaultServiceTypeHealthPolicy, ServiceTypeHealthPolicyCodec),
		jsonfield.OptionalList("ServiceTypeHealthPolicyMap", &t.ServiceTypeHealthPolicyMap, jsonfield.Object[ServiceTypeHealthPolicyMapItem]()),
	}
}

func (t *ApplicationHealthPolicyMapItem) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Required("Key", &t.Key, fabric.ApplicationNameCodec),
		jsonfield.Required("Value", &t.Value, ApplicationHealthPolicyCodec),
	}
}

func (t *ApplicationHealthPolicies) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.OptionalList("ApplicationHealthPolicyMap", &t.ApplicationHealthPolicyMap, jsonfield.Object[ApplicationHealthPolicyMapItem]()),
	}
}

func (t *ApplicationTypeHealthPolicyMapItem) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Required("Key", &t.Key, jsonfield.String),
		jsonfield.Required("Value", &t.Value, jsonfield.Int32),
	}
}

func (t *ClusterHealthPolicy) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Optional("ConsiderWarningAsError", &t.ConsiderWarningAsError, jsonfield.Bool),
		jsonfield.Optional("MaxPercentUnhealthyNodes", &t.MaxPercentUnhealthyNodes, jsonfield.Int32),
		jsonfield.Optional("MaxPercentUnhealthyApplications", &t.MaxPercentUnhealthyApplications, jsonfield.Int32),
		jsonfield.OptionalList("ApplicationTypeHealthPolicyMap", &t.ApplicationTypeHealthPolicyMap, jsonfield.Object[ApplicationTypeHealthPolicyMapItem]()),
	}
}

func (t *ClusterHealthPolicies) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.OptionalList("ApplicationHealthPolicyMap", &t.ApplicationHealthPolicyMap, jsonfield.Object[ApplicationHealthPolicyMapItem]()),
		jsonfield.Optional("ClusterHealthPolicy", &t.ClusterHealthPolicy, ClusterHealthPolicyCodec),
	}
}

func (t *ClusterUpgradeHealthPolicy) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Optional("MaxPercentDeltaUnhealthyNodes", &t.MaxPercentDeltaUnhealthyNodes, jsonfield.Int32),
		jsonfield.Optional("MaxPercentUpgradeDomainDeltaUnhealthyNodes", &t.MaxPercentUpgradeDomainDeltaUnhealthyNodes, jsonfield.Int32),
	}
}

// Lookup returns the policy of the application, and false if the map has
// no entry for it.
func (t ApplicationHealthPolicies) Lookup(name fabric.ApplicationName) (ApplicationHealthPolicy, bool) {
	for _, item := range t.ApplicationHealthPolicyMap {
		if item.Key == name {
			return item.Value, true
		}
	}
	return ApplicationHealthPolicy{}, false
}
