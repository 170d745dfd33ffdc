package client

// HealthStateFilter selects the entities or events of a health query by
// health state. Values are combined with a bitwise or.
type HealthStateFilter int

const (
	HealthStateFilterDefault HealthStateFilter = 0
	HealthStateFilterNone    HealthStateFilter = 1
	HealthStateFilterOk      HealthStateFilter = 2
	HealthStateFilterWarning HealthStateFilter = 4
	HealthStateFilterError   HealthStateFilter = 8
	HealthStateFilterAll     HealthStateFilter = 65535
)

type (
	// GetClusterHealthParams defines parameters for GetClusterHealth.
	GetClusterHealthParams struct {
		NodesHealthStateFilter                   *HealthStateFilter
		ApplicationsHealthStateFilter            *HealthStateFilter
		EventsHealthStateFilter                  *HealthStateFilter
		ExcludeHealthStatistics                  *bool
		IncludeSystemApplicationHealthStatistics *bool
	}

	// GetNodeInfoListParams defines parameters for GetNodeInfoList.
	GetNodeInfoListParams struct {
		// NodeStatusFilter is one of default, all, up, down, enabling,
		// disabling, disabled, unknown, removed.
		NodeStatusFilter  *string
		ContinuationToken *string
		MaxResults        *int64
	}

	// GetNodeHealthParams defines parameters for GetNodeHealth.
	GetNodeHealthParams struct {
		EventsHealthStateFilter *HealthStateFilter
	}

	// ReportHealthParams defines parameters for the health report
	// operations.
	ReportHealthParams struct {
		Immediate *bool
	}

	// GetApplicationInfoListParams defines parameters for
	// GetApplicationInfoList.
	GetApplicationInfoListParams struct {
		ApplicationTypeName          *string
		ExcludeApplicationParameters *bool
		ContinuationToken            *string
		MaxResults                   *int64
	}

	// GetServiceInfoListParams defines parameters for GetServiceInfoList.
	GetServiceInfoListParams struct {
		ServiceTypeName   *string
		ContinuationToken *string
	}

	// GetPartitionInfoListParams defines parameters for
	// GetPartitionInfoList.
	GetPartitionInfoListParams struct {
		ContinuationToken *string
	}

	// GetEventListParams defines parameters for the event store queries.
	// StartTimeUtc and EndTimeUtc are required.
	GetEventListParams struct {
		StartTimeUtc          string
		EndTimeUtc            string
		EventsTypesFilter     *string
		ExcludeAnalysisEvents *bool
		SkipCorrelationLookup *bool
	}
)

func (r *request) addClusterHealthParams(p *GetClusterHealthParams) error {
	if p == nil {
		return nil
	}
	if err := addOptionalQuery(r, "NodesHealthStateFilter", p.NodesHealthStateFilter); err != nil {
		return err
	}
	if err := addOptionalQuery(r, "ApplicationsHealthStateFilter", p.ApplicationsHealthStateFilter); err != nil {
		return err
	}
	if err := addOptionalQuery(r, "EventsHealthStateFilter", p.EventsHealthStateFilter); err != nil {
		return err
	}
	if err := addOptionalQuery(r, "ExcludeHealthStatistics", p.ExcludeHealthStatistics); err != nil {
		return err
	}
	return addOptionalQuery(r, "IncludeSystemApplicationHealthStatistics", p.IncludeSystemApplicationHealthStatistics)
}

func (r *request) addEventListParams(p GetEventListParams) error {
	if err := r.addQuery("StartTimeUtc", p.StartTimeUtc); err != nil {
		return err
	}
	if err := r.addQuery("EndTimeUtc", p.EndTimeUtc); err != nil {
		return err
	}
	if err := addOptionalQuery(r, "EventsTypesFilter", p.EventsTypesFilter); err != nil {
		return err
	}
	if err := addOptionalQuery(r, "ExcludeAnalysisEvents", p.ExcludeAnalysisEvents); err != nil {
		return err
	}
	return addOptionalQuery(r, "SkipCorrelationLookup", p.SkipCorrelationLookup)
}
