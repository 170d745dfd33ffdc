package commands

import (
	"io"
	"os"
	"sort"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/opensvc/sfclient/core/event"
	"github.com/opensvc/sfclient/core/fabric"
	"github.com/opensvc/sfclient/core/health"
	"github.com/opensvc/sfclient/core/inventory"
	"github.com/opensvc/sfclient/core/upgrade"
	"github.com/opensvc/sfclient/util/jsonfield"
)

type (
	// CmdDecode decodes a document with a named model and renders its
	// canonical form.
	CmdDecode struct {
		OptsGlobal
		Type string
		File string
		In   io.Reader
	}

	canonicalFunc func([]byte) ([]byte, error)
)

var ErrUnknownModel = errors.New("unknown model")

func canonical[T any](c jsonfield.Codec[T]) canonicalFunc {
	return func(b []byte) ([]byte, error) {
		return jsonfield.Canonical(b, c)
	}
}

var models = map[string]canonicalFunc{
	"event":                           canonical(event.Codec),
	"events":                          canonical(event.ListCodec),
	"application-event":               canonical(event.ApplicationEvents.Codec()),
	"cluster-event":                   canonical(event.ClusterEvents.Codec()),
	"node-event":                      canonical(event.NodeEvents.Codec()),
	"partition-event":                 canonical(event.PartitionEvents.Codec()),
	"replica-event":                   canonical(event.ReplicaEvents.Codec()),
	"service-event":                   canonical(event.ServiceEvents.Codec()),
	"fabric-error":                    canonical(fabric.FabricErrorCodec),
	"health-information":              canonical(health.InformationCodec),
	"health-event":                    canonical(health.EventCodec),
	"health-evaluation":               canonical(health.EvaluationCodec),
	"cluster-health":                  canonical(health.ClusterHealthCodec),
	"node-health":                     canonical(health.NodeHealthCodec),
	"cluster-health-policy":           canonical(health.ClusterHealthPolicyCodec),
	"cluster-health-policies":         canonical(health.ClusterHealthPoliciesCodec),
	"application-health-policy":       canonical(health.ApplicationHealthPolicyCodec),
	"application-health-policies":     canonical(health.ApplicationHealthPoliciesCodec),
	"application-upgrade-description": canonical(upgrade.ApplicationUpgradeDescriptionCodec),
	"cluster-upgrade-description":     canonical(upgrade.StartClusterUpgradeDescriptionCodec),
	"application-upgrade-progress":    canonical(upgrade.ApplicationUpgradeProgressInfoCodec),
	"cluster-upgrade-progress":        canonical(upgrade.ClusterUpgradeProgressObjectCodec),
	"node-info":                       canonical(inventory.NodeInfoCodec),
	"node-info-list":                  canonical(inventory.PagedNodeInfoListCodec),
	"application-info":                canonical(inventory.ApplicationInfoCodec),
	"application-info-list":           canonical(inventory.PagedApplicationInfoListCodec),
	"service-info":                    canonical(inventory.ServiceCodec),
	"service-info-list":               canonical(inventory.PagedServiceInfoListCodec),
	"partition-info":                  canonical(inventory.PartitionCodec),
	"partition-info-list":             canonical(inventory.PagedServicePartitionInfoListCodec),
	"partition-information":           canonical(inventory.PartitioningCodec),
}

// Models returns the names of the models known by the decode command.
func Models() []string {
	l := make([]string, 0, len(models))
	for k := range models {
		l = append(l, k)
	}
	sort.Strings(l)
	return l
}

func (t *CmdDecode) input() (io.ReadCloser, error) {
	switch {
	case t.File != "" && t.File != "-":
		return os.Open(t.File)
	case t.In != nil:
		return io.NopCloser(t.In), nil
	default:
		return io.NopCloser(os.Stdin), nil
	}
}

func (t *CmdDecode) Run() error {
	fn, ok := models[t.Type]
	if !ok {
		return errors.Wrapf(ErrUnknownModel, "%s (known: %v)", t.Type, Models())
	}
	rd, err := t.input()
	if err != nil {
		return err
	}
	defer rd.Close()
	b, err := io.ReadAll(rd)
	if err != nil {
		return err
	}
	canon, err := fn(b)
	if err != nil {
		return errors.Wrapf(err, "decode %s", t.Type)
	}
	return t.render(json.RawMessage(canon), nil)
}
