package commands

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/opensvc/sfclient/core/client"
	"github.com/opensvc/sfclient/core/event"
	"github.com/opensvc/sfclient/core/fabric"
)

type (
	// OptsEvents hosts the time window and kind filters of the event
	// store queries.
	OptsEvents struct {
		// Start and End are RFC 3339 timestamps or durations before now,
		// like "1h".
		Start string
		End   string

		// Kinds are glob patterns matched against the event kinds.
		Kinds []string
	}

	// CmdClusterEvents lists the cluster events.
	CmdClusterEvents struct {
		OptsGlobal
		OptsEvents
	}

	// CmdNodeEvents lists the events of a node.
	CmdNodeEvents struct {
		OptsGlobal
		OptsEvents
		Name string
	}

	// CmdAppEvents lists the events of an application.
	CmdAppEvents struct {
		OptsGlobal
		OptsEvents
		ID string
	}
)

var (
	// now is the reference time of the relative time window bounds.
	now = time.Now
)

// parseTime parses s as a RFC 3339 timestamp or a duration before now.
func parseTime(s string, dflt time.Time) (time.Time, error) {
	if s == "" {
		return dflt, nil
	}
	if d, err := time.ParseDuration(s); err == nil {
		return now().Add(-d), nil
	}
	tm, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errors.Errorf("invalid time %s: use a RFC 3339 timestamp or a duration", s)
	}
	return tm, nil
}

func (t OptsEvents) params() (client.GetEventListParams, error) {
	end, err := parseTime(t.End, now())
	if err != nil {
		return client.GetEventListParams{}, err
	}
	start, err := parseTime(t.Start, end.Add(-time.Hour))
	if err != nil {
		return client.GetEventListParams{}, err
	}
	if !start.Before(end) {
		return client.GetEventListParams{}, errors.Errorf("the start time %s is not before the end time %s", start, end)
	}
	return client.GetEventListParams{
		StartTimeUtc: start.UTC().Format(time.RFC3339),
		EndTimeUtc:   end.UTC().Format(time.RFC3339),
	}, nil
}

func (t *OptsGlobal) renderEvents(l event.Events, kinds []string) error {
	l = l.Filter(kinds...)
	return t.render(l, func() string {
		var b strings.Builder
		for _, e := range l {
			b.WriteString(event.Render(e))
			b.WriteString("\n")
		}
		return b.String()
	})
}

func (t *CmdClusterEvents) Run() error {
	params, err := t.params()
	if err != nil {
		return err
	}
	c, err := t.newClient()
	if err != nil {
		return err
	}
	l, err := c.GetClusterEventList(context.Background(), params)
	if err != nil {
		return err
	}
	return t.renderEvents(l, t.Kinds)
}

func (t *CmdNodeEvents) Run() error {
	params, err := t.params()
	if err != nil {
		return err
	}
	c, err := t.newClient()
	if err != nil {
		return err
	}
	l, err := c.GetNodeEventList(context.Background(), fabric.NodeName(t.Name), params)
	if err != nil {
		return err
	}
	return t.renderEvents(l, t.Kinds)
}

func (t *CmdAppEvents) Run() error {
	params, err := t.params()
	if err != nil {
		return err
	}
	c, err := t.newClient()
	if err != nil {
		return err
	}
	l, err := c.GetApplicationEventList(context.Background(), fabric.ApplicationID(t.ID), params)
	if err != nil {
		return err
	}
	return t.renderEvents(l, t.Kinds)
}
