package commands

import (
	"fmt"
	"strings"

	"github.com/opensvc/sfclient/core/health"
	"github.com/opensvc/sfclient/core/output"
)

// sprintEvaluations renders the unhealthy evaluations as an indented
// tree, one evaluation per line.
func sprintEvaluations(colorize *output.PaletteFunc, l []health.EvaluationWrapper) string {
	var b strings.Builder
	for _, w := range l {
		health.Walk(w.HealthEvaluation, func(e health.Evaluation, depth int) {
			base := e.Base()
			desc := ""
			if base.Description != nil {
				desc = *base.Description
			}
			fmt.Fprintf(&b, "%s%s %s %s\n",
				strings.Repeat("  ", depth),
				colorize.HealthState(base.AggregatedHealthState.String()),
				e.Kind(),
				desc,
			)
		})
	}
	return b.String()
}

func sprintHealthEvents(colorize *output.PaletteFunc, l []health.Event) string {
	tbl := output.Table{Header: []string{"SOURCE", "PROPERTY", "STATE", "EXPIRED", "DESCRIPTION"}}
	for _, e := range l {
		desc := ""
		if e.Description != nil {
			desc = *e.Description
		}
		tbl.AddRow(e.SourceID, e.Property, colorize.HealthState(e.HealthState.String()), fmt.Sprint(e.IsExpired), desc)
	}
	return tbl.Render()
}
