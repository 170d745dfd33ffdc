package sfctl

import (
	"github.com/spf13/pflag"

	"github.com/opensvc/sfclient/core/commands"
)

func flagHealthStateFilter(flags *pflag.FlagSet, p *string, name, entity string) {
	flags.StringVar(p, name, "", "comma separated health states of the "+entity+" to include: default,none,ok,warning,error,all")
}

func flagsEvents(flags *pflag.FlagSet, p *commands.OptsEvents) {
	flags.StringVar(&p.Start, "start", "1h", "the start of the time window, as a RFC 3339 timestamp or a duration before now")
	flags.StringVar(&p.End, "end", "", "the end of the time window, as a RFC 3339 timestamp or a duration before now. Defaults to now")
	flags.StringSliceVar(&p.Kinds, "filter", nil, "glob patterns of the event kinds to show, like Node*")
}

func flagUpgradeMode(flags *pflag.FlagSet, p *string) {
	flags.StringVar(p, "mode", "", "the rolling upgrade mode: UnmonitoredAuto, UnmonitoredManual or Monitored")
}

func flagForceRestart(flags *pflag.FlagSet, p *bool) {
	flags.BoolVar(p, "force-restart", false, "restart the processes even if the code version did not change")
}
