package commands

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/opensvc/sfclient/core/fabric"
	"github.com/opensvc/sfclient/core/output"
)

type (
	// CmdEnums lists the literals of the enumerations.
	CmdEnums struct {
		OptsGlobal
		Name string
	}
)

var ErrUnknownEnum = errors.New("unknown enumeration")

func (t *CmdEnums) Run() error {
	l := fabric.Enums()
	if t.Name != "" {
		var found bool
		for _, e := range l {
			if strings.EqualFold(e.Name, t.Name) {
				l = []fabric.EnumInfo{e}
				found = true
				break
			}
		}
		if !found {
			return errors.Wrapf(ErrUnknownEnum, "%s", t.Name)
		}
	}
	return t.render(l, func() string {
		tbl := output.Table{Header: []string{"NAME", "LENIENT", "LITERALS"}}
		for _, e := range l {
			tbl.AddRow(e.Name, strconv.FormatBool(e.Lenient), strings.Join(e.Literals, ","))
		}
		return tbl.Render()
	})
}
