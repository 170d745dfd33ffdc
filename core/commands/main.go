// Package commands implements the sfctl commands. The cobra tree of
// core/sfctl binds the flags to the command structs and calls their Run
// method.
package commands

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/opensvc/sfclient/core/client"
	"github.com/opensvc/sfclient/core/output"
)

type (
	// OptsGlobal hosts the options shared by all commands.
	OptsGlobal struct {
		Color      string
		Output     string
		Server     string
		Insecure   bool
		APIVersion string
		Timeout    time.Duration
		Palette    output.StringPalette

		// Out is the writer of the rendered documents. Defaults to stdout.
		Out io.Writer

		// ClientOptions are appended to the options derived from the flags.
		ClientOptions []client.Option
	}
)

func (t *OptsGlobal) out() io.Writer {
	if t.Out == nil {
		return os.Stdout
	}
	return t.Out
}

func (t *OptsGlobal) newClient() (*client.T, error) {
	opts := []client.Option{
		client.WithLogger(log.Logger.With().Str("pkg", "client").Logger()),
	}
	if t.Server != "" {
		opts = append(opts, client.URL(t.Server))
	}
	if t.Insecure {
		opts = append(opts, client.InsecureSkipVerify())
	}
	if t.APIVersion != "" {
		opts = append(opts, client.ClusterAPIVersion(t.APIVersion))
	}
	if t.Timeout > 0 {
		opts = append(opts, client.Timeout(t.Timeout))
	}
	opts = append(opts, t.ClientOptions...)
	return client.New(opts...)
}

func (t *OptsGlobal) renderer(data any, human output.RenderFunc) output.Renderer {
	return output.Renderer{
		Format:        t.Output,
		Color:         t.Color,
		Data:          data,
		HumanRenderer: human,
		Colorize:      output.NewPalette(t.Palette).Func(),
	}
}

func (t *OptsGlobal) render(data any, human output.RenderFunc) error {
	return t.renderer(data, human).Fprint(t.out())
}
