// Package sfctl is the command tree of the sfctl cluster management
// command.
package sfctl

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/opensvc/sfclient/core/clientcontext"
	"github.com/opensvc/sfclient/core/commands"
	"github.com/opensvc/sfclient/core/output"
	"github.com/opensvc/sfclient/util/logging"
)

const (
	// EnvPrefix is the prefix of the environment variables overriding
	// the flags, like SFCTL_SERVER.
	EnvPrefix = "SFCTL"
)

var (
	// stdout is the writer of the rendered documents.
	stdout io.Writer = os.Stdout

	root = &cobra.Command{
		Use:               filepath.Base(os.Args[0]),
		Short:             "the service fabric cluster management command",
		PersistentPreRunE: persistentPreRunE,
		SilenceUsage:      true,
		SilenceErrors:     false,
	}
)

func init() {
	flags := root.PersistentFlags()
	flags.String("config", clientcontext.DefaultConfigFile, "the configuration and contexts file")
	flags.String("context", "", "the name of the connection context to use, overrides "+clientcontext.EnvContext)
	flags.String("server", "", "the cluster api url, like https://sf.example.com:19080")
	flags.Bool("insecure", false, "skip the server certificate verification")
	flags.String("api-version", "", "the api version supported by the cluster")
	flags.Duration("timeout", 60*time.Second, "the request timeout")
	flags.StringP("output", "o", "human", "output format "+strings.Join(output.Formats(), "|"))
	flags.String("color", "auto", "output colorization yes|no|auto")
	flags.Bool("debug", false, "show debug log entries")
	flags.String("log-dir", "", "also log to a rolling file in this directory")
	_ = viper.BindPFlags(flags)
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	root.AddCommand(
		completionCmd,
		newCmdDecode(),
		newCmdEnums(),
		newCmdKinds(),
	)
}

// loadConfig reads the settings of the configuration file. A missing
// file is not an error.
func loadConfig() error {
	p, err := homedir.Expand(viper.GetString("config"))
	if err != nil {
		return err
	}
	clientcontext.SetConfigFile(p)
	if _, err := os.Stat(p); os.IsNotExist(err) {
		return nil
	}
	viper.SetConfigFile(p)
	viper.SetConfigType("yaml")
	return viper.ReadInConfig()
}

func configureLogger() error {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	level := "warn"
	if viper.GetBool("debug") {
		level = "debug"
	}
	config := logging.Config{
		Level:          level,
		WithConsoleLog: true,
		WithColor:      viper.GetString("color") != "no",
	}
	if dir := viper.GetString("log-dir"); dir != "" {
		config.WithLogFile = true
		config.Directory = dir
		config.Filename = "sfctl.log"
		config.MaxSize = 10
		config.MaxBackups = 3
		config.MaxAge = 30
	}
	if _, err := logging.Configure(config); err != nil {
		return err
	}
	return nil
}

func persistentPreRunE(_ *cobra.Command, _ []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	output.SetColor(viper.GetString("color"))
	if err := configureLogger(); err != nil {
		return err
	}
	if name := viper.GetString("context"); name != "" {
		clientcontext.SetName(name)
	}
	log.Debug().Str("context", clientcontext.Name()).Str("server", viper.GetString("server")).Msg("configured")
	return nil
}

// global returns the global options, as set by the flags, the
// environment and the configuration file.
func global() commands.OptsGlobal {
	return commands.OptsGlobal{
		Color:      viper.GetString("color"),
		Output:     viper.GetString("output"),
		Server:     viper.GetString("server"),
		Insecure:   viper.GetBool("insecure"),
		APIVersion: viper.GetString("api-version"),
		Timeout:    viper.GetDuration("timeout"),
		Palette: output.StringPalette{
			Primary:   viper.GetString("palette.primary"),
			Secondary: viper.GetString("palette.secondary"),
			Optimal:   viper.GetString("palette.optimal"),
			Error:     viper.GetString("palette.error"),
			Warning:   viper.GetString("palette.warning"),
		},
		Out: stdout,
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the root command.
func Execute() {
	if err := ExecuteArgs(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// ExecuteArgs parses args and executes the cobra command.
// Example:
//
//	ExecuteArgs([]string{"node", "ls", "-o", "json"})
func ExecuteArgs(args []string) error {
	root.SetArgs(args)
	return root.Execute()
}
