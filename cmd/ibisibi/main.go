package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/tapirbug/ibisibi/internal/cliconfig"
	"github.com/tapirbug/ibisibi/internal/logging"
	"github.com/tapirbug/ibisibi/transport"
)

var longHelp = strings.TrimSpace(`
Drive IBIS destination signs over a serial port.

Switch destinations, cycle through destination plans on a schedule,
query and scan the signs on the bus and flash BS210 sign databases.
Settings are read from flags, IBISIBI_* environment variables and
$HOME/.ibisibi/config.toml, in that order of precedence.
`)

var exampleUsage = strings.TrimSpace(`
  ibisibi list
  ibisibi scan -s /dev/ttyUSB0
  ibisibi destination 42 --line 7 -s /dev/ttyUSB0
  ibisibi cycle "1:0-10" "2:20-25@2021-09-09T06:00:00/2021-09-09T09:00:00" --interval 15s
  ibisibi flash database.hex --address 1 -s /dev/ttyUSB0
  ibisibi run sign.yaml --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app carries the resolved configuration into the subcommands.
type app struct {
	cfg     cliconfig.Config
	cfgPath string
	log     zerolog.Logger
	out     io.Writer

	// open opens the named serial port
	open func(name string) (io.ReadWriteCloser, error)
}

func newApp(out io.Writer) *app {
	return &app{
		cfg: cliconfig.DefaultConfig(),
		log: zerolog.Nop(),
		out: out,
		open: func(name string) (io.ReadWriteCloser, error) {
			return transport.Open(name)
		},
	}
}

// setup loads the config file and environment below the flags given on
// the command line, then sets up logging.
func (a *app) setup(cmd *cobra.Command) error {
	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&a.cfg, fc, changed); err != nil {
			return err
		}
	} else if a.cfgPath != "" {
		return fmt.Errorf("config file %s does not exist", a.cfgPath)
	}

	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return err
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(a.cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}
	a.log = log
	a.log.Debug().
		Str("serial", a.cfg.Serial).
		Dur("interval", a.cfg.Interval).
		Dur("lookahead", a.cfg.Lookahead).
		Msg("configuration")
	return nil
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "ibisibi",
		Short:         "Drive IBIS destination signs over a serial port",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.ibisibi/config.toml)")
	root.PersistentFlags().StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (trace, debug, info, warn, error)")

	root.AddCommand(
		newListCommand(a),
		newScanCommand(a),
		newStatusCommand(a),
		newVersionCommand(a),
		newDestinationCommand(a),
		newCycleCommand(a),
		newFlashCommand(a),
		newRunCommand(a),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := newApp(os.Stdout)
	if err := newRootCommand(a).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "ibisibi: %v\n", err)
		stop()
		os.Exit(1)
	}
}
