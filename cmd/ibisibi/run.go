package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/tapirbug/ibisibi/internal/cliconfig"
)

func newRunCommand(a *app) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "run <file.yaml>",
		Short: "Run the invocation described by a YAML run file",
		Long: `Run the invocation described by a YAML run file.

The file holds exactly one of destination, cycle, flash, scan or status
with the same settings as the subcommand, e.g.

  cycle:
    serial: /dev/ttyUSB0
    interval: 10s
    plan:
      - "1:0-10"

With --watch the invocation is restarted whenever the file changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch {
				return a.watchRunFile(cmd.Context(), args[0])
			}
			rf, err := cliconfig.LoadRunFile(args[0])
			if err != nil {
				return err
			}
			return a.execute(cmd.Context(), rf)
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "restart the invocation when the file changes")
	return cmd
}

// execute runs the single invocation of rf.
func (a *app) execute(ctx context.Context, rf *cliconfig.RunFile) error {
	a.log.Info().Str("invocation", rf.Kind()).Msg("running")

	switch {
	case rf.Destination != nil:
		d := rf.Destination
		return a.destination(ctx, d.Serial, d.Index, d.Line)
	case rf.Cycle != nil:
		c := rf.Cycle
		interval, lookahead := c.Interval, c.Lookahead
		if interval == 0 {
			interval = a.cfg.Interval
		}
		if lookahead == 0 {
			lookahead = a.cfg.Lookahead
		}
		return a.cycle(ctx, c.Serial, c.Plan, interval, lookahead)
	case rf.Flash != nil:
		f := rf.Flash
		return a.flash(ctx, f.Serial, f.Address, f.Database)
	case rf.Scan != nil:
		return a.scan(ctx, rf.Scan.Serial)
	case rf.Status != nil:
		s := rf.Status
		return a.status(ctx, s.Serial, s.Address)
	}
	return cliconfig.ErrInvocation
}

// watchRunFile executes the run file and restarts it after every change
// until ctx is done. A changed file that does not parse is logged and the
// running invocation is left alone.
func (a *app) watchRunFile(ctx context.Context, path string) error {
	rf, err := cliconfig.LoadRunFile(path)
	if err != nil {
		return err
	}

	watcher, err := cliconfig.NewFileWatcher(path, cliconfig.DefaultDebounce)
	if err != nil {
		return err
	}
	defer watcher.Close()

	reload := make(chan *cliconfig.RunFile, 1)
	go watcher.Run(ctx,
		func() {
			next, err := cliconfig.LoadRunFile(path)
			if err != nil {
				a.log.Error().Err(err).Str("path", path).Msg("ignoring changed run file")
				return
			}
			select {
			case <-reload:
			default:
			}
			select {
			case reload <- next:
			default:
			}
		},
		func(err error) {
			a.log.Warn().Err(err).Msg("watching run file")
		},
	)

	for {
		next, err := a.executeUntilReload(ctx, rf, reload)
		if err != nil {
			return err
		}
		if next == nil {
			return nil
		}
		a.log.Info().Str("path", path).Msg("run file changed, restarting")
		rf = next
	}
}

// executeUntilReload runs rf until it finishes, ctx is done or a new run
// file arrives on reload. It returns the new run file, or nil when ctx is
// done.
func (a *app) executeUntilReload(ctx context.Context, rf *cliconfig.RunFile, reload <-chan *cliconfig.RunFile) (*cliconfig.RunFile, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- a.execute(runCtx, rf) }()

	select {
	case <-ctx.Done():
		cancel()
		<-done
		return nil, nil

	case next := <-reload:
		cancel()
		if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
			a.log.Error().Err(err).Msg("invocation failed")
		}
		return next, nil

	case err := <-done:
		if err != nil {
			a.log.Error().Err(err).Str("invocation", rf.Kind()).Msg("invocation failed")
		} else {
			a.log.Info().Str("invocation", rf.Kind()).Msg("invocation finished, waiting for changes")
		}
	}

	select {
	case <-ctx.Done():
		return nil, nil
	case next := <-reload:
		return next, nil
	}
}
