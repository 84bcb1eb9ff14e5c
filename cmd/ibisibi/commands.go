package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tapirbug/ibisibi/ibis"
	"github.com/tapirbug/ibisibi/schedule"
)

func (a *app) serialFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&a.cfg.Serial, "serial", "s", a.cfg.Serial, "serial port the signs are attached to, e.g. /dev/ttyUSB0")
}

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the serial ports of this system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.list()
		},
	}
}

func newScanCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Query every sign address and print the ones that answer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.scan(cmd.Context(), "")
		},
	}
	a.serialFlag(cmd)
	return cmd
}

func newStatusCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <address>",
		Short: "Print the status of the sign at address (0-15)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := parseAddress(args[0])
			if err != nil {
				return err
			}
			return a.status(cmd.Context(), "", address)
		},
	}
	a.serialFlag(cmd)
	return cmd
}

func newVersionCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version <address>",
		Short: "Print the firmware version of the sign at address (0-15)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := parseAddress(args[0])
			if err != nil {
				return err
			}
			return a.version(cmd.Context(), "", address)
		},
	}
	a.serialFlag(cmd)
	return cmd
}

func newDestinationCommand(a *app) *cobra.Command {
	var line int
	cmd := &cobra.Command{
		Use:   "destination <index>",
		Short: "Show the destination with the given index (0-999)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("destination index %q: %w", args[0], err)
			}
			var linePtr *int
			if cmd.Flags().Changed("line") {
				linePtr = &line
			}
			return a.destination(cmd.Context(), "", index, linePtr)
		},
	}
	cmd.Flags().IntVarP(&line, "line", "l", 0, "line number to show with the destination (1-999)")
	a.serialFlag(cmd)
	return cmd
}

func newCycleCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cycle <plan>...",
		Short: "Cycle through the destinations of the active plans",
		Long: `Cycle through the destinations of the active plans until interrupted.

A plan is written [LINE:]RANGE[@SLOT], where RANGE is a single index or
FROM-TO (descending when FROM > TO) and SLOT is START/END in local time,
e.g. 1:0-10@2021-09-09T06:00:00/2021-09-09T09:00:00.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plans := make([]schedule.Plan, 0, len(args))
			for _, arg := range args {
				p, err := schedule.ParsePlan(arg)
				if err != nil {
					return err
				}
				plans = append(plans, p)
			}
			return a.cycle(cmd.Context(), "", plans, a.cfg.Interval, a.cfg.Lookahead)
		},
	}
	cmd.Flags().DurationVarP(&a.cfg.Interval, "interval", "i", a.cfg.Interval, "time each destination is shown")
	cmd.Flags().DurationVar(&a.cfg.Lookahead, "lookahead", a.cfg.Lookahead, "show plans this long before their slot starts")
	a.serialFlag(cmd)
	return cmd
}

func newFlashCommand(a *app) *cobra.Command {
	var address int
	cmd := &cobra.Command{
		Use:   "flash <database.hex>",
		Short: "Replace the database of a BS210 sign with an Intel HEX file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.flash(cmd.Context(), "", address, args[0])
		},
	}
	cmd.Flags().IntVarP(&address, "address", "a", 0, "address of the sign to flash (0-15)")
	_ = cmd.MarkFlagRequired("address")
	a.serialFlag(cmd)
	return cmd
}

func parseAddress(s string) (int, error) {
	address, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("address %q: %w", s, err)
	}
	if address < ibis.MinAddress || address > ibis.MaxAddress {
		return 0, fmt.Errorf("address %d out of range %d-%d", address, ibis.MinAddress, ibis.MaxAddress)
	}
	return address, nil
}
