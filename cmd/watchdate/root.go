package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"watchdate/internal/core/serial"
	"watchdate/internal/core/version"
	perr "watchdate/internal/platform/errors"
	"watchdate/internal/platform/logger"
	ptime "watchdate/internal/platform/time"
	"watchdate/internal/services/api/decoder/domain"
	decsvc "watchdate/internal/services/api/decoder/service"

	"github.com/spf13/cobra"
)

// clock is swapped in tests
var clock ptime.Clock = ptime.System

type decodeFlags struct {
	waterResist string
	boxedMark   string
	year        int
	json        bool
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "watchdate",
		Short:         "Decode watch serial numbers into manufacturing dates",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := "warn"
			if verbose {
				level = "debug"
			}
			logger.Init(logger.Options{Level: level, Format: "console", Writer: errOut, Service: "watchdate"})
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log decode details to stderr")

	root.AddCommand(newDecodeCmd(), newMonthsCmd(), newVersionCmd())
	return root
}

func newDecodeCmd() *cobra.Command {
	var f decodeFlags

	cmd := &cobra.Command{
		Use:   "decode <serial>",
		Short: "List candidate manufacturing dates for a serial number",
		Long: `Decode a 6 or 7 character serial number.

The first character is the last digit of the year and the second is the month
(1-9, O, N, D). Case-back markings narrow the result:
  --water-resist  'Water Resist' (yes) or 'Waterproof' (no) marking
  --boxed-mark    boxed case construction mark`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, args[0], f)
		},
	}
	cmd.Flags().StringVar(&f.waterResist, "water-resist", "", "yes, no or unknown")
	cmd.Flags().StringVar(&f.boxedMark, "boxed-mark", "", "yes, no or unknown")
	cmd.Flags().IntVar(&f.year, "year", 0, "current year override")
	cmd.Flags().BoolVar(&f.json, "json", false, "print the result as JSON")
	return cmd
}

func runDecode(cmd *cobra.Command, raw string, f decodeFlags) error {
	// flag order is fixed so the first bad flag is always the one reported
	hints := []struct{ name, value string }{
		{"water-resist", f.waterResist},
		{"boxed-mark", f.boxedMark},
	}
	for _, h := range hints {
		if _, ok := serial.ParseHint(h.value); !ok {
			return perr.WithField(perr.Validationf("--%s must be yes, no or unknown", h.name), h.name)
		}
	}

	svc := decsvc.New(decsvc.Options{Clock: ptime.Pinned(f.year, clock)})
	res, err := svc.Decode(cmd.Context(), domain.DecodeInput{
		Serial:      raw,
		WaterResist: f.waterResist,
		BoxedMark:   f.boxedMark,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if f.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Fprintf(out, "Possible manufacturing dates for %s:\n", res.Normalized)
	for _, c := range res.Candidates {
		fmt.Fprintf(out, "  %s %s\n", c.Month, c.Year)
		for _, n := range c.Notes {
			fmt.Fprintf(out, "    - %s\n", n)
		}
	}
	return nil
}

func newMonthsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "months",
		Short: "Show the month symbols used in serial numbers",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			for _, m := range serial.Months() {
				fmt.Fprintf(out, "%s  %s\n", m.Symbol, m.Name)
			}
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			bi := version.Info()
			bi.Service = "watchdate"
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(bi.String()))
		},
	}
}
