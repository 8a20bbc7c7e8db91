// Command tzstr inspects POSIX TZ strings: it describes parsed zones and
// answers offset queries for instants and local readings.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ngrash/go-tzstring/civil"
	"github.com/ngrash/go-tzstring/tzstring"
)

// localLayout is the layout for naive local readings, i.e. readings
// without a zone designator.
const localLayout = "2006-01-02T15:04:05"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tzstr",
		Short:         "Inspect POSIX TZ strings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		newDescribeCmd(),
		newAtCmd(),
		newLocalCmd(),
	)
	return cmd
}

func newDescribeCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "describe TZ",
		Short: "Show the parsed fields of a TZ string and its transitions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := tzstring.Parse(args[0])
			if err != nil {
				return err
			}

			fmt.Println("Name:", z.Name())
			fmt.Printf("Standard: %s (UTC%s)\n", z.StdAbbrev(), tzstring.FormatOffset(z.StdOffset()))
			if !z.HasDST() {
				fmt.Println("No daylight saving time")
				return nil
			}

			abbrev, _ := z.DSTAbbrev()
			offset, _ := z.DSTOffset()
			fmt.Printf("Daylight: %s (UTC%s)\n", abbrev, tzstring.FormatOffset(offset))

			startRule, endRule, _ := z.ChangeRules()
			fmt.Printf("Rules: starts %s at %s, ends %s at %s\n",
				startRule.Day, clock(startRule.Clock), endRule.Day, clock(endRule.Clock))

			start, end, _ := z.Transitions(year)
			fmt.Printf("In %d: starts %sZ, ends %sZ\n", year, start, end)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", time.Now().UTC().Year(), "year to resolve the transition rules for")

	return cmd
}

func newAtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "at TZ TIME...",
		Short: "Show the offset in effect at RFC3339 instants",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := tzstring.Parse(args[0])
			if err != nil {
				return err
			}
			for _, arg := range args[1:] {
				t, err := time.Parse(time.RFC3339, arg)
				if err != nil {
					return err
				}
				utc := civil.FromTimeUTC(t)
				fmt.Printf("%sZ: %s (UTC%s) dst=%v\n",
					utc, z.AbbrevAt(utc), tzstring.FormatOffset(z.OffsetAt(utc)), z.IsDST(utc))
			}
			return nil
		},
	}
}

func newLocalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "local TZ TIME...",
		Short: "Resolve naive local readings (2006-01-02T15:04:05) to offsets",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := tzstring.Parse(args[0])
			if err != nil {
				return err
			}
			for _, arg := range args[1:] {
				t, err := time.Parse(localLayout, arg)
				if err != nil {
					return err
				}
				local := civil.FromTimeWall(t)
				offset, err := z.OffsetForLocal(local)
				if err != nil {
					return err
				}
				fmt.Printf("%s: UTC%s (%sZ)\n",
					local, tzstring.FormatOffset(offset), local.AddSeconds(-offset))
			}
			return nil
		},
	}
}

func clock(sec int) string {
	return fmt.Sprintf("%02d:%02d:%02d", sec/3600, sec/60%60, sec%60)
}
