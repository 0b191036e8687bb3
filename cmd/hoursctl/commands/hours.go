package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hours-server/hours"
	"hours-server/util"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify SPEC",
		Short: "Print the kind of an hours spec",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), hours.Classify(args[0]))
			return nil
		},
	}
}

func newCheckCmd() *cobra.Command {
	var at string
	var remote bool

	cmd := &cobra.Command{
		Use:   "check SPEC",
		Short: "Report whether an instant is inside an hours spec",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			when, err := parseAtFlag(at)
			if err != nil {
				return err
			}
			if remote {
				resp, err := newAPI(viper.GetString("server")).Remaining(cmd.Context(), args[0], when)
				if err != nil {
					return err
				}
				printStatus(cmd, resp.Canonical, resp.InSchedule, resp.SecondsUntilChange, resp.ChangesAt)
				return nil
			}

			loc, err := location()
			if err != nil {
				return err
			}
			spec, err := hours.ParseInLocation(args[0], loc)
			if err != nil {
				return err
			}
			if when.IsZero() {
				when = time.Now()
			}
			when = when.In(loc)
			r := hours.Remaining(spec, when)
			printStatus(cmd, spec.String(), r.InSchedule, r.Seconds, r.ChangesAt(when))
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "instant to check, RFC 3339 (default now)")
	cmd.Flags().BoolVar(&remote, "remote", false, "ask the server instead of computing locally")
	return cmd
}

func printStatus(cmd *cobra.Command, canonical string, open bool, seconds int, changesAt time.Time) {
	state := "closed"
	if open {
		state = "open"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\tchanges at %s\n",
		canonical, state, time.Duration(seconds)*time.Second, changesAt.Format(time.RFC3339))
}

func newChartCmd() *cobra.Command {
	var out, title string

	cmd := &cobra.Command{
		Use:   "chart SPEC",
		Short: "Render open hours per weekday as an HTML bar chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := location()
			if err != nil {
				return err
			}
			spec, err := hours.ParseInLocation(args[0], loc)
			if err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}
			defer f.Close()
			if title == "" {
				title = spec.String()
			}
			if err := util.RenderWeekChart(spec, title, f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Chart written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "hours_chart.html", "output HTML file")
	cmd.Flags().StringVar(&title, "title", "", "chart title (default the spec)")
	return cmd
}
