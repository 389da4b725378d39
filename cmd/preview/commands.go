package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/eleven-am/marketplace-analytics/internal/analytics"
	"github.com/eleven-am/marketplace-analytics/internal/dto"
	"github.com/eleven-am/marketplace-analytics/internal/synthesis"
	"github.com/spf13/cobra"
)

func newDashboardCommand(seed *int64) *cobra.Command {
	var (
		timeframe string
		models    int
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Print a synthetic dashboard payload",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tf, err := analytics.ParseTimeframe(timeframe)
			if err != nil {
				return err
			}

			gen := synthesis.NewGenerator(synthesis.NewRand(*seed))
			if models < 0 {
				models = gen.DefaultModelCount()
			}

			d, err := gen.Dashboard(tf, models)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), dto.DashboardResponse{Success: true, Data: d})
		},
	}
	cmd.Flags().StringVarP(&timeframe, "timeframe", "t", "week", "day, week, month or year")
	cmd.Flags().IntVarP(&models, "models", "n", -1, "number of models; negative picks a random count")
	return cmd
}

func newModelCommand(seed *int64) *cobra.Command {
	var timeframe, interval string

	cmd := &cobra.Command{
		Use:   "model <id>",
		Short: "Print a synthetic per-model analytics payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tf, err := analytics.ParseTimeframe(timeframe)
			if err != nil {
				return err
			}
			iv, err := analytics.ParseInterval(tf, interval)
			if err != nil {
				return err
			}

			gen := synthesis.NewGenerator(synthesis.NewRand(*seed))
			m, err := gen.ModelAnalytics(synthesis.ModelRequest{
				ModelID:   args[0],
				Timeframe: tf,
				Interval:  iv,
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), dto.ModelAnalyticsResponse{Success: true, Data: m})
		},
	}
	cmd.Flags().StringVarP(&timeframe, "timeframe", "t", "week", "day, week, month or year")
	cmd.Flags().StringVarP(&interval, "interval", "i", "", "hour, day, week or month; empty uses the timeframe default")
	return cmd
}

func newGridCommand() *cobra.Command {
	var timeframe, interval, at string

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "List the timestamps a (timeframe, interval) report covers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tf, err := analytics.ParseTimeframe(timeframe)
			if err != nil {
				return err
			}
			iv, err := analytics.ParseInterval(tf, interval)
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			if at != "" {
				if now, err = time.Parse(time.RFC3339, at); err != nil {
					return fmt.Errorf("parse --at: %w", err)
				}
			}

			grid, err := analytics.Grid(now, tf, iv)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tTIMESTAMP\tWEEKDAY")
			for i, ts := range grid {
				fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, ts.Format(time.RFC3339), ts.Weekday())
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&timeframe, "timeframe", "t", "week", "day, week, month or year")
	cmd.Flags().StringVarP(&interval, "interval", "i", "", "hour, day, week or month; empty uses the timeframe default")
	cmd.Flags().StringVar(&at, "at", "", "end of the grid as RFC3339; defaults to now")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
