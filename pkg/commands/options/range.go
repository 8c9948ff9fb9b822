package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/ritmo/pkg/stats"
)

// RangeOptions selects the stats time range.
type RangeOptions struct {
	RangeString string
	Watch       bool
}

func AddRangeArgs(cmd *cobra.Command, o *RangeOptions) {
	cmd.Flags().StringVarP(&o.RangeString, "range", "r", "week",
		"Time range. One of 'week', 'month', 'quarter' or 'year'.")
	cmd.Flags().BoolVarP(&o.Watch, "watch", "w", false,
		"Re-render when the database changes.")
}

// GetRange validates the flag value.
func (o *RangeOptions) GetRange() (stats.Range, error) {
	switch stats.Range(o.RangeString) {
	case stats.Week, stats.Month, stats.Quarter, stats.Year:
		return stats.Range(o.RangeString), nil
	}
	return "", fmt.Errorf("unknown range %q", o.RangeString)
}
