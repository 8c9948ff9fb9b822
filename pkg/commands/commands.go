package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"tableflip.dev/ritmo/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "ritmo",
		Short: base.Wrap80("Personal productivity dashboard on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addDay(topLevel)
	addTask(topLevel)
	addWeek(topLevel)
	addMonth(topLevel)
	addProject(topLevel)
	addAccount(topLevel)
	addTx(topLevel)
	addGoal(topLevel)
	addTarget(topLevel)
	addFocus(topLevel)
	addStats(topLevel)
	addMigrate(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
}
