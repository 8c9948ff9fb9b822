package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/ritmo/pkg/commands/options"
	"tableflip.dev/ritmo/pkg/runner/task"
	"tableflip.dev/ritmo/pkg/store"
)

func addTask(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage planner tasks",
		Example: `
ritmo task add write the report
ritmo task done 1a2b3c4d
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTaskAdd(cmd)
	addTaskToggle(cmd)
	addTaskRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addTaskAdd(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	text := ""

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to a planner day",
		Example: `
ritmo task add write the report
ritmo task add --on=3/14 buy groceries
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task")
			}
			text = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := task.Add{
				On:          on,
				Text:        text,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addTaskToggle(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "done",
		Aliases: []string{"toggle", "complete"},
		Short:   "Toggle a task's completion",
		Example: `
ritmo task done <task id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := task.Toggle{
				On:          on,
				ID:          io.ID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addTaskRemove(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "rm",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a task from a planner day",
		Example: `
ritmo task rm <task id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := task.Remove{
				On:          on,
				ID:          io.ID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	topLevel.AddCommand(cmd)
}
