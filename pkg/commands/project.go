package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/ritmo/pkg/commands/options"
	"tableflip.dev/ritmo/pkg/runner/project"
	"tableflip.dev/ritmo/pkg/store"
)

func addProject(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage planner projects",
		Example: `
ritmo project set Trabalho relatório
ritmo project ls
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addProjectSet(cmd)
	addProjectList(cmd)

	topLevel.AddCommand(cmd)
}

func addProjectSet(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	name := ""

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Name the project for a planner day",
		Example: `
ritmo project set Trabalho relatório
ritmo project set --on=3/14 Estudo
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a project name")
			}
			name = strings.Join(args, " ")
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
			s := project.Set{
				On:          on,
				Name:        name,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addProjectList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List distinct project names",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := project.List{
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
