package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/ritmo/pkg/focus"
	"tableflip.dev/ritmo/pkg/runner/timer"
	"tableflip.dev/ritmo/pkg/store"
)

func addFocus(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Run the pomodoro timer",
		Example: `
ritmo focus start Escrita
ritmo focus log
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addFocusStart(cmd)
	addFocusLog(cmd)
	addFocusSet(cmd)

	topLevel.AddCommand(cmd)
}

func addFocusStart(topLevel *cobra.Command) {
	mode := ""
	project := ""

	cmd := &cobra.Command{
		Use:   "start [project]",
		Short: "Start a timer session in the foreground",
		Long: "Start a timer session in the foreground. Interrupting a running\n" +
			"pomodoro with ctrl-c records it as abandoned with the minutes elapsed.",
		Example: `
ritmo focus start Escrita
ritmo focus start --mode=short
`,
		Args: func(_ *cobra.Command, args []string) error {
			project = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			m, err := parseMode(mode)
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := timer.Start{
				Project:     project,
				Mode:        m,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "",
		"Timer mode. One of 'pomodoro', 'short' or 'long'.")

	topLevel.AddCommand(cmd)
}

func addFocusLog(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "List recorded sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := timer.Log{
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addFocusSet(topLevel *cobra.Command) {
	pomodoro := 0
	short := 0
	long := 0

	cmd := &cobra.Command{
		Use:     "set",
		Aliases: []string{"config"},
		Short:   "Save timer durations",
		Example: `
ritmo focus set --pomodoro=25 --short=5 --long=15
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			settings := focus.NewStore(p).Settings()
			if cmd.Flags().Changed("pomodoro") {
				settings.Pomodoro = pomodoro
			}
			if cmd.Flags().Changed("short") {
				settings.ShortBreak = short
			}
			if cmd.Flags().Changed("long") {
				settings.LongBreak = long
			}

			s := timer.Settings{
				Settings:    settings,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().IntVar(&pomodoro, "pomodoro", 25, "Pomodoro length in minutes.")
	cmd.Flags().IntVar(&short, "short", 5, "Short break length in minutes.")
	cmd.Flags().IntVar(&long, "long", 15, "Long break length in minutes.")

	topLevel.AddCommand(cmd)
}

func parseMode(mode string) (focus.Mode, error) {
	switch mode {
	case "":
		return "", nil
	case "pomodoro":
		return focus.Pomodoro, nil
	case "short", "shortBreak":
		return focus.ShortBreak, nil
	case "long", "longBreak":
		return focus.LongBreak, nil
	}
	return "", fmt.Errorf("unknown mode %q", mode)
}
