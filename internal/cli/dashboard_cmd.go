package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newDashboardCmd(flags *rootFlags, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Read-only terminal view of the plan, status, and history",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := appFor(cmd.Context(), flags, version)
			if err != nil {
				return err
			}
			if !app.IsInteractive() {
				return errors.New("dashboard needs an interactive terminal")
			}
			p := tea.NewProgram(newDashboardModel(app), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}
