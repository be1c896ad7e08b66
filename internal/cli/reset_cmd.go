package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/praxis/internal/logger"
)

func newResetCmd(flags *rootFlags, version string) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the state file (profile, plans, checks, history)",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := appFor(cmd.Context(), flags, version)
			if err != nil {
				return err
			}

			if !force {
				if !app.IsInteractive() {
					return errors.New("refusing to reset without a terminal; pass --force")
				}
				confirmed := false
				prompt := fmt.Sprintf("Delete %s? This removes the profile, all plans, and all history.", app.Store.Path())
				if err := confirmForm(prompt, &confirmed).Run(); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						return nil
					}
					return err
				}
				if !confirmed {
					return nil
				}
			}

			if err := app.Store.Reset(); err != nil {
				return err
			}
			logger.Info("state reset", "path", app.Store.Path())
			fmt.Printf("Removed %s.\n", app.Store.Path())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")
	return cmd
}
