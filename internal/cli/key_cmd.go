package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/praxis/internal/keyring"
)

// newKeyCmd manages provider API keys in the OS keyring. Keys resolved
// at startup prefer the environment and config file over the keyring,
// so this is the place for keys that should never live in a file.
func newKeyCmd(flags *rootFlags) *cobra.Command {
	var provider string

	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the provider API key in the OS keyring",
	}
	cmd.PersistentFlags().StringVar(&provider, "provider", "", "Provider the key belongs to (default from config)")

	resolveProvider := func() (string, error) {
		if provider != "" {
			return provider, nil
		}
		cfg, err := loadConfig(flags)
		if err != nil {
			return "", err
		}
		return string(cfg.LLM.Provider), nil
	}

	set := &cobra.Command{
		Use:   "set [key]",
		Short: "Store an API key (prompts when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := resolveProvider()
			if err != nil {
				return err
			}
			var key string
			if len(args) == 1 {
				key = args[0]
			} else {
				input := huh.NewInput().
					Title(fmt.Sprintf("API key for %s", name)).
					EchoMode(huh.EchoModePassword).
					Validate(validateRequired("API key")).
					Value(&key)
				form := huh.NewForm(huh.NewGroup(input)).
					WithTheme(praxisHuhTheme()).WithShowHelp(false)
				if err := form.Run(); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						return nil
					}
					return err
				}
			}
			if err := keyring.SetAPIKey(name, key); err != nil {
				return err
			}
			fmt.Printf("Stored API key for %s.\n", name)
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the stored key, masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := resolveProvider()
			if err != nil {
				return err
			}
			key, err := keyring.APIKey(name)
			if err != nil {
				if errors.Is(err, keyring.ErrNotFound) {
					fmt.Printf("No key stored for %s.\n", name)
					return nil
				}
				return err
			}
			fmt.Printf("%s: %s\n", name, maskKey(key))
			return nil
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored key",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := resolveProvider()
			if err != nil {
				return err
			}
			if err := keyring.DeleteAPIKey(name); err != nil {
				if errors.Is(err, keyring.ErrNotFound) {
					fmt.Printf("No key stored for %s.\n", name)
					return nil
				}
				return err
			}
			fmt.Printf("Removed API key for %s.\n", name)
			return nil
		},
	}

	cmd.AddCommand(set, show, clear)
	return cmd
}

// maskKey keeps enough of the key to recognize it without exposing it.
func maskKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", 4) + key[len(key)-4:]
}
