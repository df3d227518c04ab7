package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/kookie/internal/session"
)

func (c *CLI) newUnlockCmd() *cobra.Command {
	var timeoutMinutes int

	cmd := &cobra.Command{
		Use:   "unlock",
		Short: "Unlock the vault and cache the session",
		Long: `Unlock the vault with the master password and cache the unlock for a
short while, so the commands that follow do not ask again. The cache is
bound to this machine and expires on its own; 'kookie lock' drops it
immediately.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ttl := c.cfg.Session.UnlockTimeout
			if cmd.Flags().Changed("timeout") {
				ttl = time.Duration(timeoutMinutes) * time.Minute
			}

			err := c.manager.UnlockWithSession(cmd.Context(), ttl)
			if err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Vault is already unlocked\n", color.GreenString("✓"))
				return nil
			}

			switch {
			case errors.Is(err, session.ErrSessionExpired):
				fmt.Fprintln(cmd.ErrOrStderr(), color.YellowString("Session expired."))
			case errors.Is(err, session.ErrNoSession):
				// First unlock on this machine; nothing to report.
			case isWrongPassword(err):
				// The cached key no longer opens the vault.
			default:
				return err
			}

			password, err := c.promptPassword("Master password:")
			if err != nil {
				return err
			}

			if err := c.unlockWithSpinner(cmd.Context(), password, ttl); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Vault unlocked\n", color.GreenString("✓"))
			if ttl > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Session cached for %s.\n", formatTTL(ttl))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Session caching is disabled; every command will ask for the password.")
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&timeoutMinutes, "timeout", 0, "session lifetime in minutes (0 disables caching)")

	return cmd
}

// formatTTL renders a session lifetime without the trailing zero units
// time.Duration.String would add ("15m0s").
func formatTTL(ttl time.Duration) string {
	if ttl%time.Minute == 0 {
		return fmt.Sprintf("%d minutes", int(ttl/time.Minute))
	}

	return ttl.String()
}
