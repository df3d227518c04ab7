package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (c *CLI) newDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id|name>",
		Short: "Delete a stored secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.ensureUnlocked(cmd); err != nil {
				return err
			}

			// Resolve first so the confirmation names the exact entry,
			// not whatever the user happened to type.
			entry, err := c.manager.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if !yes {
				question := fmt.Sprintf("Delete %s %q?", entry.Type, entry.Name)
				confirmed, err := c.promptConfirm(question, false)
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			if err := c.manager.Delete(cmd.Context(), entry.ID, true); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted %s %s\n",
				color.GreenString("✓"), entry.Type, color.YellowString("%q", entry.Name))

			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")

	return cmd
}
