// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (c *CLI) newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a new encrypted vault",
		Long: `Create the encrypted vault file. You will be asked to choose a master
password; it is the only way into the vault and it is not stored
anywhere, so there is no recovery if you forget it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if force {
				confirmed, err := c.promptConfirm("Replace the existing vault? Every stored secret will be lost.", false)
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			password, err := c.promptNewPassword("Choose a master password:")
			if err != nil {
				return err
			}

			_, cleanup := startSpinner("Creating vault...")
			err = c.manager.Init(cmd.Context(), password, force)
			cleanup()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Vault created at %s\n",
				color.GreenString("✓"), c.cfg.Storage.VaultPath)
			fmt.Fprintln(cmd.OutOrStdout(), "Run 'kookie unlock' to start using it.")

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "replace an existing vault")

	return cmd
}
