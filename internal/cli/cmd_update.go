// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/kookie/internal/utils"
	"github.com/MKhiriev/kookie/models"
)

func (c *CLI) newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <id|name>",
		Short: "Update a stored secret",
		Long: `Update a secret interactively. Every field shows its current value;
press enter to keep it. The secret value itself is replaced only after
an explicit yes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.ensureUnlocked(cmd); err != nil {
				return err
			}

			current, err := c.manager.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			// All prompting happens on this snapshot; the vault is not
			// locked against other processes while the user types.
			updated := current.Clone()
			if err := c.promptEntryChanges(cmd, &updated); err != nil {
				return err
			}

			result, err := c.manager.Update(cmd.Context(), current.ID, func(entry *models.SecretEntry) error {
				entry.Name = updated.Name
				entry.Password = updated.Password
				entry.APIKey = updated.APIKey
				entry.Note = updated.Note
				entry.DBCredential = updated.DBCredential
				entry.Token = updated.Token

				return nil
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Updated %s %s\n",
				color.GreenString("✓"), result.Type, color.YellowString("%q", result.Name))

			return nil
		},
	}
}

// promptEntryChanges walks the entry's fields, offering the current
// value of each as the default.
func (c *CLI) promptEntryChanges(cmd *cobra.Command, entry *models.SecretEntry) error {
	var err error
	if entry.Name, err = c.promptLineDefault("Name:", entry.Name); err != nil {
		return err
	}

	switch entry.Type {
	case models.SecretTypePassword:
		data := entry.Password
		if data.Username, err = c.promptLineDefault("Username:", data.Username); err != nil {
			return err
		}
		if data.URL, err = c.promptLineDefault("URL:", data.URL); err != nil {
			return err
		}
		if data.Description, err = c.promptLineDefault("Description:", data.Description); err != nil {
			return err
		}
		changed, err := c.promptConfirm("Change the password?", false)
		if err != nil {
			return err
		}
		if changed {
			if data.Password, err = c.promptPassword("New password:"); err != nil {
				return err
			}
		}

	case models.SecretTypeAPIKey:
		data := entry.APIKey
		if data.Service, err = c.promptLineDefault("Service:", data.Service); err != nil {
			return err
		}
		if data.Description, err = c.promptLineDefault("Description:", data.Description); err != nil {
			return err
		}
		changed, err := c.promptConfirm("Change the key?", false)
		if err != nil {
			return err
		}
		if changed {
			if data.Key, err = c.promptPassword("New API key:"); err != nil {
				return err
			}
		}

	case models.SecretTypeNote:
		changed, err := c.promptConfirm("Change the content?", false)
		if err != nil {
			return err
		}
		if changed {
			if entry.Note.Content, err = c.promptLine("Content:"); err != nil {
				return err
			}
		}

	case models.SecretTypeDBCredential:
		data := entry.DBCredential
		if data.Host, err = c.promptLineDefault("Host:", data.Host); err != nil {
			return err
		}
		if data.Port, err = c.promptNumberDefault("Port:", data.Port); err != nil {
			return err
		}
		if data.Database, err = c.promptLineDefault("Database:", data.Database); err != nil {
			return err
		}
		if data.Username, err = c.promptLineDefault("Username:", data.Username); err != nil {
			return err
		}
		if data.Driver, err = c.promptLineDefault("Driver:", data.Driver); err != nil {
			return err
		}
		if data.Description, err = c.promptLineDefault("Description:", data.Description); err != nil {
			return err
		}
		changed, err := c.promptConfirm("Change the password?", false)
		if err != nil {
			return err
		}
		if changed {
			if data.Password, err = c.promptPassword("New password:"); err != nil {
				return err
			}
		}

	case models.SecretTypeToken:
		data := entry.Token
		if data.TokenType, err = c.promptLineDefault("Token type:", data.TokenType); err != nil {
			return err
		}
		if data.Description, err = c.promptLineDefault("Description:", data.Description); err != nil {
			return err
		}
		changed, err := c.promptConfirm("Change the token?", false)
		if err != nil {
			return err
		}
		if changed {
			if data.Token, err = c.promptPassword("New token:"); err != nil {
				return err
			}

			// The old expiry described the old token.
			data.ExpiresAt = nil
			if detected, err := utils.ParseExpiryFromJWT(data.Token); err == nil {
				data.ExpiresAt = &detected
				faint := color.New(color.Faint)
				fmt.Fprintln(cmd.ErrOrStderr(),
					faint.Sprintf("Detected expiry from token: %s", detected.Format(time.RFC3339)))
			}
		}
	}

	return nil
}
