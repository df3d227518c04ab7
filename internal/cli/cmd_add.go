// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/kookie/internal/generator"
	"github.com/MKhiriev/kookie/internal/utils"
	"github.com/MKhiriev/kookie/models"
)

func (c *CLI) newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Store a new secret in the vault",
		Long: `Store a new secret. The subcommand picks the secret type; missing
fields are prompted for, and secret values are always read hidden.`,
	}

	cmd.AddCommand(
		c.newAddPasswordCmd(),
		c.newAddAPIKeyCmd(),
		c.newAddNoteCmd(),
		c.newAddDBCredentialCmd(),
		c.newAddTokenCmd(),
	)

	return cmd
}

func (c *CLI) newAddPasswordCmd() *cobra.Command {
	var (
		username    string
		url         string
		description string
		generate    bool
		length      int
		noSymbols   bool
	)

	cmd := &cobra.Command{
		Use:   "password <name>",
		Short: "Store login credentials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.ensureUnlocked(cmd); err != nil {
				return err
			}

			if username == "" {
				var err error
				if username, err = c.promptLine("Username (optional):"); err != nil {
					return err
				}
			}

			var password string
			if generate {
				var err error
				if password, err = generator.Password(length, !noSymbols); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Generated a %d-character password.\n", length)
			} else {
				var err error
				if password, err = c.promptPassword("Password:"); err != nil {
					return err
				}
			}

			created, err := c.manager.Add(cmd.Context(), models.SecretEntry{
				Name: args[0],
				Type: models.SecretTypePassword,
				Password: &models.PasswordData{
					Username:    username,
					Password:    password,
					URL:         url,
					Description: description,
				},
			})
			if err != nil {
				return err
			}

			printCreated(cmd.OutOrStdout(), created)

			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "login identifier")
	cmd.Flags().StringVar(&url, "url", "", "where the credentials apply")
	cmd.Flags().StringVar(&description, "description", "", "free-form annotation")
	cmd.Flags().BoolVar(&generate, "generate", false, "generate the password instead of typing it")
	cmd.Flags().IntVar(&length, "length", 20, "generated password length")
	cmd.Flags().BoolVar(&noSymbols, "no-symbols", false, "generate from letters and digits only")

	return cmd
}

func (c *CLI) newAddAPIKeyCmd() *cobra.Command {
	var (
		service     string
		description string
		generate    bool
	)

	cmd := &cobra.Command{
		Use:   "api-key <name>",
		Short: "Store an API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.ensureUnlocked(cmd); err != nil {
				return err
			}

			if service == "" {
				var err error
				if service, err = c.promptLine("Service (optional):"); err != nil {
					return err
				}
			}

			var key string
			if generate {
				var err error
				if key, err = generator.APIKey(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Generated a new API key.")
			} else {
				var err error
				if key, err = c.promptPassword("API key:"); err != nil {
					return err
				}
			}

			created, err := c.manager.Add(cmd.Context(), models.SecretEntry{
				Name: args[0],
				Type: models.SecretTypeAPIKey,
				APIKey: &models.APIKeyData{
					Key:         key,
					Service:     service,
					Description: description,
				},
			})
			if err != nil {
				return err
			}

			printCreated(cmd.OutOrStdout(), created)

			return nil
		},
	}

	cmd.Flags().StringVar(&service, "service", "", "service the key belongs to")
	cmd.Flags().StringVar(&description, "description", "", "free-form annotation")
	cmd.Flags().BoolVar(&generate, "generate", false, "generate the key instead of pasting it")

	return cmd
}

func (c *CLI) newAddNoteCmd() *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:   "note <name>",
		Short: "Store a secure note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.ensureUnlocked(cmd); err != nil {
				return err
			}

			if content == "" {
				var err error
				if content, err = c.promptLine("Content:"); err != nil {
					return err
				}
			}

			created, err := c.manager.Add(cmd.Context(), models.SecretEntry{
				Name: args[0],
				Type: models.SecretTypeNote,
				Note: &models.NoteData{
					Content: content,
				},
			})
			if err != nil {
				return err
			}

			printCreated(cmd.OutOrStdout(), created)

			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "note text")

	return cmd
}

func (c *CLI) newAddDBCredentialCmd() *cobra.Command {
	var (
		host        string
		port        int
		database    string
		username    string
		driver      string
		description string
	)

	cmd := &cobra.Command{
		Use:   "db-credential <name>",
		Short: "Store database connection credentials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.ensureUnlocked(cmd); err != nil {
				return err
			}

			var err error
			if host == "" {
				if host, err = c.promptLine("Host:"); err != nil {
					return err
				}
			}
			if database == "" {
				if database, err = c.promptLine("Database:"); err != nil {
					return err
				}
			}
			if username == "" {
				if username, err = c.promptLine("Username:"); err != nil {
					return err
				}
			}

			password, err := c.promptPassword("Password:")
			if err != nil {
				return err
			}

			created, err := c.manager.Add(cmd.Context(), models.SecretEntry{
				Name: args[0],
				Type: models.SecretTypeDBCredential,
				DBCredential: &models.DBCredentialData{
					Host:        host,
					Port:        port,
					Database:    database,
					Username:    username,
					Password:    password,
					Driver:      driver,
					Description: description,
				},
			})
			if err != nil {
				return err
			}

			printCreated(cmd.OutOrStdout(), created)

			return nil
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "database server host")
	cmd.Flags().IntVar(&port, "port", 0, "database server port (0 uses the driver default)")
	cmd.Flags().StringVar(&database, "database", "", "database name")
	cmd.Flags().StringVar(&username, "username", "", "database login")
	cmd.Flags().StringVar(&driver, "driver", "", "database kind: postgres, mysql, mongodb")
	cmd.Flags().StringVar(&description, "description", "", "free-form annotation")

	return cmd
}

func (c *CLI) newAddTokenCmd() *cobra.Command {
	var (
		tokenType   string
		expires     string
		description string
	)

	cmd := &cobra.Command{
		Use:   "token <name>",
		Short: "Store an access token",
		Long: `Store an access token (JWT, OAuth, bearer). When the token is a JWT
and no --expires is given, the expiry is read from the token's own exp
claim.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Parse the flag before any prompting, so a typo does not
			// cost the user a password entry and a pasted token.
			var expiresAt *time.Time
			if expires != "" {
				parsed, err := time.Parse(time.RFC3339, expires)
				if err != nil {
					return fmt.Errorf("parse --expires (use RFC 3339, e.g. 2027-01-31T00:00:00Z): %w", err)
				}
				utc := parsed.UTC()
				expiresAt = &utc
			}

			if err := c.ensureUnlocked(cmd); err != nil {
				return err
			}

			token, err := c.promptPassword("Token:")
			if err != nil {
				return err
			}

			if expiresAt == nil {
				// Best effort: values that are not JWTs simply have no
				// detectable expiry.
				if detected, err := utils.ParseExpiryFromJWT(token); err == nil {
					expiresAt = &detected
					faint := color.New(color.Faint)
					fmt.Fprintln(cmd.ErrOrStderr(),
						faint.Sprintf("Detected expiry from token: %s", detected.Format(time.RFC3339)))
				}
			}

			created, err := c.manager.Add(cmd.Context(), models.SecretEntry{
				Name: args[0],
				Type: models.SecretTypeToken,
				Token: &models.TokenData{
					Token:       token,
					TokenType:   tokenType,
					ExpiresAt:   expiresAt,
					Description: description,
				},
			})
			if err != nil {
				return err
			}

			printCreated(cmd.OutOrStdout(), created)

			return nil
		},
	}

	cmd.Flags().StringVar(&tokenType, "type", "", "token kind: jwt, oauth, bearer")
	cmd.Flags().StringVar(&expires, "expires", "", "expiry timestamp in RFC 3339")
	cmd.Flags().StringVar(&description, "description", "", "free-form annotation")

	return cmd
}
