package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/kookie/models"
)

// maskedValue replaces secret values in output. Fixed width, so the
// mask does not leak the secret's length.
const maskedValue = "********"

func (c *CLI) newGetCmd() *cobra.Command {
	var (
		reveal  bool
		copyVal bool
	)

	cmd := &cobra.Command{
		Use:   "get <id|name>",
		Short: "Show one secret",
		Long: `Show a secret by id or name. Secret values are masked unless --reveal
is given; --copy puts the value on the clipboard without showing it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.ensureUnlocked(cmd); err != nil {
				return err
			}

			entry, err := c.manager.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			printEntry(cmd.OutOrStdout(), entry, reveal)

			if copyVal {
				if err := clipboard.WriteAll(secretValueOf(entry)); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "%s Secret copied to clipboard\n", color.GreenString("✓"))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "print the secret value instead of masking it")
	cmd.Flags().BoolVar(&copyVal, "copy", false, "copy the secret value to the clipboard")

	return cmd
}

// printEntry renders the detail view of one entry. Empty optional
// fields are omitted.
func printEntry(out io.Writer, entry models.SecretEntry, reveal bool) {
	faint := color.New(color.Faint)

	row := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(out, "  %s %s\n", faint.Sprintf("%-10s", label+":"), value)
	}

	secret := func(value string) string {
		if reveal {
			return value
		}
		return maskedValue
	}

	fmt.Fprintf(out, "%s %s\n",
		color.New(color.Bold).Sprint(entry.Name),
		faint.Sprintf("(%s)", entry.Type))
	row("id", entry.ID)

	switch entry.Type {
	case models.SecretTypePassword:
		row("username", entry.Password.Username)
		row("password", secret(entry.Password.Password))
		row("url", entry.Password.URL)
		row("note", entry.Password.Description)

	case models.SecretTypeAPIKey:
		row("key", secret(entry.APIKey.Key))
		row("service", entry.APIKey.Service)
		row("note", entry.APIKey.Description)

	case models.SecretTypeNote:
		row("content", secret(entry.Note.Content))

	case models.SecretTypeDBCredential:
		cred := entry.DBCredential
		row("host", cred.Host)
		if cred.Port > 0 {
			row("port", strconv.Itoa(cred.Port))
		}
		row("database", cred.Database)
		row("username", cred.Username)
		row("password", secret(cred.Password))
		row("driver", cred.Driver)
		if reveal {
			row("uri", cred.ConnectionString())
		}
		row("note", cred.Description)

	case models.SecretTypeToken:
		tok := entry.Token
		row("token", secret(tok.Token))
		row("type", tok.TokenType)
		if tok.ExpiresAt != nil {
			expires := tok.ExpiresAt.Local().Format("2006-01-02 15:04")
			if tok.Expired(time.Now()) {
				expires += " " + color.RedString("(expired)")
			}
			row("expires", expires)
		}
		row("note", tok.Description)
	}

	row("created", entry.CreatedAt.Local().Format("2006-01-02 15:04"))
	row("updated", entry.UpdatedAt.Local().Format("2006-01-02 15:04"))
}

// secretValueOf returns the secret-bearing value of the entry, the one
// --copy and --reveal act on.
func secretValueOf(entry models.SecretEntry) string {
	switch entry.Type {
	case models.SecretTypePassword:
		return entry.Password.Password
	case models.SecretTypeAPIKey:
		return entry.APIKey.Key
	case models.SecretTypeNote:
		return entry.Note.Content
	case models.SecretTypeDBCredential:
		return entry.DBCredential.Password
	case models.SecretTypeToken:
		return entry.Token.Token
	default:
		return ""
	}
}
