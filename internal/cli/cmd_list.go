package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/kookie/models"
)

func (c *CLI) newListCmd() *cobra.Command {
	var typeName string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored secrets",
		Long:  `List stored secrets without their values. Names, usernames, and other metadata only.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Parse the filter before unlocking, so a typo does not
			// cost the user a password entry.
			var filter *models.SecretType
			if typeName != "" {
				parsed, err := models.ParseSecretType(typeName)
				if err != nil {
					return err
				}
				filter = &parsed
			}

			if err := c.ensureUnlocked(cmd); err != nil {
				return err
			}

			entries, err := c.manager.List(cmd.Context(), filter)
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				if filter != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "No %s secrets stored.\n", *filter)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "The vault is empty. Add a secret with 'kookie add'.")
				}
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTYPE\tNAME\tUPDATED")
			for _, entry := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					entry.ID, entry.Type, entry.Name,
					entry.UpdatedAt.Local().Format("2006-01-02 15:04"))
			}

			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&typeName, "type", "", "restrict to one secret type")

	return cmd
}
