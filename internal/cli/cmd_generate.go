package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/kookie/internal/generator"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random secret value",
		Long: `Generate a random value without storing it. The value is printed to
stdout so it can be piped; with --copy it goes to the clipboard instead
and nothing is printed. No unlock needed.`,
	}

	cmd.AddCommand(
		c.newGeneratePasswordCmd(),
		c.newGenerateKeyCmd(),
		c.newGenerateAPIKeyCmd(),
		c.newGenerateJWTSecretCmd(),
	)

	return cmd
}

func (c *CLI) newGeneratePasswordCmd() *cobra.Command {
	var (
		length    int
		noSymbols bool
		copyVal   bool
	)

	cmd := &cobra.Command{
		Use:   "password",
		Short: "Generate a random password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, err := generator.Password(length, !noSymbols)
			if err != nil {
				return err
			}

			return writeGenerated(cmd, value, copyVal)
		},
	}

	cmd.Flags().IntVar(&length, "length", 20, "password length")
	cmd.Flags().BoolVar(&noSymbols, "no-symbols", false, "use letters and digits only")
	cmd.Flags().BoolVar(&copyVal, "copy", false, "copy to the clipboard instead of printing")

	return cmd
}

func (c *CLI) newGenerateKeyCmd() *cobra.Command {
	var copyVal bool

	cmd := &cobra.Command{
		Use:   "key",
		Short: "Generate a random 256-bit key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, err := generator.EncryptionKey()
			if err != nil {
				return err
			}

			return writeGenerated(cmd, value, copyVal)
		},
	}

	cmd.Flags().BoolVar(&copyVal, "copy", false, "copy to the clipboard instead of printing")

	return cmd
}

func (c *CLI) newGenerateAPIKeyCmd() *cobra.Command {
	var copyVal bool

	cmd := &cobra.Command{
		Use:   "api-key",
		Short: "Generate a random API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, err := generator.APIKey()
			if err != nil {
				return err
			}

			return writeGenerated(cmd, value, copyVal)
		},
	}

	cmd.Flags().BoolVar(&copyVal, "copy", false, "copy to the clipboard instead of printing")

	return cmd
}

func (c *CLI) newGenerateJWTSecretCmd() *cobra.Command {
	var copyVal bool

	cmd := &cobra.Command{
		Use:   "jwt-secret",
		Short: "Generate a random JWT signing secret",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, err := generator.JWTSecret()
			if err != nil {
				return err
			}

			return writeGenerated(cmd, value, copyVal)
		},
	}

	cmd.Flags().BoolVar(&copyVal, "copy", false, "copy to the clipboard instead of printing")

	return cmd
}

func writeGenerated(cmd *cobra.Command, value string, copyVal bool) error {
	if copyVal {
		if err := clipboard.WriteAll(value); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%s Copied to clipboard\n", color.GreenString("✓"))

		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), value)

	return nil
}
