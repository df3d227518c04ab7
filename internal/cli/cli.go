// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli is the command surface of kookie. It owns every piece of
// interactive I/O: prompts, spinners, confirmation questions, colored
// output. The vault core below it never prints and never prompts; the
// commands here gather input first, then hand the core already-resolved
// arguments.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/kookie/internal/activity"
	"github.com/MKhiriev/kookie/internal/config"
	"github.com/MKhiriev/kookie/internal/logger"
	"github.com/MKhiriev/kookie/internal/session"
	"github.com/MKhiriev/kookie/internal/vault"
	"github.com/MKhiriev/kookie/models"
)

// CLI wires the vault manager and the activity log into the cobra
// command tree.
type CLI struct {
	manager  vault.VaultManager
	recorder activity.Recorder
	cfg      *config.CLIConfig
	build    models.BuildInfo
	log      *logger.Logger

	// stdin is buffered once for the whole invocation so consecutive
	// prompts do not lose type-ahead between reads.
	stdin *bufio.Reader
}

// New constructs the CLI over an already-wired vault manager.
func New(manager vault.VaultManager, recorder activity.Recorder, cfg *config.CLIConfig, build models.BuildInfo, log *logger.Logger) *CLI {
	return &CLI{
		manager:  manager,
		recorder: recorder,
		cfg:      cfg,
		build:    build,
		log:      log,
		stdin:    bufio.NewReader(os.Stdin),
	}
}

// Execute runs the command named by args. Errors are rendered for the
// user here (cobra's own printing is silenced) and returned so the
// caller can pick the exit code.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.newRootCmd()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), color.RedString("✗ ")+userMessage(err))
		c.log.Err(err).Str("func", "Execute").Msg("command failed")
	}

	return err
}

func (c *CLI) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kookie",
		Short: "Kookie is a local, offline secret vault",
		Long: `Kookie keeps passwords, API keys, notes, database credentials, and
tokens in a single encrypted file on this machine. Nothing ever leaves
the machine: no server, no account, no network.

The vault is sealed with a master password. Unlock once and the session
is cached for a short while, so consecutive commands do not ask again.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		c.newInitCmd(),
		c.newUnlockCmd(),
		c.newLockCmd(),
		c.newAddCmd(),
		c.newGetCmd(),
		c.newListCmd(),
		c.newUpdateCmd(),
		c.newDeleteCmd(),
		c.newGenerateCmd(),
		c.newLogCmd(),
		c.newVersionCmd(),
	)

	return root
}

// ensureUnlocked brings the vault to the unlocked state, preferring the
// cached session and falling back to a password prompt. This is the
// gate every secret operation passes through.
func (c *CLI) ensureUnlocked(cmd *cobra.Command) error {
	ctx := cmd.Context()
	ttl := c.cfg.Session.UnlockTimeout

	err := c.manager.UnlockWithSession(ctx, ttl)
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, session.ErrSessionExpired):
		fmt.Fprintln(cmd.ErrOrStderr(), color.YellowString("Session expired."))
	case errors.Is(err, session.ErrNoSession):
		// Silent: asking for the password is answer enough.
	case isWrongPassword(err):
		// The cached key no longer opens the vault; the stale session
		// was already cleared.
	default:
		return err
	}

	password, err := c.promptPassword("Master password:")
	if err != nil {
		return err
	}

	return c.unlockWithSpinner(ctx, password, ttl)
}

// unlockWithSpinner runs the slow key derivation behind a spinner.
func (c *CLI) unlockWithSpinner(ctx context.Context, password string, ttl time.Duration) error {
	_, cleanup := startSpinner("Unlocking vault...")
	defer cleanup()

	return c.manager.Unlock(ctx, password, ttl)
}

// printCreated renders the one-line receipt of a stored secret.
func printCreated(out io.Writer, entry models.SecretEntry) {
	fmt.Fprintf(out, "%s Stored %s %s\n",
		color.GreenString("✓"),
		entry.Type,
		color.YellowString("%q", entry.Name))
	fmt.Fprintf(out, "%s id: %s\n", color.CyanString("→"), entry.ID)
}
