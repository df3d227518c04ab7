package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// minMasterPasswordLen is the minimum length accepted for a new master
// password. Existing vaults unlock with whatever they were created
// with; the floor only applies at creation time.
const minMasterPasswordLen = 8

// promptPassword reads a secret value without echoing it. Prompts go to
// stderr so stdout stays clean for pipeable command output.
func (c *CLI) promptPassword(label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("cannot read hidden input: stdin is not a terminal")
	}

	fmt.Fprint(os.Stderr, color.CyanString(label)+" ")
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read hidden input: %w", err)
	}

	return string(raw), nil
}

// promptNewPassword asks for a fresh master password twice and loops
// until both entries match and meet the length floor.
func (c *CLI) promptNewPassword(label string) (string, error) {
	for {
		password, err := c.promptPassword(label)
		if err != nil {
			return "", err
		}

		if len(password) < minMasterPasswordLen {
			fmt.Fprintln(os.Stderr, color.RedString("Password must be at least %d characters.", minMasterPasswordLen))
			continue
		}

		confirm, err := c.promptPassword("Confirm password:")
		if err != nil {
			return "", err
		}

		if password != confirm {
			fmt.Fprintln(os.Stderr, color.RedString("Passwords do not match. Try again."))
			continue
		}

		return password, nil
	}
}

// promptLine reads one line of visible input, trimmed.
func (c *CLI) promptLine(label string) (string, error) {
	fmt.Fprint(os.Stderr, color.CyanString(label)+" ")

	line, err := c.stdin.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// promptLineDefault reads one line of visible input, keeping the
// current value when the user just presses enter.
func (c *CLI) promptLineDefault(label, current string) (string, error) {
	prompt := color.CyanString(label)
	if current != "" {
		prompt += " " + color.New(color.Faint).Sprintf("[%s]", current)
	}
	fmt.Fprint(os.Stderr, prompt+" ")

	line, err := c.stdin.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return current, nil
	}

	return line, nil
}

// promptNumberDefault reads a non-negative number, keeping the current
// value when the user just presses enter.
func (c *CLI) promptNumberDefault(label string, current int) (int, error) {
	faint := color.New(color.Faint)

	for {
		fmt.Fprint(os.Stderr, color.CyanString(label)+" "+faint.Sprintf("[%d]", current)+" ")

		line, err := c.stdin.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("read input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			return current, nil
		}

		n, err := strconv.Atoi(line)
		if err != nil || n < 0 {
			fmt.Fprintln(os.Stderr, color.RedString("Invalid number. Try again."))
			continue
		}

		return n, nil
	}
}

// promptConfirm asks a yes/no question. Enter picks the default.
func (c *CLI) promptConfirm(label string, def bool) (bool, error) {
	suffix := "[y/N]"
	if def {
		suffix = "[Y/n]"
	}

	faint := color.New(color.Faint)
	fmt.Fprint(os.Stderr, color.CyanString(label)+" "+faint.Sprint(suffix)+" ")

	line, err := c.stdin.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read input: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	if answer == "" {
		return def, nil
	}

	return answer == "y" || answer == "yes", nil
}
