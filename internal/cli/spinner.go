package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
)

// startSpinner shows an animated progress line on stderr and returns
// the spinner plus a cleanup that stops it. Set FinalMSG on the handle
// before cleanup to leave a closing line behind; otherwise the line is
// erased. Stdout is untouched so command output stays pipeable.
func startSpinner(message string) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message
	s.Writer = os.Stderr

	// A terminal without color support still gets the animation.
	_ = s.Color("cyan")

	s.Start()

	cleanup := func() {
		finalMsg := s.FinalMSG
		if finalMsg != "" && !strings.HasSuffix(finalMsg, "\n") {
			finalMsg += "\n"
		}

		// Clear FinalMSG so Stop does not print it on the spinner line.
		s.FinalMSG = ""
		s.Stop()

		if finalMsg != "" {
			fmt.Fprint(os.Stderr, finalMsg)
		}
	}

	return s, cleanup
}
