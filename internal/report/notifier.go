// Package report renders the single status line each csvclean run ends with.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/JonMunkholm/csvclean/internal/core"
)

// Notifier writes exactly one human-readable line per terminal outcome.
type Notifier struct {
	w io.Writer
}

func NewNotifier(w io.Writer) (n Notifier) {
	n.w = w
	return
}

// InputMissing reports that the input was absent before the run started and
// returns the line written.
func (n Notifier) InputMissing(input string) string {
	return n.line(InputMissingMessage(input))
}

// Result reports the outcome of core.Run and returns the line written.
func (n Notifier) Result(opts core.Options, res core.Result, err error) string {
	return n.line(Status(opts, res, err))
}

func (n Notifier) line(msg string) string {
	fmt.Fprintln(n.w, msg)
	return msg
}

// Status renders the outcome of core.Run, without the trailing newline.
func Status(opts core.Options, res core.Result, err error) string {
	switch {
	case err != nil:
		return FailureMessage(err)
	case res.Outcome == core.OutcomeHeaderOnly:
		return HeaderOnlyMessage(opts.Input, opts.Output)
	default:
		return CleanedMessage(opts.Output)
	}
}

func InputMissingMessage(input string) string {
	return fmt.Sprintf("Error: Input file '%s' does not exist.", input)
}

func CleanedMessage(output string) string {
	return fmt.Sprintf("CSV cleaned and saved to %s", output)
}

func HeaderOnlyMessage(input, output string) string {
	return fmt.Sprintf(
		"The input file '%s' is empty. Only headers were written to '%s'.",
		input,
		output,
	)
}

// FailureMessage renders err. Missing files and missing columns are
// prefixed "Error:"; every other failure "An error occurred:".
func FailureMessage(err error) string {
	var cerr *core.Error
	if !errors.As(err, &cerr) {
		return fmt.Sprintf("An error occurred: %v", err)
	}

	switch cerr.Kind {
	case core.KindFileMissing, core.KindColumnNotFound:
		return fmt.Sprintf("Error: %s", cerr)
	default:
		return fmt.Sprintf("An error occurred: %s", cerr)
	}
}
