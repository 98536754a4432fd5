// Package prompt asks the user to approve a live cleanup run.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aatumaykin/agesweep/internal/constants"
	"golang.org/x/term"
)

// readLine reads one line from input, returning early if ctx is cancelled.
// EOF yields "" so an empty reader counts as "no". The reading goroutine may
// outlive a cancelled call; the process is about to exit then.
func readLine(ctx context.Context, input io.Reader) (string, error) {
	ch := make(chan string, 1)
	go func() {
		scanner := bufio.NewScanner(input)
		if scanner.Scan() {
			ch <- scanner.Text()
		} else {
			ch <- ""
		}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line := <-ch:
		return line, nil
	}
}

// Confirm writes prompt and reads the answer. Only "y" in any case is
// affirmative; everything else, including an empty line, declines.
func Confirm(ctx context.Context, prompt string, input io.Reader, output io.Writer) (bool, error) {
	fmt.Fprint(output, prompt)
	line, err := readLine(ctx, input)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Reader returns a confirm function reading answers from in.
func Reader(in io.Reader, out io.Writer) func(ctx context.Context, prompt string) (bool, error) {
	return func(ctx context.Context, prompt string) (bool, error) {
		return Confirm(ctx, prompt, in, out)
	}
}

// TerminalConfirm returns a confirm function that prompts on in only when it
// is a terminal. Otherwise it prints a hint to use --force and declines.
func TerminalConfirm(in *os.File, out io.Writer) func(ctx context.Context, prompt string) (bool, error) {
	return terminalConfirm(in, out, IsTerminal)
}

func terminalConfirm(in *os.File, out io.Writer, isTerminal func(*os.File) bool) func(ctx context.Context, prompt string) (bool, error) {
	return func(ctx context.Context, prompt string) (bool, error) {
		if !isTerminal(in) {
			fmt.Fprintln(out, constants.MsgNotTerminal)
			return false, nil
		}
		return Confirm(ctx, prompt, in, out)
	}
}
