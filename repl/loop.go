package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reusee/calc/calcconfigs"
	"github.com/reusee/calc/logs"
	"golang.org/x/term"
)

const maxLineSize = 1 << 20

var ErrTapWithJobs = errors.New("-tap needs sequential evaluation, can not be used with jobs > 1")

// Loop reads lines from in until it is exhausted and writes one output line per non-empty input line.
// One failing line never stops the loop; only read and write errors do.
// Canceling ctx ends the loop at once, even while it waits for input, and is not an error.
type Loop func(ctx context.Context, in io.Reader, out io.Writer) error

func (Module) Loop(
	evaluateLine EvaluateLine,
	evaluateAll EvaluateAll,
	jobs calcconfigs.Jobs,
	prompt calcconfigs.Prompt,
	logger logs.Logger,
) Loop {
	return func(ctx context.Context, in io.Reader, out io.Writer) error {
		if *tapFlag && jobs > 1 {
			return ErrTapWithJobs
		}

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		lines, readErr := scanLines(ctx, in)

		if jobs > 1 {
			var batch []string
		collect:
			for {
				select {
				case <-ctx.Done():
					return nil
				case line, ok := <-lines:
					if !ok {
						break collect
					}
					batch = append(batch, line)
				}
			}
			if err := readError(readErr); err != nil {
				return err
			}
			logger.InfoContext(ctx, "batch",
				"lines", len(batch),
				"jobs", int(jobs),
			)
			outputs, err := evaluateAll(ctx, batch)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
			for _, output := range outputs {
				if _, err := fmt.Fprintln(out, output); err != nil {
					return err
				}
			}
			return nil
		}

		interactive := isTerminal(in)
		for {
			if interactive {
				if _, err := io.WriteString(out, string(prompt)); err != nil {
					return err
				}
			}
			var line string
			var ok bool
			select {
			case <-ctx.Done():
				if interactive {
					fmt.Fprintln(out)
				}
				logger.DebugContext(ctx, "loop canceled")
				return nil
			case line, ok = <-lines:
			}
			if !ok {
				break
			}
			input := strings.TrimSpace(line)
			if input == "" {
				continue
			}
			if _, err := fmt.Fprintln(out, evaluateLine(ctx, input)); err != nil {
				return err
			}
		}
		if interactive {
			// leave the terminal on a fresh line after ^D
			fmt.Fprintln(out)
		}
		return readError(readErr)
	}
}

// scanLines feeds lines of in to the returned channel, which is closed when in is exhausted or ctx is done.
// A blocked read of in outlives ctx; the goroutine exits on the next line or end of input.
func scanLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errs := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errs <- scanner.Err()
	}()
	return lines, errs
}

// readError must be called after the lines channel is closed.
func readError(errs <-chan error) error {
	select {
	case err := <-errs:
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	default:
	}
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
