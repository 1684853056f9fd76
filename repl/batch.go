package repl

import (
	"context"
	"strings"

	"github.com/reusee/calc/calcconfigs"
	"golang.org/x/sync/errgroup"
)

// EvaluateAll evaluates lines in parallel and returns outputs in input order.
// Empty lines produce no output.
type EvaluateAll func(ctx context.Context, lines []string) ([]string, error)

func (Module) EvaluateAll(
	evaluateLine EvaluateLine,
	jobs calcconfigs.Jobs,
) EvaluateAll {
	return func(ctx context.Context, lines []string) ([]string, error) {
		outputs := make([]string, len(lines))
		group, ctx := errgroup.WithContext(ctx)
		group.SetLimit(int(jobs))
		for i, line := range lines {
			input := strings.TrimSpace(line)
			if input == "" {
				continue
			}
			group.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				outputs[i] = evaluateLine(ctx, input)
				return nil
			})
		}
		if err := group.Wait(); err != nil {
			return nil, err
		}

		ret := outputs[:0]
		for i, output := range outputs {
			if strings.TrimSpace(lines[i]) == "" {
				continue
			}
			ret = append(ret, output)
		}
		return ret, nil
	}
}
