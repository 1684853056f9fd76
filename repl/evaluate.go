package repl

import (
	"context"
	"strings"

	"github.com/reusee/calc/calc"
	"github.com/reusee/calc/cmds"
	"github.com/reusee/calc/debugs"
	"github.com/reusee/calc/logs"
)

var tapFlag = cmds.Switch("-tap")

// EvaluateLine evaluates one input line and returns the text to print.
type EvaluateLine func(ctx context.Context, input string) string

func (Module) EvaluateLine(
	calculate calc.Calculate,
	newSpan logs.NewSpan,
	logger logs.Logger,
	tap debugs.Tap,
) EvaluateLine {
	return func(ctx context.Context, input string) string {
		ctx, _ = newSpan(ctx, "")
		result, err := calculate(ctx, input)
		if err != nil {
			logger.DebugContext(ctx, "calculate failed",
				"input", input,
				"error", err,
			)
		}

		if *tapFlag {
			globals := map[string]any{
				"input":  input,
				"result": result,
				"error":  err,
			}
			if tokens, err := calc.Tokenize(input); err == nil {
				globals["tokens"] = tokens
			}
			if parser, err := calc.NewParser(strings.NewReader(input), nil); err == nil {
				if expr, err := parser.ParseExpression(); err == nil {
					globals["expr"] = expr
				}
			}
			tap(ctx, "evaluated", globals)
		}

		return formatLine(input, result, err)
	}
}
