package calc

import (
	"context"
	"strings"

	"github.com/reusee/calc/calcconfigs"
	"github.com/reusee/calc/logs"
)

// Evaluate tokenizes, parses and evaluates one line of input.
// Tokens after a complete expression are rejected.
func Evaluate(input string) (int64, error) {
	parser, err := NewParser(strings.NewReader(input), nil)
	if err != nil {
		return 0, err
	}
	expr, err := parser.Parse()
	if err != nil {
		return 0, err
	}
	return Eval(expr)
}

type Calculate func(ctx context.Context, input string) (int64, error)

func (Module) Calculate(
	logger logs.Logger,
	allowTrailing calcconfigs.AllowTrailingTokens,
) Calculate {
	return func(ctx context.Context, input string) (int64, error) {
		logger.InfoContext(ctx, "calculate", "input", input)

		parser, err := NewParser(
			strings.NewReader(input),
			logs.WithSpan(ctx, logger),
		)
		if err != nil {
			return 0, err
		}

		var expr Expr
		if allowTrailing {
			expr, err = parser.ParseExpression()
			if err == nil && parser.Current().Kind != TokenEOF {
				logger.DebugContext(ctx, "ignore trailing token",
					"token", parser.Current(),
				)
			}
		} else {
			expr, err = parser.Parse()
		}
		if err != nil {
			return 0, err
		}
		logger.InfoContext(ctx, "parsed", "expr", expr)

		result, err := Eval(expr)
		if err != nil {
			return 0, err
		}
		logger.DebugContext(ctx, "evaluated", "result", result)

		return result, nil
	}
}
