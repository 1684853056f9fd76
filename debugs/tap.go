package debugs

import (
	"context"
	"maps"
	"slices"
	"sync"
	"testing"

	"github.com/reusee/calc/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap stops at a point of interest and opens a starlark REPL on stdin with globals bound.
// The REPL reads the terminal, so stdin must be interactive and not consumed by anything else.
// Concurrent taps are serialized. Under go test it only logs the globals.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
	t *testing.T,
) Tap {
	var mu sync.Mutex
	return func(ctx context.Context, what string, globals map[string]any) {
		mu.Lock()
		defer mu.Unlock()
		names := slices.Sorted(maps.Keys(globals))
		logger.InfoContext(ctx, "tap: "+what,
			"globals", names,
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		mappings := make(starlark.StringDict)
		for name, value := range globals {
			mappings[name] = toStarlarkValue(value)
		}

		if t != nil {
			for _, name := range names {
				t.Logf("tap %s: %s = %v", what, name, mappings[name])
			}
			return
		}

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, mappings)
	}
}
