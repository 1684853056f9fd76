package calcconfigs

import (
	"testing"

	"github.com/reusee/calc/cmds"
	"github.com/reusee/calc/configs"
	"github.com/reusee/calc/modes"
	"github.com/reusee/dscope"
)

func TestFromFile(t *testing.T) {
	loader := NewLoader("testdata/calc.cue")
	if err := loader.Validate(); err != nil {
		t.Fatal(err)
	}
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return loader
		},
	).Call(func(
		allowTrailing AllowTrailingTokens,
		jobs Jobs,
		prompt Prompt,
		level LogLevel,
	) {
		if !allowTrailing {
			t.Fatal("got false")
		}
		if jobs != 4 {
			t.Fatalf("got %v", jobs)
		}
		if prompt != "calc> " {
			t.Fatalf("got %q", prompt)
		}
		if level != "debug" {
			t.Fatalf("got %q", level)
		}
	})
}

func TestDefaults(t *testing.T) {
	loader := NewLoader()
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return loader
		},
	).Call(func(
		allowTrailing AllowTrailingTokens,
		jobs Jobs,
		prompt Prompt,
		level LogLevel,
	) {
		if allowTrailing {
			t.Fatal("got true")
		}
		if jobs != 1 {
			t.Fatalf("got %v", jobs)
		}
		if prompt != "> " {
			t.Fatalf("got %q", prompt)
		}
		if level != "" {
			t.Fatalf("got %q", level)
		}
	})
}

func TestFlagsOverride(t *testing.T) {
	cmds.GlobalExecutor.MustExecute([]string{
		"-allow-trailing",
		"-jobs", "8",
	})
	defer cmds.GlobalExecutor.MustExecute([]string{
		"!-allow-trailing",
		"-jobs.",
	})

	loader := NewLoader()
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return loader
		},
	).Call(func(
		allowTrailing AllowTrailingTokens,
		jobs Jobs,
	) {
		if !allowTrailing {
			t.Fatal("got false")
		}
		if jobs != 8 {
			t.Fatalf("got %v", jobs)
		}
	})
}

func TestSchemaViolation(t *testing.T) {
	loader := NewLoader("testdata/bad.cue")
	if err := loader.Validate(); err == nil {
		t.Fatal("should error")
	}
}
