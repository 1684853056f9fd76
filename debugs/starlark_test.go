package debugs

import (
	"errors"
	"testing"

	"go.starlark.net/starlark"
)

type testLeaf struct {
	Value int64
}

type testNode struct {
	Left, Right any
	hidden      int
}

func dict(kvs ...any) *starlark.Dict {
	d := starlark.NewDict(len(kvs) / 2)
	for i := 0; i < len(kvs); i += 2 {
		d.SetKey(starlark.String(kvs[i].(string)), kvs[i+1].(starlark.Value))
	}
	return d
}

func TestToStarlarkValue(t *testing.T) {
	leaf := &testLeaf{Value: 2}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"bytes", []byte("abc"), starlark.Bytes("abc")},
		{"string", "hello", starlark.String("hello")},
		{"int", 42, starlark.MakeInt(42)},
		{"int64", int64(-9), starlark.MakeInt64(-9)},
		{"uint8", uint8(42), starlark.MakeUint(42)},
		{"float64", 3.5, starlark.Float(3.5)},
		{"error", errors.New("Division by zero"), starlark.String("Division by zero")},
		{"list", []any{1, "a"}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.String("a")})},
		{"map", map[int]bool{1: true}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.MakeInt(1), starlark.True)
			return d
		}()},
		{"struct", testLeaf{Value: 1}, dict(
			"type", starlark.String("testLeaf"),
			"Value", starlark.MakeInt(1),
		)},
		{"pointer", &leaf, dict(
			"type", starlark.String("testLeaf"),
			"Value", starlark.MakeInt(2),
		)},
		{"tree", testNode{Left: testLeaf{Value: 1}, Right: leaf, hidden: 3}, dict(
			"type", starlark.String("testNode"),
			"Left", dict("type", starlark.String("testLeaf"), "Value", starlark.MakeInt(1)),
			"Right", dict("type", starlark.String("testLeaf"), "Value", starlark.MakeInt(2)),
		)},
		{"nil pointer", (*testLeaf)(nil), starlark.None},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("toStarlarkValue did not panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}
