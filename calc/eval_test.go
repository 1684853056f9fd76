package calc

import (
	"errors"
	"math"
	"testing"
)

func TestEval(t *testing.T) {
	tests := []struct {
		name     string
		expr     Expr
		expected int64
	}{
		{"int", Int{3}, 3},
		{"neg", Neg{Int{3}}, -3},
		{"neg max", Neg{Int{math.MaxInt64}}, -math.MaxInt64},
		{"add", Add{Int{1}, Int{2}}, 3},
		{"add to min", Add{Int{math.MinInt64}, Int{math.MaxInt64}}, -1},
		{"sub", Sub{Int{1}, Int{2}}, -1},
		{"sub to min", Sub{Neg{Int{math.MaxInt64}}, Int{1}}, math.MinInt64},
		{"mul", Mul{Int{-4}, Int{5}}, -20},
		{"mul zero", Mul{Int{0}, Int{math.MaxInt64}}, 0},
		{"mul min by one", Mul{Sub{Neg{Int{math.MaxInt64}}, Int{1}}, Int{1}}, math.MinInt64},
		{"div truncates", Div{Int{7}, Int{2}}, 3},
		{"div truncates toward zero", Div{Int{-7}, Int{2}}, -3},
		{"div negative divisor", Div{Int{7}, Int{-2}}, -3},
		{"div min by one", Div{Sub{Neg{Int{math.MaxInt64}}, Int{1}}, Int{1}}, math.MinInt64},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Eval(test.expr)
			if err != nil {
				t.Fatal(err)
			}
			if got != test.expected {
				t.Fatalf("got %d, expected %d", got, test.expected)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	minInt := Sub{Neg{Int{math.MaxInt64}}, Int{1}}
	tests := []struct {
		name string
		expr Expr
		kind ErrorKind
		msg  string
	}{
		{"neg min", Neg{minInt}, Overflow, "Overflow on negation"},
		{"add", Add{Int{math.MaxInt64}, Int{math.MaxInt64}}, Overflow, "Overflow on addition"},
		{"add negative", Add{minInt, Int{-1}}, Overflow, "Overflow on addition"},
		{"sub", Sub{minInt, Int{1}}, Overflow, "Overflow on subtraction"},
		{"sub negative", Sub{Int{math.MaxInt64}, Int{-1}}, Overflow, "Overflow on subtraction"},
		{"mul", Mul{Int{math.MaxInt64}, Int{2}}, Overflow, "Overflow on multiplication"},
		{"mul min by minus one", Mul{minInt, Neg{Int{1}}}, Overflow, "Overflow on multiplication"},
		{"mul minus one by min", Mul{Neg{Int{1}}, minInt}, Overflow, "Overflow on multiplication"},
		{"div", Div{minInt, Neg{Int{1}}}, Overflow, "Overflow on division"},
		{"div zero", Div{Int{1}, Int{0}}, DivisionByZero, "Division by zero"},
		{"div zero expr", Div{Int{1}, Sub{Int{5}, Int{5}}}, DivisionByZero, "Division by zero"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Eval(test.expr)
			if !errors.Is(err, test.kind) {
				t.Fatalf("expected %v, got %v", test.kind, err)
			}
			if err.Error() != test.msg {
				t.Fatalf("got %q", err.Error())
			}
		})
	}
}

func TestEvalOrder(t *testing.T) {
	overflowing := Add{Int{math.MaxInt64}, Int{1}}
	zero := Sub{Int{1}, Int{1}}

	// left operand first
	_, err := Eval(Mul{Neg{Sub{Neg{Int{math.MaxInt64}}, Int{1}}}, overflowing})
	if err.Error() != "Overflow on negation" {
		t.Fatalf("got %v", err)
	}

	// divisor first
	_, err = Eval(Div{overflowing, zero})
	if err.Error() != "Division by zero" {
		t.Fatalf("got %v", err)
	}
	_, err = Eval(Div{Int{1}, overflowing})
	if err.Error() != "Overflow on addition" {
		t.Fatalf("got %v", err)
	}
}

func TestExprString(t *testing.T) {
	expr := Sub{Add{Neg{Int{1}}, Mul{Int{5}, Div{Int{4}, Int{2}}}}, Int{3}}
	if str := expr.String(); str != "Sub(Add(Neg(Int(1)), Mul(Int(5), Div(Int(4), Int(2)))), Int(3))" {
		t.Fatalf("got %s", str)
	}
}
