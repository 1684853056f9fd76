package calc

import (
	"fmt"
	"math"
)

type Operation uint8

const (
	OpAdd Operation = iota
	OpSub
	OpMul
	OpDiv
	OpNeg
)

var operationNames = [...]string{
	OpAdd: "addition",
	OpSub: "subtraction",
	OpMul: "multiplication",
	OpDiv: "division",
	OpNeg: "negation",
}

func (o Operation) String() string {
	if int(o) < len(operationNames) {
		return operationNames[o]
	}
	return fmt.Sprintf("Operation(%d)", o)
}

// Eval computes the value of expr with checked 64-bit arithmetic.
// Operands are evaluated left to right, except for division where the divisor comes first.
func Eval(expr Expr) (int64, error) {
	switch expr := expr.(type) {

	case Int:
		return expr.Value, nil

	case Neg:
		x, err := Eval(expr.X)
		if err != nil {
			return 0, err
		}
		if x == math.MinInt64 {
			return 0, overflow(OpNeg)
		}
		return -x, nil

	case Add:
		a, b, err := evalOperands(expr.Left, expr.Right)
		if err != nil {
			return 0, err
		}
		sum := a + b
		if (a^sum)&(b^sum) < 0 {
			return 0, overflow(OpAdd)
		}
		return sum, nil

	case Sub:
		a, b, err := evalOperands(expr.Left, expr.Right)
		if err != nil {
			return 0, err
		}
		diff := a - b
		if (a^b)&(a^diff) < 0 {
			return 0, overflow(OpSub)
		}
		return diff, nil

	case Mul:
		a, b, err := evalOperands(expr.Left, expr.Right)
		if err != nil {
			return 0, err
		}
		if a == 0 || b == 0 {
			return 0, nil
		}
		product := a * b
		if a == -1 && b == math.MinInt64 ||
			b == -1 && a == math.MinInt64 ||
			product/b != a {
			return 0, overflow(OpMul)
		}
		return product, nil

	case Div:
		b, err := Eval(expr.Right)
		if err != nil {
			return 0, err
		}
		if b == 0 {
			return 0, &Error{Kind: DivisionByZero}
		}
		a, err := Eval(expr.Left)
		if err != nil {
			return 0, err
		}
		if a == math.MinInt64 && b == -1 {
			return 0, overflow(OpDiv)
		}
		return a / b, nil

	}

	panic(fmt.Errorf("unknown expression type %T", expr))
}

func evalOperands(left, right Expr) (a, b int64, err error) {
	a, err = Eval(left)
	if err != nil {
		return
	}
	b, err = Eval(right)
	return
}

func overflow(op Operation) error {
	return &Error{
		Kind: Overflow,
		Op:   op,
	}
}
