package calc

import "fmt"

// Expr is a node of the expression tree.
// The set of implementations is closed: Int, Neg, Add, Sub, Mul and Div.
type Expr interface {
	fmt.Stringer
	isExpr()
}

type Int struct {
	Value int64
}

type Neg struct {
	X Expr
}

type Add struct {
	Left, Right Expr
}

type Sub struct {
	Left, Right Expr
}

type Mul struct {
	Left, Right Expr
}

type Div struct {
	Left, Right Expr
}

var (
	_ Expr = Int{}
	_ Expr = Neg{}
	_ Expr = Add{}
	_ Expr = Sub{}
	_ Expr = Mul{}
	_ Expr = Div{}
)

func (Int) isExpr() {}
func (Neg) isExpr() {}
func (Add) isExpr() {}
func (Sub) isExpr() {}
func (Mul) isExpr() {}
func (Div) isExpr() {}

func (i Int) String() string {
	return fmt.Sprintf("Int(%d)", i.Value)
}

func (n Neg) String() string {
	return fmt.Sprintf("Neg(%v)", n.X)
}

func (a Add) String() string {
	return fmt.Sprintf("Add(%v, %v)", a.Left, a.Right)
}

func (s Sub) String() string {
	return fmt.Sprintf("Sub(%v, %v)", s.Left, s.Right)
}

func (m Mul) String() string {
	return fmt.Sprintf("Mul(%v, %v)", m.Left, m.Right)
}

func (d Div) String() string {
	return fmt.Sprintf("Div(%v, %v)", d.Left, d.Right)
}
