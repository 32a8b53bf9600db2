// Package ast defines the expression tree: a closed tagged variant with
// exactly the cases Literal, Variable, Function, Neg, Add, Sub, Mul, Div
// and Pow. The tree is finite and acyclic; every interior node owns its
// children exclusively. Literals are preserved verbatim so that whichever
// numeric backend evaluates them controls literal semantics.
package ast

// Expr is implemented by exactly the nine node kinds below. The unexported
// marker method seals the variant to this package.
type Expr interface {
	exprNode()
}

// Literal is an unparsed numeric lexeme, handed to the backend's Parse.
type Literal struct{ Text string }

// Variable is an identifier reference, resolved against a Context.
type Variable struct{ Name string }

// Function is a call with an ordered, possibly-empty argument list.
type Function struct {
	Name string
	Args []Expr
}

// Neg is unary minus.
type Neg struct{ Operand Expr }

// Add, Sub, Mul, Div and Pow are binary operators. Pow is evaluated
// right-associatively by the parser, which is reflected in how it nests
// Left/Right, not in this struct shape.
type (
	Add struct{ Left, Right Expr }
	Sub struct{ Left, Right Expr }
	Mul struct{ Left, Right Expr }
	Div struct{ Left, Right Expr }
	Pow struct{ Left, Right Expr }
)

func (Literal) exprNode()  {}
func (Variable) exprNode() {}
func (Function) exprNode() {}
func (Neg) exprNode()      {}
func (Add) exprNode()      {}
func (Sub) exprNode()      {}
func (Mul) exprNode()      {}
func (Div) exprNode()      {}
func (Pow) exprNode()      {}

// Equal reports structural equality between two expression trees.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case Literal:
		y, ok := b.(Literal)
		return ok && x.Text == y.Text
	case Variable:
		y, ok := b.(Variable)
		return ok && x.Name == y.Name
	case Function:
		y, ok := b.(Function)
		if !ok || x.Name != y.Name || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !Equal(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	case Neg:
		y, ok := b.(Neg)
		return ok && Equal(x.Operand, y.Operand)
	case Add:
		y, ok := b.(Add)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case Sub:
		y, ok := b.(Sub)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case Mul:
		y, ok := b.(Mul)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case Div:
		y, ok := b.(Div)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case Pow:
		y, ok := b.(Pow)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	default:
		return false
	}
}
