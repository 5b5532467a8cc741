package calc

import (
	"math"
	"sort"
)

// OpKind identifies the semantic function applied by an operator.
type OpKind int

const (
	// OpAdd is "+".
	OpAdd OpKind = iota + 1
	// OpSub is "-".
	OpSub
	// OpMul is "*".
	OpMul
	// OpDiv is "/".
	OpDiv
	// OpMod is "%".
	OpMod
	// OpSin is "sin".
	OpSin
	// OpCos is "cos".
	OpCos
	// OpTan is "tg".
	OpTan
	// OpSquare is "pow".
	OpSquare
	// OpSqrt is "sqrt".
	OpSqrt
	// OpLog10 is "log".
	OpLog10
	// OpLn is "ln".
	OpLn
	// OpAbs is "abs".
	OpAbs
)

// Operator describes a single entry of the operator table.
type Operator struct {
	// Token is the exact, case-sensitive input token.
	Token string
	// Kind selects the semantic function.
	Kind OpKind
	// Arity is the number of operands consumed from the stack.
	Arity int
	// Summary is a short human-readable description.
	Summary string
}

var operators = map[string]Operator{
	"+":    {Token: "+", Kind: OpAdd, Arity: 2, Summary: "addition"},
	"-":    {Token: "-", Kind: OpSub, Arity: 2, Summary: "subtraction (a b - = a-b)"},
	"*":    {Token: "*", Kind: OpMul, Arity: 2, Summary: "multiplication"},
	"/":    {Token: "/", Kind: OpDiv, Arity: 2, Summary: "division (a b / = a/b)"},
	"%":    {Token: "%", Kind: OpMod, Arity: 2, Summary: "modulo, sign of divisor"},
	"sin":  {Token: "sin", Kind: OpSin, Arity: 1, Summary: "sine (radians)"},
	"cos":  {Token: "cos", Kind: OpCos, Arity: 1, Summary: "cosine (radians)"},
	"tg":   {Token: "tg", Kind: OpTan, Arity: 1, Summary: "tangent (radians)"},
	"pow":  {Token: "pow", Kind: OpSquare, Arity: 1, Summary: "square"},
	"sqrt": {Token: "sqrt", Kind: OpSqrt, Arity: 1, Summary: "square root"},
	"log":  {Token: "log", Kind: OpLog10, Arity: 1, Summary: "base-10 logarithm"},
	"ln":   {Token: "ln", Kind: OpLn, Arity: 1, Summary: "natural logarithm"},
	"abs":  {Token: "abs", Kind: OpAbs, Arity: 1, Summary: "absolute value"},
}

// Lookup returns the operator registered for token.
func Lookup(token string) (Operator, bool) {
	op, ok := operators[token]
	return op, ok
}

// Operators returns the operator vocabulary, binary operators first, in table order.
func Operators() []Operator {
	out := make([]Operator, 0, len(operators))
	for _, op := range operators {
		out = append(out, op)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Kind < out[j].Kind
	})
	return out
}

// apply computes the operator result for args, ordered bottom to top.
// args has exactly op.Arity elements.
func apply(op Operator, args []float64) (float64, error) {
	switch op.Kind {
	case OpAdd:
		return args[0] + args[1], nil
	case OpSub:
		return args[0] - args[1], nil
	case OpMul:
		return args[0] * args[1], nil
	case OpDiv:
		if args[1] == 0 {
			return 0, &OperatorError{Op: op.Token, Err: ErrDivisionByZero}
		}
		return args[0] / args[1], nil
	case OpMod:
		if args[1] == 0 {
			return 0, &OperatorError{Op: op.Token, Err: ErrDivisionByZero}
		}
		return flooredMod(args[0], args[1]), nil
	case OpSin:
		return math.Sin(args[0]), nil
	case OpCos:
		return math.Cos(args[0]), nil
	case OpTan:
		return math.Tan(args[0]), nil
	case OpSquare:
		return math.Pow(args[0], 2), nil
	case OpSqrt:
		if args[0] < 0 {
			return 0, &OperatorError{Op: op.Token, Err: ErrNegativeSqrt}
		}
		return math.Sqrt(args[0]), nil
	case OpLog10:
		if args[0] <= 0 {
			return 0, &OperatorError{Op: op.Token, Err: ErrNonPositiveLog}
		}
		return math.Log10(args[0]), nil
	case OpLn:
		if args[0] <= 0 {
			return 0, &OperatorError{Op: op.Token, Err: ErrNonPositiveLog}
		}
		return math.Log(args[0]), nil
	case OpAbs:
		return math.Abs(args[0]), nil
	}
	panic("calc: unknown operator kind")
}

// flooredMod returns a mod b with the sign of b.
func flooredMod(a, b float64) float64 {
	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}
