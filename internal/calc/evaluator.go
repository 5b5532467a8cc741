// Package calc implements the postfix (RPN) stack evaluator.
package calc

import (
	"errors"
	"strconv"
	"strings"
)

// Outcome is the result of evaluating a single token.
type Outcome struct {
	// Token is the evaluated input token.
	Token string
	// Value is the number pushed onto the stack when Err is nil.
	Value float64
	// Err is the failure, if any. The stack is unchanged when Err is set.
	Err error
}

// OK reports whether the token was evaluated successfully.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Evaluator owns an operand stack and evaluates postfix input against it.
// It is not safe for concurrent use.
type Evaluator struct {
	stack   []float64
	lastErr error
}

// NewEvaluator returns an Evaluator with an empty stack.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Process splits line on whitespace and evaluates every token in order,
// returning one Outcome per token. A failing token does not stop the rest.
func (e *Evaluator) Process(line string) []Outcome {
	tokens := strings.Fields(line)
	out := make([]Outcome, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, e.ProcessToken(tok))
	}
	return out
}

// ProcessToken evaluates a single token.
func (e *Evaluator) ProcessToken(token string) Outcome {
	if op, ok := Lookup(token); ok {
		return e.applyOperator(op)
	}

	v, err := strconv.ParseFloat(token, 64)
	// Out-of-range literals parse to ±Inf, which is still a number.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return e.fail(token, &InvalidInputError{Token: token})
	}
	e.push(v)
	return Outcome{Token: token, Value: v}
}

func (e *Evaluator) applyOperator(op Operator) Outcome {
	if len(e.stack) < op.Arity {
		return e.fail(op.Token, &InsufficientOperandsError{Op: op.Token, Needed: op.Arity, Have: len(e.stack)})
	}

	args := e.pop(op.Arity)
	res, err := apply(op, args)
	if err != nil {
		// Domain checks run after popping: put the operands back where they were.
		e.push(args...)
		return e.fail(op.Token, err)
	}
	e.push(res)
	return Outcome{Token: op.Token, Value: res}
}

func (e *Evaluator) fail(token string, err error) Outcome {
	e.lastErr = err
	return Outcome{Token: token, Err: err}
}

func (e *Evaluator) push(vs ...float64) {
	e.stack = append(e.stack, vs...)
}

// pop removes the top n values and returns them ordered bottom to top.
func (e *Evaluator) pop(n int) []float64 {
	d := len(e.stack) - n
	out := make([]float64, n)
	copy(out, e.stack[d:])
	e.stack = e.stack[:d]
	return out
}

// Stack returns a copy of the stack ordered bottom to top.
func (e *Evaluator) Stack() []float64 {
	out := make([]float64, len(e.stack))
	copy(out, e.stack)
	return out
}

// Len returns the stack depth.
func (e *Evaluator) Len() int {
	return len(e.stack)
}

// LastError returns the most recent failure that has not been cleared.
func (e *Evaluator) LastError() error {
	return e.lastErr
}

// ClearError drops the pending error.
func (e *Evaluator) ClearError() {
	e.lastErr = nil
}
