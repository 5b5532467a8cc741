package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWith(t *testing.T, line string) *Evaluator {
	t.Helper()
	e := NewEvaluator()
	for _, o := range e.Process(line) {
		require.NoError(t, o.Err, "token %q", o.Token)
	}
	return e
}

func TestProcessLiterals(t *testing.T) {
	e := NewEvaluator()
	for i, tok := range []string{"1", "-2.5", "3e2", ".5", "+7", "1E-3", "inf"} {
		o := e.ProcessToken(tok)
		require.True(t, o.OK(), tok)
		assert.Equal(t, i+1, e.Len())
	}
	assert.Equal(t, []float64{1, -2.5, 300, 0.5, 7, 0.001, math.Inf(1)}, e.Stack())
	assert.NoError(t, e.LastError())
}

func TestProcessOverflowingLiterals(t *testing.T) {
	e := NewEvaluator()
	for _, tok := range []string{"1e400", "-1e400", "1e-400"} {
		o := e.ProcessToken(tok)
		require.NoError(t, o.Err, tok)
	}
	assert.Equal(t, []float64{math.Inf(1), math.Inf(-1), 0}, e.Stack())
	assert.NoError(t, e.LastError())
}

func TestProcessArithmetic(t *testing.T) {
	table := []struct {
		line  string
		stack []float64
	}{
		{"3 4 +", []float64{7}},
		{"10 2 /", []float64{5}},
		{"10 3 -", []float64{7}},
		{"6 7 *", []float64{42}},
		{"7 3 %", []float64{1}},
		{"-7 3 %", []float64{2}},
		{"7 -3 %", []float64{-2}},
		{"5.5 2 %", []float64{1.5}},
		{"3 pow", []float64{9}},
		{"16 sqrt", []float64{4}},
		{"1 ln", []float64{0}},
		{"-3.5 abs", []float64{3.5}},
		{"0 sin", []float64{0}},
		{"0 cos", []float64{1}},
		{"0 tg", []float64{0}},
		{"1 2 3 + *", []float64{5}},
		{"1 2 3", []float64{1, 2, 3}},
		{"  2\t3 \n - ", []float64{-1}},
	}

	for _, item := range table {
		e := newWith(t, item.line)
		assert.Equal(t, item.stack, e.Stack(), item.line)
	}
}

func TestProcessLogarithms(t *testing.T) {
	e := newWith(t, "1000 log")
	require.Equal(t, 1, e.Len())
	assert.InDelta(t, 3, e.Stack()[0], 1e-12)

	e = newWith(t, "2.718281828459045 ln")
	assert.InDelta(t, 1, e.Stack()[0], 1e-12)
}

func TestProcessOutcomes(t *testing.T) {
	e := NewEvaluator()
	outcomes := e.Process("2 x 3 +")
	require.Len(t, outcomes, 4)

	assert.Equal(t, Outcome{Token: "2", Value: 2}, outcomes[0])
	assert.Equal(t, KindInvalidInput, KindOf(outcomes[1].Err))
	assert.Equal(t, Outcome{Token: "3", Value: 3}, outcomes[2])
	assert.Equal(t, Outcome{Token: "+", Value: 5}, outcomes[3])

	assert.Equal(t, []float64{5}, e.Stack())
	assert.Equal(t, KindInvalidInput, KindOf(e.LastError()))

	assert.Empty(t, e.Process(""))
	assert.Empty(t, e.Process("   "))
}

func TestInsufficientOperands(t *testing.T) {
	for _, op := range Operators() {
		for depth := 0; depth < op.Arity; depth++ {
			e := NewEvaluator()
			for i := 0; i < depth; i++ {
				e.ProcessToken("4")
			}
			before := e.Stack()

			o := e.ProcessToken(op.Token)
			require.Error(t, o.Err, op.Token)
			assert.Equal(t, KindInsufficientOperands, KindOf(o.Err))

			needed, ok := IsInsufficientOperands(o.Err)
			assert.True(t, ok)
			assert.Equal(t, op.Arity, needed)
			assert.Equal(t, before, e.Stack(), op.Token)
			assert.Equal(t, o.Err, e.LastError())
		}
	}
}

func TestDomainErrorsRestoreStack(t *testing.T) {
	table := []struct {
		line string
		op   string
		kind ErrorKind
	}{
		{"6 0", "/", KindDivisionByZero},
		{"6 0", "%", KindDivisionByZero},
		{"6 -0", "/", KindDivisionByZero},
		{"1 -4", "sqrt", KindNegativeSqrt},
		{"0", "log", KindNonPositiveLog},
		{"-1", "log", KindNonPositiveLog},
		{"0", "ln", KindNonPositiveLog},
		{"9 -2", "ln", KindNonPositiveLog},
	}

	for _, item := range table {
		e := newWith(t, item.line)
		before := e.Stack()

		o := e.ProcessToken(item.op)
		require.Error(t, o.Err, item.op)
		assert.Equal(t, item.kind, KindOf(o.Err), item.op)
		assert.Equal(t, before, e.Stack(), item.op)
		assert.Equal(t, o.Err, e.LastError())
	}
}

func TestDivisionByZeroMessage(t *testing.T) {
	e := newWith(t, "6 0")
	o := e.ProcessToken("/")
	assert.EqualError(t, o.Err, "/: cannot divide by zero")
	assert.ErrorIs(t, o.Err, ErrDivisionByZero)
	assert.Equal(t, []float64{6, 0}, e.Stack())
}

func TestInvalidInput(t *testing.T) {
	e := newWith(t, "1")
	o := e.ProcessToken("x")
	assert.EqualError(t, o.Err, `invalid input "x"`)
	assert.Equal(t, []float64{1}, e.Stack())

	// Operators are case-sensitive.
	o = e.ProcessToken("SIN")
	assert.Equal(t, KindInvalidInput, KindOf(o.Err))
	assert.Equal(t, []float64{1}, e.Stack())
}

func TestLastErrorPersistsUntilCleared(t *testing.T) {
	e := NewEvaluator()
	e.ProcessToken("+")
	require.Error(t, e.LastError())

	e.ProcessToken("1")
	assert.Error(t, e.LastError())

	e.ClearError()
	assert.NoError(t, e.LastError())
	assert.Equal(t, KindNone, KindOf(e.LastError()))
}

func TestStackIsCopy(t *testing.T) {
	e := newWith(t, "1 2")
	s := e.Stack()
	s[0] = 100
	assert.Equal(t, []float64{1, 2}, e.Stack())
}
