// Package arith tokenizes, parses and evaluates integer arithmetic over
// + - * / with parentheses, identifiers and unary minus.
package arith

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrUndefined      = errors.New("undefined variable")
)

// Env binds identifiers to values.
type Env map[string]int64

// Node is an expression tree node.
type Node interface {
	String() string
	Eval(env Env) (int64, error)
}

type Number struct {
	Value int64
}

func (n *Number) String() string { return strconv.FormatInt(n.Value, 10) }

func (n *Number) Eval(Env) (int64, error) { return n.Value, nil }

type Variable struct {
	Name string
}

func (v *Variable) String() string { return v.Name }

func (v *Variable) Eval(env Env) (int64, error) {
	val, ok := env[v.Name]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUndefined, v.Name)
	}
	return val, nil
}

// Negate is unary minus.
type Negate struct {
	Operand Node
}

func (n *Negate) String() string { return "(-" + n.Operand.String() + ")" }

func (n *Negate) Eval(env Env) (int64, error) {
	v, err := n.Operand.Eval(env)
	if err != nil {
		return 0, err
	}
	return -v, nil
}

// Binary applies Op, one of '+', '-', '*' or '/', to its operands. Division
// truncates toward zero.
type Binary struct {
	Op          byte
	Left, Right Node
}

func (b *Binary) String() string {
	return fmt.Sprintf("(%s %c %s)", b.Left, b.Op, b.Right)
}

func (b *Binary) Eval(env Env) (int64, error) {
	l, err := b.Left.Eval(env)
	if err != nil {
		return 0, err
	}
	r, err := b.Right.Eval(env)
	if err != nil {
		return 0, err
	}
	switch b.Op {
	case '+':
		return l + r, nil
	case '-':
		return l - r, nil
	case '*':
		return l * r, nil
	case '/':
		if r == 0 {
			return 0, fmt.Errorf("%s: %w", b, ErrDivisionByZero)
		}
		return l / r, nil
	}
	return 0, fmt.Errorf("unknown operator %q", b.Op)
}
