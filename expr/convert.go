// Package expr implements the six notation transforms.
//
// The infix directions run Dijkstra's shunting-yard with one operator
// stack; the postfix/prefix directions rebuild expressions bottom-up with
// one operand stack. Every call owns its stack and never emits partial
// output on error.
package expr

import (
	"fmt"
	"strings"
)

// InfixToPostfix converts an infix expression to postfix notation using the
// standard isp/icp table. Returns ErrMalformedExpression on unmatched
// parentheses, ErrInputTooLong or ErrOptionViolation on bad input/options.
func InfixToPostfix(infix string, opts ...Option) (string, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return "", err
	}
	if err = o.checkInput(infix); err != nil {
		return "", err
	}

	return shunt(infix, '(', ')', isp, icp)
}

// InfixToPrefix converts an infix expression to prefix notation.
// The input is reversed, shunted with swapped bracket roles and the
// reversed precedence table, and the result reversed back.
func InfixToPrefix(infix string, opts ...Option) (string, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return "", err
	}
	if err = o.checkInput(infix); err != nil {
		return "", err
	}

	out, err := shunt(reverseString(infix), ')', '(', ispReversed, icpReversed)
	if err != nil {
		return "", err
	}

	return reverseString(out), nil
}

// PostfixToInfix rebuilds a fully parenthesized infix expression from
// postfix input. Returns ErrInvalidPostfix on underflow or leftovers.
func PostfixToInfix(postfix string, opts ...Option) (string, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return "", err
	}
	if err = o.checkInput(postfix); err != nil {
		return "", err
	}

	return reduceNotation(postfix, scanForward, composeInfix, ErrInvalidPostfix)
}

// PostfixToPrefix converts postfix input to prefix notation.
func PostfixToPrefix(postfix string, opts ...Option) (string, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return "", err
	}
	if err = o.checkInput(postfix); err != nil {
		return "", err
	}

	return reduceNotation(postfix, scanForward, composePrefix, ErrInvalidPostfix)
}

// PrefixToInfix rebuilds a fully parenthesized infix expression from prefix
// input by scanning right to left. Returns ErrInvalidPrefix on underflow or
// leftovers.
func PrefixToInfix(prefix string, opts ...Option) (string, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return "", err
	}
	if err = o.checkInput(prefix); err != nil {
		return "", err
	}

	return reduceNotation(prefix, scanBackward, composeInfix, ErrInvalidPrefix)
}

// PrefixToPostfix converts prefix input to postfix notation.
func PrefixToPostfix(prefix string, opts ...Option) (string, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return "", err
	}
	if err = o.checkInput(prefix); err != nil {
		return "", err
	}

	return reduceNotation(prefix, scanBackward, composePostfix, ErrInvalidPrefix)
}

// shunt runs one shunting-yard pass over in. open/close name the bracket
// bytes for this direction; inStack/incoming are the precedence functions.
// Operands stream straight to the output; operators pop while the top of
// stack holds inStack ≥ incoming; close brackets pop to the matching open
// bracket, which is discarded.
func shunt(in string, open, close byte, inStack, incoming func(byte) int) (string, error) {
	var out strings.Builder
	out.Grow(len(in))
	stack := make([]byte, 0, len(in))

	for i := 0; i < len(in); i++ {
		c := in[i]
		switch {
		case c == open:
			stack = append(stack, c)

		case c == close:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top == open {
					matched = true
					break
				}
				out.WriteByte(top)
			}
			if !matched {
				return "", fmt.Errorf("%w: unmatched %q at index %d", ErrMalformedExpression, close, i)
			}

		case isOperator(c):
			for len(stack) > 0 && inStack(stack[len(stack)-1]) >= incoming(c) {
				out.WriteByte(stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, c)

		default:
			// operand
			out.WriteByte(c)
		}
	}

	// drain the stack; a surviving open bracket means it never closed
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top == open {
			return "", fmt.Errorf("%w: unmatched %q", ErrMalformedExpression, open)
		}
		out.WriteByte(top)
	}

	return out.String(), nil
}

// scan directions for reduceNotation.
const (
	scanForward  = false // left→right, first pop is the right operand
	scanBackward = true  // right→left, first pop is the left operand
)

// composeFunc builds one reduced subexpression from an operator and its
// left/right operands.
type composeFunc func(op byte, left, right string) string

func composeInfix(op byte, left, right string) string {
	var b strings.Builder
	b.Grow(len(left) + len(right) + 3)
	b.WriteByte('(')
	b.WriteString(left)
	b.WriteByte(op)
	b.WriteString(right)
	b.WriteByte(')')

	return b.String()
}

func composePrefix(op byte, left, right string) string {
	return string(op) + left + right
}

func composePostfix(op byte, left, right string) string {
	return left + right + string(op)
}

// reduceNotation is the shared core of the four postfix/prefix transforms:
// operands push, each operator pops two operands and pushes one composed
// subexpression, and exactly one entry must survive the scan.
func reduceNotation(in string, backward bool, build composeFunc, errKind error) (string, error) {
	stack := make([]string, 0, len(in))

	for k := 0; k < len(in); k++ {
		i := k
		if backward {
			i = len(in) - 1 - k
		}
		c := in[i]

		if !isOperator(c) {
			stack = append(stack, string(c))
			continue
		}
		if len(stack) < 2 {
			return "", fmt.Errorf("%w: operator %q at index %d lacks operands", errKind, c, i)
		}

		var left, right string
		if backward {
			// prefix order: the operand popped first is the left one
			left = stack[len(stack)-1]
			right = stack[len(stack)-2]
		} else {
			// postfix order: the operand popped first is the right one
			right = stack[len(stack)-1]
			left = stack[len(stack)-2]
		}
		stack = stack[:len(stack)-2]
		stack = append(stack, build(c, left, right))
	}

	if len(stack) != 1 {
		return "", fmt.Errorf("%w: %d entries left after reduction", errKind, len(stack))
	}

	return stack[0], nil
}

// reverseString returns s with its bytes in reverse order.
func reverseString(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return string(b)
}
