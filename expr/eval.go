package expr

import "fmt"

// isEvalOperator reports whether c is an operator the evaluator computes.
// Exponentiation is a conversion-only operator and is rejected here.
func isEvalOperator(c byte) bool {
	switch c {
	case '+', '-', '*', '/':
		return true
	default:
		return false
	}
}

// EvaluatePostfix computes the integer value of a postfix expression built
// from single-digit operands 0–9 and the operators + - * /.
//
// Digits push their value; each operator pops the right operand, then the
// left, and pushes left <op> right. Division truncates toward zero.
// Arithmetic is native int with no overflow checking.
//
// Returns ErrDivisionByZero when a divisor is zero, ErrInvalidOperator for
// any byte that is neither digit nor operator, and ErrMalformedExpression
// on stack underflow or leftover values.
func EvaluatePostfix(postfix string, opts ...Option) (int, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	if err = o.checkInput(postfix); err != nil {
		return 0, err
	}

	stack := make([]int, 0, len(postfix))

	for i := 0; i < len(postfix); i++ {
		c := postfix[i]
		switch {
		case c >= '0' && c <= '9':
			stack = append(stack, int(c-'0'))

		case isEvalOperator(c):
			if len(stack) < 2 {
				return 0, fmt.Errorf("%w: operator %q at index %d lacks operands", ErrMalformedExpression, c, i)
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			var result int
			switch c {
			case '+':
				result = left + right
			case '-':
				result = left - right
			case '*':
				result = left * right
			case '/':
				if right == 0 {
					return 0, fmt.Errorf("%w: %d / 0 at index %d", ErrDivisionByZero, left, i)
				}
				result = left / right
			}
			stack = append(stack, result)

		default:
			return 0, fmt.Errorf("%w: byte %q at index %d", ErrInvalidOperator, c, i)
		}
	}

	if len(stack) != 1 {
		return 0, fmt.Errorf("%w: %d values left on stack", ErrMalformedExpression, len(stack))
	}

	return stack[0], nil
}
