// Package expr provides conversion between the three classic operator
// notations — infix, postfix, prefix — and stack-based evaluation of
// postfix expressions.
//
// What
//
//   - Six directional transforms, each a pure function over one string:
//   - InfixToPostfix, InfixToPrefix (shunting-yard with precedence)
//   - PostfixToInfix, PostfixToPrefix (stack reduction, left→right)
//   - PrefixToInfix, PrefixToPostfix (stack reduction, right→left)
//   - EvaluatePostfix computes an integer result from a postfix string of
//     single-digit operands and the operators + - * /.
//   - Tokens are single characters: alphanumerics are operands; the
//     operators are + - * / ^; parentheses group infix input.
//   - ^ is right-associative; all other operators are left-associative.
//
// Why
//
//   - Convert between notations in O(n) time with one explicit stack.
//   - Evaluate postfix in O(n) with a value stack, no recursion.
//   - Foundation for calculators, assemblers, and teaching material on
//     operator precedence and stack machines.
//
// Precedence
//
//	Infix scanning compares the in-stack precedence (isp) of the operator
//	on top of the stack against the incoming precedence (icp) of the
//	operator being read; isp ≥ icp pops. The standard table:
//
//	    op    isp  icp
//	    ^      3    4
//	    * /    2    2
//	    + -    1    1
//
//	InfixToPrefix scans the reversed input against a swapped table
//	(^: isp=4, icp=3) so that exponentiation stays right-associative
//	after the reversal. The asymmetry is intentional; do not "fix" it.
//
// Determinism & Concurrency
//
//	Every call owns its own stack and produces output only on success,
//	so the package is safe for concurrent use and a failed call never
//	yields partial results.
//
// Complexity (n = len(expression))
//
//   - Time:   O(n)  every character is pushed and popped at most once
//   - Memory: O(n)  for the operator/operand (or value) stack
//
// Usage
//
//	post, err := expr.InfixToPostfix("A+B*C")
//	if err != nil {
//	    // handle ErrMalformedExpression, ErrInputTooLong, ErrOptionViolation
//	}
//	fmt.Println(post) // ABC*+
//
//	val, err := expr.EvaluatePostfix("231*+9-")
//	if err != nil {
//	    // handle ErrMalformedExpression, ErrDivisionByZero,
//	    // ErrInvalidOperator, ErrInputTooLong
//	}
//	fmt.Println(val) // -4
//
// Options
//
//   - DefaultOptions(): max length 100, lenient operand handling.
//   - WithMaxLength(n):     bound input length (0 = explicit no limit).
//   - WithStrictOperands(): reject characters outside the supported
//     alphabet instead of passing them through as operands.
//
// Errors
//
//   - ErrMalformedExpression  unmatched brackets, missing operands, or
//     leftover stack entries after the scan.
//   - ErrInvalidPostfix       underflow or leftovers while reducing postfix.
//   - ErrInvalidPrefix        underflow or leftovers while reducing prefix.
//   - ErrDivisionByZero       evaluator only, divisor operand is zero.
//   - ErrInvalidOperator      evaluator met a non-digit, non-operator byte.
//   - ErrInputTooLong         input exceeds the configured maximum length.
//   - ErrOptionViolation      an invalid Option was supplied.
//
// Known limitation: evaluation uses native int arithmetic with truncating
// division and no overflow checks.
package expr
