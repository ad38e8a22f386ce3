package expr

// TokenKind classifies a single expression byte.
type TokenKind uint8

// Token kinds. Every byte of a valid expression maps to exactly one kind.
const (
	// KindOperand is an operand symbol (alphanumeric, or any unclassified
	// byte in lenient mode).
	KindOperand TokenKind = iota

	// KindOperator is one of + - * / ^.
	KindOperator

	// KindOpenParen is '('.
	KindOpenParen

	// KindCloseParen is ')'.
	KindCloseParen
)

// Classify reports the TokenKind of c. Bytes that are neither an operator
// nor a parenthesis are operands; strict callers filter the alphabet before
// classification.
func Classify(c byte) TokenKind {
	switch {
	case c == '(':
		return KindOpenParen
	case c == ')':
		return KindCloseParen
	case isOperator(c):
		return KindOperator
	default:
		return KindOperand
	}
}

// isOperator reports whether c is one of the five supported operators.
func isOperator(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '^':
		return true
	default:
		return false
	}
}

// isAlnum reports whether c is an ASCII letter or digit.
func isAlnum(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// supportedByte reports whether c belongs to the strict-mode alphabet.
func supportedByte(c byte) bool {
	return isAlnum(c) || isOperator(c) || c == '(' || c == ')'
}

// isp returns the in-stack precedence of an operator: the value it holds
// while sitting on the stack. Non-operators (including brackets) rank 0 so
// they never win a pop comparison.
func isp(c byte) int {
	switch c {
	case '^':
		return 3
	case '*', '/':
		return 2
	case '+', '-':
		return 1
	default:
		return 0
	}
}

// icp returns the incoming precedence of an operator: the value it carries
// while being scanned. With isp(^)=3 < icp(^)=4, an incoming ^ never pops
// an equal ^ off the stack, which keeps exponentiation right-associative.
func icp(c byte) int {
	switch c {
	case '^':
		return 4
	case '*', '/':
		return 2
	case '+', '-':
		return 1
	default:
		return 0
	}
}

// ispReversed is the in-stack precedence used when scanning a reversed
// infix string (InfixToPrefix). The ^ values are swapped relative to isp
// so right-associativity survives the reversal. The asymmetry with isp/icp
// is load-bearing.
func ispReversed(c byte) int {
	switch c {
	case '^':
		return 4
	case '*', '/':
		return 2
	case '+', '-':
		return 1
	default:
		return 0
	}
}

// icpReversed is the incoming precedence for the reversed-scan direction.
func icpReversed(c byte) int {
	switch c {
	case '^':
		return 3
	case '*', '/':
		return 2
	case '+', '-':
		return 1
	default:
		return 0
	}
}
