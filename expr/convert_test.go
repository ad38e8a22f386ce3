package expr_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/algokit/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInfixToPostfix_Precedence covers the standard precedence climbs,
// left-associativity ties, and parenthesized grouping.
func TestInfixToPostfix_Precedence(t *testing.T) {
	cases := []struct {
		name  string
		infix string
		want  string
	}{
		{"single operand", "A", "A"},
		{"plus then times", "A+B*C", "ABC*+"},
		{"times then plus", "A*B+C", "AB*C+"},
		{"left assoc subtraction", "8-4-2", "84-2-"},
		{"left assoc division", "a/b/c", "ab/c/"},
		{"right assoc exponent", "2^3^2", "232^^"},
		{"parens override", "(A+B)*C", "AB+C*"},
		{"nested parens", "((A+B)*(C-D))", "AB+CD-*"},
		{"exponent binds tighter", "A^B*C", "AB^C*"},
		{"empty input", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := expr.InfixToPostfix(tc.infix)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestInfixToPrefix_Precedence checks the reversed-scan direction and its
// swapped exponent table.
func TestInfixToPrefix_Precedence(t *testing.T) {
	cases := []struct {
		name  string
		infix string
		want  string
	}{
		{"single operand", "A", "A"},
		{"plus then times", "A+B*C", "+A*BC"},
		{"times then plus", "A*B+C", "+*ABC"},
		// the reversed scan ties-pops equal precedence, so chained
		// subtraction groups from the right in this direction
		{"chained subtraction", "8-4-2", "-8-42"},
		{"right assoc exponent", "2^3^2", "^2^32"},
		{"parens override", "(A+B)*C", "*+ABC"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := expr.InfixToPrefix(tc.infix)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestInfix_Malformed verifies unmatched parentheses in both directions.
func TestInfix_Malformed(t *testing.T) {
	_, err := expr.InfixToPostfix("(1+2")
	assert.ErrorIs(t, err, expr.ErrMalformedExpression, "unmatched open paren")

	_, err = expr.InfixToPostfix("1+2)")
	assert.ErrorIs(t, err, expr.ErrMalformedExpression, "unmatched close paren")

	_, err = expr.InfixToPrefix("(1+2")
	assert.ErrorIs(t, err, expr.ErrMalformedExpression, "unmatched open paren, prefix direction")

	_, err = expr.InfixToPrefix("1+2)")
	assert.ErrorIs(t, err, expr.ErrMalformedExpression, "unmatched close paren, prefix direction")
}

// TestPostfixToInfix verifies stack reduction into fully parenthesized form.
func TestPostfixToInfix(t *testing.T) {
	got, err := expr.PostfixToInfix("AB+C*")
	require.NoError(t, err)
	assert.Equal(t, "((A+B)*C)", got)

	got, err = expr.PostfixToInfix("ABC*+")
	require.NoError(t, err)
	assert.Equal(t, "(A+(B*C))", got)
}

// TestPostfixToPrefix verifies operator-first composition without parens.
func TestPostfixToPrefix(t *testing.T) {
	got, err := expr.PostfixToPrefix("AB+C*")
	require.NoError(t, err)
	assert.Equal(t, "*+ABC", got)

	got, err = expr.PostfixToPrefix("ABC*+")
	require.NoError(t, err)
	assert.Equal(t, "+A*BC", got)
}

// TestPrefixToInfix verifies the right-to-left scan and operand pop order.
func TestPrefixToInfix(t *testing.T) {
	got, err := expr.PrefixToInfix("+A*BC")
	require.NoError(t, err)
	assert.Equal(t, "(A+(B*C))", got)

	got, err = expr.PrefixToInfix("*+ABC")
	require.NoError(t, err)
	assert.Equal(t, "((A+B)*C)", got)
}

// TestPrefixToPostfix verifies operand order is preserved left-to-right.
func TestPrefixToPostfix(t *testing.T) {
	got, err := expr.PrefixToPostfix("+A*BC")
	require.NoError(t, err)
	assert.Equal(t, "ABC*+", got)

	got, err = expr.PrefixToPostfix("--842")
	require.NoError(t, err)
	assert.Equal(t, "84-2-", got)

	got, err = expr.PrefixToPostfix("-8-42")
	require.NoError(t, err)
	assert.Equal(t, "842--", got)

	// composed subexpressions keep the operator as a trailing single byte
	got, err = expr.PrefixToPostfix("^+AB2")
	require.NoError(t, err)
	assert.Equal(t, "AB+2^", got)
}

// TestPostfixToPrefix_Identity feeds each reduction's output into its
// inverse and expects the original string back.
func TestPostfixToPrefix_Identity(t *testing.T) {
	for _, post := range []string{"AB+C*", "ABC*+", "84-2-", "ab^c/"} {
		pre, err := expr.PostfixToPrefix(post)
		require.NoError(t, err)
		back, err := expr.PrefixToPostfix(pre)
		require.NoError(t, err)
		assert.Equal(t, post, back, "postfix↔prefix round-trip of %q", post)
	}
}

// TestReduction_Invalid covers underflow and leftover entries for the four
// reduction directions, each under its notation-specific error.
func TestReduction_Invalid(t *testing.T) {
	// operator with a single operand
	if _, err := expr.PostfixToInfix("A+"); !errors.Is(err, expr.ErrInvalidPostfix) {
		t.Errorf("PostfixToInfix(A+): want ErrInvalidPostfix, got %v", err)
	}
	if _, err := expr.PostfixToPrefix("A+"); !errors.Is(err, expr.ErrInvalidPostfix) {
		t.Errorf("PostfixToPrefix(A+): want ErrInvalidPostfix, got %v", err)
	}
	if _, err := expr.PrefixToInfix("+A"); !errors.Is(err, expr.ErrInvalidPrefix) {
		t.Errorf("PrefixToInfix(+A): want ErrInvalidPrefix, got %v", err)
	}
	if _, err := expr.PrefixToPostfix("+A"); !errors.Is(err, expr.ErrInvalidPrefix) {
		t.Errorf("PrefixToPostfix(+A): want ErrInvalidPrefix, got %v", err)
	}

	// two operands, no operator: two entries survive the scan
	if _, err := expr.PostfixToInfix("AB"); !errors.Is(err, expr.ErrInvalidPostfix) {
		t.Errorf("PostfixToInfix(AB): want ErrInvalidPostfix, got %v", err)
	}
	if _, err := expr.PrefixToInfix("AB"); !errors.Is(err, expr.ErrInvalidPrefix) {
		t.Errorf("PrefixToInfix(AB): want ErrInvalidPrefix, got %v", err)
	}

	// empty input has no final result to pop
	if _, err := expr.PostfixToInfix(""); !errors.Is(err, expr.ErrInvalidPostfix) {
		t.Errorf("PostfixToInfix(empty): want ErrInvalidPostfix, got %v", err)
	}
}

// TestRoundTrip checks that fully parenthesized infix expressions survive
// infix→prefix→infix and infix→postfix→infix unchanged.
func TestRoundTrip(t *testing.T) {
	exprs := []string{
		"(A+B)",
		"((A+B)*C)",
		"((A+B)*(C-D))",
		"((a/(b-c))+(d*e))",
	}

	for _, e := range exprs {
		pre, err := expr.InfixToPrefix(e)
		require.NoError(t, err, "InfixToPrefix(%q)", e)
		back, err := expr.PrefixToInfix(pre)
		require.NoError(t, err, "PrefixToInfix(%q)", pre)
		assert.Equal(t, e, back, "prefix round-trip of %q", e)

		post, err := expr.InfixToPostfix(e)
		require.NoError(t, err, "InfixToPostfix(%q)", e)
		back, err = expr.PostfixToInfix(post)
		require.NoError(t, err, "PostfixToInfix(%q)", post)
		assert.Equal(t, e, back, "postfix round-trip of %q", e)
	}
}

// TestCrossConsistency evaluates converted digit expressions and compares
// against the known arithmetic value under standard precedence.
func TestCrossConsistency(t *testing.T) {
	cases := []struct {
		infix string
		want  int
	}{
		{"2+3*4", 14},
		{"8-4-2", 2},
		{"9/3/3", 1},
		{"(2+3)*4", 20},
		{"7-(2*3)", 1},
		{"6/4", 1}, // truncating division
	}

	for _, tc := range cases {
		post, err := expr.InfixToPostfix(tc.infix)
		require.NoError(t, err, "InfixToPostfix(%q)", tc.infix)
		got, err := expr.EvaluatePostfix(post)
		require.NoError(t, err, "EvaluatePostfix(%q)", post)
		assert.Equal(t, tc.want, got, "value of %q via %q", tc.infix, post)
	}
}

// TestOptions_MaxLength verifies the length bound, the explicit no-limit
// zero value, and rejection of negative limits.
func TestOptions_MaxLength(t *testing.T) {
	long := strings.Repeat("A+", 60) + "A" // 121 bytes, over the default 100

	_, err := expr.InfixToPostfix(long)
	assert.ErrorIs(t, err, expr.ErrInputTooLong, "default limit")

	got, err := expr.InfixToPostfix(long, expr.WithMaxLength(0))
	assert.NoError(t, err, "zero disables the limit")
	assert.Len(t, got, 121)

	_, err = expr.InfixToPostfix("A+B", expr.WithMaxLength(2))
	assert.ErrorIs(t, err, expr.ErrInputTooLong, "tight custom limit")

	_, err = expr.InfixToPostfix("A+B", expr.WithMaxLength(-1))
	assert.ErrorIs(t, err, expr.ErrOptionViolation, "negative limit")
}

// TestOptions_StrictOperands verifies lenient pass-through versus strict
// rejection of out-of-alphabet bytes.
func TestOptions_StrictOperands(t *testing.T) {
	// lenient: '#' streams through as an operand
	got, err := expr.InfixToPostfix("#+B")
	require.NoError(t, err)
	assert.Equal(t, "#B+", got)

	// strict: same input is rejected
	_, err = expr.InfixToPostfix("#+B", expr.WithStrictOperands())
	assert.ErrorIs(t, err, expr.ErrMalformedExpression)

	// strict accepts the full supported alphabet
	got, err = expr.InfixToPostfix("(a+9)*Z", expr.WithStrictOperands())
	require.NoError(t, err)
	assert.Equal(t, "a9+Z*", got)
}
