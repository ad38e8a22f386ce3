// Command exprcalc converts expressions between infix, postfix, and prefix
// notation, or evaluates postfix input, one expression per line.
//
// Usage:
//
//	exprcalc -from infix -to postfix
//	echo "A+B*C" | exprcalc -from infix -to prefix
//	echo "231*+9-" | exprcalc -from postfix -to value
//
// Reads stdin line by line, writes one result per line to stdout, and
// reports failures on stderr. Exits 1 if any line failed.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/algokit/expr"
)

// convert dispatches one expression through the engine.
func convert(from, to, line string, opts []expr.Option) (string, error) {
	switch from + "->" + to {
	case "infix->postfix":
		return expr.InfixToPostfix(line, opts...)
	case "infix->prefix":
		return expr.InfixToPrefix(line, opts...)
	case "postfix->infix":
		return expr.PostfixToInfix(line, opts...)
	case "postfix->prefix":
		return expr.PostfixToPrefix(line, opts...)
	case "prefix->infix":
		return expr.PrefixToInfix(line, opts...)
	case "prefix->postfix":
		return expr.PrefixToPostfix(line, opts...)
	case "postfix->value":
		v, err := expr.EvaluatePostfix(line, opts...)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(v), nil
	default:
		return "", fmt.Errorf("unsupported conversion %s -> %s", from, to)
	}
}

func main() {
	from := flag.String("from", "infix", "input notation: infix, postfix, prefix")
	to := flag.String("to", "postfix", "output notation: infix, postfix, prefix, or value (evaluate postfix)")
	maxLen := flag.Int("maxlen", expr.DefaultMaxLength, "maximum expression length, 0 for no limit")
	strict := flag.Bool("strict", false, "reject characters outside the supported alphabet")
	flag.Parse()

	opts := []expr.Option{expr.WithMaxLength(*maxLen)}
	if *strict {
		opts = append(opts, expr.WithStrictOperands())
	}

	interactive := isatty.IsTerminal(os.Stdin.Fd())
	scanner := bufio.NewScanner(os.Stdin)
	failed := false

	for {
		if interactive {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		out, err := convert(*from, *to, line, opts)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			failed = true
			continue
		}
		fmt.Println(out)
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "read error:", err)
		failed = true
	}
	if failed {
		os.Exit(1)
	}
}
