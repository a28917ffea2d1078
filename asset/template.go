package asset

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/pkg/errors"
)

// Render substitutes {{ expression }} tokens in an asset definition
// using the supplied variables. Rendering is strict, unlike the logging
// facade's best-effort placeholder substitution: an undefined variable,
// an invalid expression, or an unterminated token fails with an error
// naming the token.
func Render(tmpl string, vars map[string]any) (string, error) {
	var b strings.Builder

	b.Grow(len(tmpl))

	for {
		start := strings.Index(tmpl, "{{")
		if start < 0 {
			b.WriteString(tmpl)

			return b.String(), nil
		}

		end := strings.Index(tmpl[start+2:], "}}")
		if end < 0 {
			return "", errors.Errorf("unterminated template token %q", snippet(tmpl[start:]))
		}

		b.WriteString(tmpl[:start])

		token := strings.TrimSpace(tmpl[start+2 : start+2+end])

		value, err := eval(token, vars)
		if err != nil {
			return "", err
		}

		fmt.Fprint(&b, value)

		tmpl = tmpl[start+2+end+2:]
	}
}

// eval compiles and runs one token against the variables. Compiling
// against the concrete variable map rejects undefined names, the
// equivalent of a strict-undefined template environment.
func eval(code string, vars map[string]any) (any, error) {
	if code == "" {
		return nil, errors.New("empty template token")
	}

	program, err := expr.Compile(code, expr.Env(vars))
	if err != nil {
		return nil, errors.Wrapf(err, "missing variable in template token %q", code)
	}

	out, err := expr.Run(program, vars)
	if err != nil {
		return nil, errors.Wrapf(err, "evaluating template token %q", code)
	}

	return out, nil
}

func snippet(s string) string {
	const max = 24

	if len(s) > max {
		return s[:max] + "..."
	}

	return s
}
