package sequence

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/cwbudde/algo-dft/dsp/core"
)

// ParseError reports the token that could not be parsed.
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("sequence: invalid token %q: %s", e.Token, e.Reason)
}

// Unwrap makes errors.Is(err, core.ErrParse) hold.
func (e *ParseError) Unwrap() error {
	return core.ErrParse
}

// Parse turns text into a sequence. Parsing is all-or-nothing: the first
// malformed token aborts with a *ParseError and no samples.
func Parse(text string) (Sequence, error) {
	tokens := splitTopLevel(stripSpace(text))
	out := make(Sequence, 0, len(tokens))
	for _, tok := range tokens {
		c, err := parseToken(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// MustParse is like Parse but panics on error. Intended for literals.
func MustParse(text string) Sequence {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}

func stripSpace(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
}

// splitTopLevel splits on commas that are not nested inside parentheses.
// Empty tokens are skipped.
func splitTopLevel(s string) []string {
	var (
		tokens []string
		depth  int
		start  int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				if i > start {
					tokens = append(tokens, s[start:i])
				}
				start = i + 1
			}
		}
	}
	if start < len(s) {
		tokens = append(tokens, s[start:])
	}
	return tokens
}

func parseToken(tok string) (complex128, error) {
	if strings.HasPrefix(tok, "(") && strings.HasSuffix(tok, ")") && len(tok) >= 2 {
		parts := strings.Split(tok[1:len(tok)-1], ",")
		if len(parts) != 2 {
			return 0, &ParseError{Token: tok, Reason: "complex pair must have the form (a,b)"}
		}
		re, err := parseNumber(parts[0])
		if err != nil {
			return 0, &ParseError{Token: tok, Reason: "real part: " + err.Error()}
		}
		im, err := parseNumber(parts[1])
		if err != nil {
			return 0, &ParseError{Token: tok, Reason: "imaginary part: " + err.Error()}
		}
		return complex(re, im), nil
	}

	re, err := parseNumber(tok)
	if err != nil {
		return 0, &ParseError{Token: tok, Reason: err.Error()}
	}
	return complex(re, 0), nil
}

func parseNumber(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("missing number")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not finite", s)
	}
	return v, nil
}
