package gcode

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize splits s into alternating value and code segments. Each
// maximal run of letters is a code; everything else, whitespace included,
// belongs to a value. A leading value is only present when non-empty,
// and the result always ends with a (possibly empty) value, so
// strings.Join(Tokenize(s), "") == s.
func Tokenize(s string) []string {
	var res []string
	last := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsLetter(r) {
			i += size
			continue
		}
		if last != i {
			res = append(res, s[last:i])
		}
		start := i
		for i < len(s) {
			r, size = utf8.DecodeRuneInString(s[i:])
			if !unicode.IsLetter(r) {
				break
			}
			i += size
		}
		res = append(res, s[start:i])
		last = i
	}
	return append(res, s[last:])
}

// Pair is one code token and the value text that follows it.
type Pair struct {
	Code  string
	Value string
}

func isCode(tok string) bool {
	r, _ := utf8.DecodeRuneInString(tok)
	return tok != "" && unicode.IsLetter(r)
}

// Pairs groups tokens from Tokenize into code/value pairs. A blank
// leading value (whitespace before the first code) is dropped.
func Pairs(tokens []string) ([]Pair, error) {
	toks := tokens
	if len(toks) > 0 && !isCode(toks[0]) && strings.TrimSpace(toks[0]) == "" {
		toks = toks[1:]
	}
	if len(toks) == 0 {
		return nil, nil
	}
	// tokens alternate, so an odd count means a value precedes the first code
	if len(toks)%2 != 0 {
		return nil, &TokenStreamError{Tokens: tokens, Reason: "odd token count"}
	}

	res := make([]Pair, len(toks)/2)
	for i := range res {
		res[i] = Pair{Code: toks[2*i], Value: toks[2*i+1]}
	}
	return res, nil
}
