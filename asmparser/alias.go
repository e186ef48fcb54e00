package asmparser

import "fmt"

// aliasEntry names a mnemonic alias, the mnemonic it expands to, and the
// token index at which the zero register (wzr/xzr) is inserted (spec §4.5
// "Alias rewriting").
type aliasEntry struct {
	alias       string
	replacement string
	zrIndex     int
}

var aliasTable = []aliasEntry{
	{"cmp", "subs", 1},
	{"cmn", "adds", 1},
	{"neg", "sub", 2},
	{"negs", "subs", 2},
	{"tst", "ands", 1},
	{"mvn", "orn", 2},
	{"mov", "orr", 2},
	{"mul", "madd", 4},
	{"mneg", "msub", 4},
}

// Rewrite expands a mnemonic alias, if tokens[0] names one, into its
// replacement mnemonic plus an inserted zero-register token. It returns
// tokens unchanged if the mnemonic is not an alias. Modelled as a pure
// function over a fresh token slice rather than an in-place mutation.
func Rewrite(tokens []string) ([]string, error) {
	if len(tokens) == 0 {
		return tokens, nil
	}

	for _, a := range aliasTable {
		if tokens[0] != a.alias {
			continue
		}

		if len(tokens) < 2 {
			return nil, fmt.Errorf("asmparser: %q requires at least a register operand", tokens[0])
		}
		reg, err := parseRegister(tokens[1])
		if err != nil {
			return nil, fmt.Errorf("asmparser: %q: %w", tokens[0], err)
		}

		zr := "wzr"
		if reg.sf == 1 {
			zr = "xzr"
		}

		out := make([]string, 0, len(tokens)+1)
		out = append(out, a.replacement)
		out = append(out, tokens[1:]...)

		idx := a.zrIndex
		if idx > len(out) {
			idx = len(out)
		}
		out = append(out, "")
		copy(out[idx+1:], out[idx:])
		out[idx] = zr

		return out, nil
	}

	return tokens, nil
}
