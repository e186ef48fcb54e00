// Package token implements the assembler's line tokeniser (spec §4.3): it
// splits one already-trimmed source line into an ordered sequence of token
// strings on a small fixed delimiter set.
package token

import "strings"

// delimiters separate tokens. The period is included so that `.int N`
// yields ["int", "N"], and so that `b.eq label` yields ["b", "eq", "label"]
// — the tokeniser has no notion of mnemonics or condition codes, it only
// splits on delimiters (spec §6).
const delimiters = " \t,."

// Tokenize splits line into tokens, dropping empty tokens produced by
// adjacent or trailing delimiters. The caller is expected to have already
// stripped the trailing newline and leading whitespace (spec §4.3).
func Tokenize(line string) []string {
	tokens := make([]string, 0, 4)
	start := -1
	for i, r := range line {
		if strings.ContainsRune(delimiters, r) {
			if start >= 0 {
				tokens = append(tokens, line[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, line[start:])
	}
	return tokens
}
