package isa

import "strings"

// Cond is a 4-bit A64 condition code as used by b.<cond> and conditional
// branch encoding/decoding. Only the subset spec'd for the conditional
// branch class is named; others decode but are rejected by the parser.
type Cond uint8

const (
	CondEQ Cond = 0
	CondNE Cond = 1
	CondGE Cond = 10
	CondLT Cond = 11
	CondGT Cond = 12
	CondLE Cond = 13
	CondAL Cond = 14
)

var condNames = map[string]Cond{
	"eq": CondEQ,
	"ne": CondNE,
	"ge": CondGE,
	"lt": CondLT,
	"gt": CondGT,
	"le": CondLE,
	"al": CondAL,
}

// CondFromName resolves a lowercase condition mnemonic suffix (e.g. "eq" out
// of "b.eq") to its 4-bit encoding.
func CondFromName(name string) (Cond, bool) {
	c, ok := condNames[strings.ToLower(name)]
	return c, ok
}

func (c Cond) String() string {
	for name, v := range condNames {
		if v == c {
			return name
		}
	}
	return "invalid"
}
