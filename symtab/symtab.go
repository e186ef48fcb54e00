// Package symtab implements the assembler's label-to-address symbol table
// (spec §3, §4.2): an insertion-ordered mapping from label name to 32-bit
// instruction address, built during assembler pass 1 and consulted during
// pass 2.
package symtab

import "fmt"

// entry pairs a label with its resolved address, preserving the order in
// which labels were first inserted. Order is not observable by consumers
// (spec §4.2) — it only exists so iteration is deterministic for tests and
// dumps.
type entry struct {
	name  string
	value uint32
}

// Table is a growable, insertion-ordered label table. The zero value is
// ready to use.
type Table struct {
	entries []entry
	index   map[string]int // name -> index into entries, for O(1) lookup
}

// New creates an empty symbol table.
func New() *Table {
	return &Table{index: make(map[string]int)}
}

// Insert records name -> value. Re-inserting an existing name overwrites
// its value in place (last-wins, per spec §3's note that duplicate
// insertion is undefined source behaviour).
func (t *Table) Insert(name string, value uint32) {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	if i, ok := t.index[name]; ok {
		t.entries[i].value = value
		return
	}
	t.index[name] = len(t.entries)
	t.entries = append(t.entries, entry{name: name, value: value})
}

// Lookup returns the address bound to name and whether it was found,
// rather than panicking on a missing label, so callers can turn an
// undefined label into an ordinary parse error (spec §4.2).
func (t *Table) Lookup(name string) (uint32, bool) {
	i, ok := t.index[name]
	if !ok {
		return 0, false
	}
	return t.entries[i].value, true
}

// MustLookup is a convenience wrapper for call sites that have already
// established (e.g. during pass 1) that the label must exist.
func (t *Table) MustLookup(name string) (uint32, error) {
	v, ok := t.Lookup(name)
	if !ok {
		return 0, fmt.Errorf("undefined label: %s", name)
	}
	return v, nil
}

// Len returns the number of distinct labels recorded.
func (t *Table) Len() int {
	return len(t.entries)
}

// Names returns labels in insertion order. Intended for diagnostics and
// symbol dumps, not for semantic use by the assembler.
func (t *Table) Names() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.name
	}
	return names
}
