// ==============================================================================================
// FILE: symtab/symtab.go
// ==============================================================================================
// PACKAGE: symtab
// PURPOSE: Assigns dense integer symbol ids to identifier spellings and to anonymous
//          function-literal occurrences. Using small integers as frame indices makes
//          variable lookup O(1) and sidesteps per-lookup string hashing.
// ==============================================================================================

package symtab

// ID identifies a single identifier spelling (or an anonymous function literal)
// for the lifetime of one interpreter run. Symbol 0 is never assigned; it is
// reserved so a zero-valued ID reads as "no symbol".
type ID int

// Table is a monotonically increasing interner: the same spelling always
// maps to the same ID within one Table, and every anonymous request mints a
// fresh ID that no spelling will ever collide with.
type Table struct {
	names []string      // names[id-1] is the spelling for id, empty for anonymous ids
	ids   map[string]ID // spelling -> id, for named identifiers only
}

// New returns an empty symbol table.
func New() *Table {
	return &Table{ids: make(map[string]ID)}
}

// Intern returns the stable ID for name, minting one if this spelling has not
// been seen before in this table.
func (t *Table) Intern(name string) ID {
	if id, ok := t.ids[name]; ok {
		return id
	}
	id := ID(len(t.names) + 1)
	t.names = append(t.names, name)
	t.ids[name] = id
	return id
}

// Anonymous mints a fresh ID that is not associated with any spelling, used
// for function literals that appear outside a let-binding.
func (t *Table) Anonymous() ID {
	id := ID(len(t.names) + 1)
	t.names = append(t.names, "")
	return id
}

// Name returns the spelling id was interned with, or "" for an anonymous id
// or one this table never minted.
func (t *Table) Name(id ID) string {
	i := int(id) - 1
	if i < 0 || i >= len(t.names) {
		return ""
	}
	return t.names[i]
}

// Len reports how many ids this table has minted so far. Callers use this to
// size frame slot arrays.
func (t *Table) Len() int {
	return len(t.names)
}
