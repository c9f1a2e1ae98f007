// ==============================================================================================
// FILE: interp/memo.go
// ==============================================================================================
// PACKAGE: interp
// PURPOSE: Per-function memoization cache (spec.md §4.5), grounded directly on
//          original_source/src/rinha.c's rinha_call_memo_cache_get_/_set_ and its hash
//          composition h = ((h0*31+h1) % N)*31+h2) % N. The original's general hash
//          formula also folds in djb2(string) for string arguments, but the cache's scope
//          is restricted to calls where every argument is an integer (spec.md §4.5), so
//          that branch of the original is never reached and is not reproduced here.
// ==============================================================================================

package interp

import "rinha/value"

type memoEntry struct {
	occupied bool
	nargs    int
	args     [MaxMemoArgs]int64
	result   value.Value
}

// Memo is one function's fixed-size, open-addressing-free (first-writer-wins
// on collision) cache.
type Memo struct {
	entries [MemoCacheSize]memoEntry
}

func newMemo() *Memo { return &Memo{} }

// hashArgs folds up to MaxMemoArgs integers into a bucket index, mirroring
// the original's `((h0*31+h1) % N)*31+h2) % N` composition generalized to
// any count from 1 to 3.
func hashArgs(args []int64) int {
	const n = int64(MemoCacheSize)
	h := int64(0)
	for _, a := range args {
		h = ((h*31 + a) % n)
		if h < 0 {
			h += n
		}
	}
	return int(h)
}

// Lookup reports the cached result for args, verifying an exact match
// against the stored argument values (not just the hash) to avoid false
// positives from a bucket collision (spec.md §4.5).
func (m *Memo) Lookup(args []int64) (value.Value, bool) {
	e := &m.entries[hashArgs(args)]
	if !e.occupied || e.nargs != len(args) {
		return value.Value{}, false
	}
	for i, a := range args {
		if e.args[i] != a {
			return value.Value{}, false
		}
	}
	return e.result, true
}

// Store records result for args. On a bucket collision the existing entry
// is kept (first writer wins, spec.md §4.5).
func (m *Memo) Store(args []int64, result value.Value) {
	e := &m.entries[hashArgs(args)]
	if e.occupied {
		return
	}
	e.occupied = true
	e.nargs = len(args)
	copy(e.args[:], args)
	e.result = result
}
