// ==============================================================================================
// FILE: interp/function.go
// ==============================================================================================
// PACKAGE: interp
// PURPOSE: Function records and the table that owns them (spec.md §3, §4.4). A record is
//          created the first time the evaluator encounters its defining fn literal and
//          lives for the rest of the run. It owns a snapshot of the defining frame (the
//          closure's captured environment) and the purity bookkeeping the memo cache in
//          memo.go consults.
// ==============================================================================================

package interp

import (
	"rinha/ast"
	"rinha/value"
)

// snapshot is a frozen copy of a Frame's populated slots, taken at
// closure-creation time (spec.md §4.4: "Captures the environment: snapshots
// the current frame's populated slots into the function record. Captured
// values are copied by value").
type snapshot struct {
	slots     []value.Value
	populated []bool
}

func captureSnapshot(f *Frame) *snapshot {
	s := &snapshot{
		slots:     make([]value.Value, len(f.slots)),
		populated: make([]bool, len(f.populated)),
	}
	copy(s.slots, f.slots)
	copy(s.populated, f.populated)
	return s
}

// FunctionRecord is spec.md §3's "Function record". Parameters is ordered
// and bounded by MaxFunctionParams. CacheEnabled/CacheChecked/ObservedVars
// are the memoization purity bookkeeping of spec.md §4.5, populated by the
// scan in purity.go the first time this record is considered for caching.
type FunctionRecord struct {
	Symbol     int
	Name       string
	Parameters []int
	Body       *ast.Block

	Captured *snapshot

	CacheEnabled bool
	CacheChecked bool

	// ObservedVars is the number of distinct non-local symbols this
	// function's body reads or assigns, tallied by the same walk that
	// determines CacheEnabled. A function that closes over nothing but its
	// own parameters and locals has ObservedVars == 0.
	ObservedVars int

	Memo *Memo
}

// FunctionTable owns every FunctionRecord for one run, indexed directly by
// the symbol id of the literal that defined it (spec.md §4.4 item 1).
type FunctionTable struct {
	records []*FunctionRecord
}

// NewFunctionTable allocates a table with room for slotCount distinct
// symbol ids.
func NewFunctionTable(slotCount int) *FunctionTable {
	return &FunctionTable{records: make([]*FunctionRecord, slotCount)}
}

// Define installs a FunctionRecord for fl, capturing callerFrame's current
// contents as the closure environment. It replaces any record already held
// under fl.Symbol, which happens when a different literal bound to the same
// let name is evaluated.
func (ft *FunctionTable) Define(fl *ast.FunctionLiteral, callerFrame *Frame) *FunctionRecord {
	params := make([]int, len(fl.Parameters))
	for i, p := range fl.Parameters {
		params[i] = int(p.Symbol)
	}
	rec := &FunctionRecord{
		Symbol:     int(fl.Symbol),
		Name:       fl.Name,
		Parameters: params,
		Body:       fl.Body,
		Captured:   captureSnapshot(callerFrame),
		Memo:       newMemo(),
	}
	ft.records[fl.Symbol] = rec
	return rec
}

// Get returns the FunctionRecord for a symbol id, if one was ever defined.
func (ft *FunctionTable) Get(sym int) (*FunctionRecord, bool) {
	if sym < 0 || sym >= len(ft.records) || ft.records[sym] == nil {
		return nil, false
	}
	return ft.records[sym], true
}

// installCaptured copies a function's captured snapshot into callee,
// implementing spec.md §4.4's "the callee's captured environment is also
// installed into the callee's frame" — this is what lets a closure see its
// defining scope's bindings despite FrameStack.Resolve never falling
// through to intermediate frames.
func (rec *FunctionRecord) installCaptured(callee *Frame) {
	if rec.Captured == nil {
		return
	}
	for sym, ok := range rec.Captured.populated {
		if ok {
			callee.Set(sym, rec.Captured.slots[sym])
		}
	}
}
