// ==============================================================================================
// FILE: interp/limits.go
// ==============================================================================================
// PACKAGE: interp
// PURPOSE: Compile-time resource budgets. These mirror the original implementation's
//          config.h constants (RINHA_CONFIG_STACK_SIZE, RINHA_CONFIG_CACHE_SIZE,
//          RINHA_CONFIG_FUNCTION_ARGS_SIZE, …) rather than the teacher's evaluator, which
//          had no such budgets — the teacher's object/environment model grows without
//          bound. A Go re-implementation still exposes them as named constants, not
//          magic numbers, so resource-limit diagnostics can cite them.
// ==============================================================================================

package interp

const (
	// MaxCallDepth bounds the frame stack (spec.md §3, §4.4's "Call-depth
	// bound"). Exceeding it is a fatal StackOverflow, not a retry.
	MaxCallDepth = 2048

	// MaxFunctionParams bounds a function's parameter list (spec.md §3's
	// "parameter list (ordered list of symbol ids, max 6)").
	MaxFunctionParams = 6

	// MaxMemoArgs is how many leading integer arguments participate in a
	// memo cache key (spec.md §4.5).
	MaxMemoArgs = 3

	// MemoCacheSize is the per-function memo table's bucket count
	// (spec.md §4.5's "Cache capacity is a compile-time constant").
	MemoCacheSize = 4099
)
