// Package puzzles implements the puzzle gateway endpoint.
//
// POST /getPuzzles accepts {"filters": {...}, "count": n}, extracts the
// optional theme filter, obtains the shared database handle from a
// database.Provider and delegates the actual selection to a Selector
// (see the store subpackage). The answer echoes the request:
//
//	{"success": true, "input_received": {...}, "result": [...]}
//
// # Errors
//
// Every failure is answered with status 500 and {"detail": ..., "kind": ...},
// where kind is one of configuration, upstream or validation.
package puzzles
