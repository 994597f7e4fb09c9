// Package apperr defines the small closed set of error kinds shared by the
// piece synchronizer and the puzzle gateway.
//
// Errors are tagged once, close to where they happen, and keep their original
// message. Consumers use KindOf to branch on the cause, e.g. to report a
// missing asset root differently from a failed upload.
package apperr
