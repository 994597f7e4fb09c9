package puzzles

import "breezechess/core/apperr"

// Record is a single puzzle as returned by the selector. Its fields are
// passed through to the caller untouched.
type Record = map[string]any

// Request is the body of POST /getPuzzles.
type Request struct {
	// Filters maps attribute names to constraints. Only "themes" is interpreted.
	Filters map[string]any `json:"filters" validate:"required"`
	// Count is the number of puzzles wanted. The range is left to the selector.
	Count *int `json:"count" validate:"required"`
}

// Response is the success envelope of POST /getPuzzles.
type Response struct {
	Success       bool     `json:"success"`
	InputReceived Request  `json:"input_received"`
	Result        []Record `json:"result"`
}

// ErrorResponse is returned with status 500 for every failed request.
type ErrorResponse struct {
	Detail string      `json:"detail"`
	Kind   apperr.Kind `json:"kind"`
}
