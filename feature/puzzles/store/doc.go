// Package store is the default puzzle selector of the gateway.
//
// It reads the puzzles table of the Lichess puzzle import (PuzzleId, FEN,
// Moves, Rating, RatingDeviation, Popularity, NbPlays, Themes, GameUrl,
// OpeningTags) and returns rows as plain maps, so the gateway never depends
// on the column set.
package store
