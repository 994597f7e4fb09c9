// Package pieces seeds the object store with the chess piece images.
//
// The asset root is organized as <root>/<set>/<color>/<piece-file>, with the
// colors "b" and "w". Every image is uploaded under the key
//
//	chess_piece/<set>/<color>/<filename>
//
// which is derived from the path alone, so repeated runs overwrite the same
// objects instead of creating new ones.
//
// # Failure Handling
//
//   - A missing asset root is a configuration error; nothing is uploaded.
//   - A missing color directory is skipped and reported.
//   - A failed upload is logged with its key and the run continues.
//
// # Usage
//
//	svc := pieces.NewService(client, cfg.Storage.Bucket, cfg.Storage.Region, cfg.Pieces, logg)
//	report, err := svc.Sync(ctx)
package pieces
