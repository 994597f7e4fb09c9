package pieces

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"breezechess/core/apperr"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// CheckReport compares the local asset tree with the bucket contents.
type CheckReport struct {
	// Missing lists keys of local images that are not in the bucket.
	Missing []string `json:"missing"`
	// Extra lists keys under the prefix that have no local image.
	Extra []string `json:"extra"`
}

// InSync reports whether bucket and asset tree hold the same keys.
func (r *CheckReport) InSync() bool {
	return len(r.Missing) == 0 && len(r.Extra) == 0
}

// LocalKeys returns the object keys the asset tree maps to, sorted.
func (s *Service) LocalKeys() ([]string, error) {
	sets, err := s.listSets()
	if err != nil {
		return nil, err
	}

	var keys []string
	for _, set := range sets {
		for _, color := range s.cfg.Colors {
			files, err := s.listImages(filepath.Join(s.cfg.Root, set, color))
			if err != nil {
				continue
			}
			for _, name := range files {
				keys = append(keys, ObjectKey(s.cfg.Prefix, set, color, name))
			}
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Check lists the bucket under the key prefix and compares it with the asset
// tree. It never writes to the bucket.
func (s *Service) Check(ctx context.Context) (*CheckReport, error) {
	local, err := s.LocalKeys()
	if err != nil {
		return nil, err
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, apperr.Upstream("pieces.check", fmt.Errorf("failed to check bucket existence: %w", err))
	}

	remote := make(map[string]struct{})
	if exists {
		// Cancelling stops the listing goroutine when we return early.
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		opts := minio.ListObjectsOptions{Prefix: s.cfg.Prefix + "/", Recursive: true}
		for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
			if obj.Err != nil {
				return nil, apperr.Upstream("pieces.check", fmt.Errorf("failed to list bucket %s: %w", s.bucket, obj.Err))
			}
			remote[obj.Key] = struct{}{}
		}
	}

	report := &CheckReport{}
	for _, key := range local {
		if _, ok := remote[key]; ok {
			delete(remote, key)
			continue
		}
		report.Missing = append(report.Missing, key)
	}
	for key := range remote {
		report.Extra = append(report.Extra, key)
	}
	sort.Strings(report.Extra)

	s.logger.Info("Checked bucket against asset tree",
		zap.String("bucket", s.bucket),
		zap.Bool("bucket_exists", exists),
		zap.Int("local", len(local)),
		zap.Int("missing", len(report.Missing)),
		zap.Int("extra", len(report.Extra)),
	)
	return report, nil
}
