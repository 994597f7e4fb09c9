package pieces

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"breezechess/core/apperr"
	"breezechess/core/storage"

	"github.com/dustin/go-humanize"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Failure records a single file that could not be uploaded.
type Failure struct {
	Key   string `json:"key"`
	Error string `json:"error"`
}

// Report summarizes one synchronization run.
type Report struct {
	Sets        int       `json:"sets"`
	Uploaded    []string  `json:"uploaded"`
	Failed      []Failure `json:"failed"`
	SkippedDirs []string  `json:"skipped_dirs"`
}

// Service uploads the local piece images to the bucket.
type Service struct {
	client storage.Client
	bucket string
	region string
	cfg    Config
	logger *zap.Logger
}

// NewService creates a new piece synchronizer.
func NewService(client storage.Client, bucket, region string, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		region: region,
		cfg:    cfg.withDefaults(),
		logger: logger,
	}
}

// EnsureBucket creates the bucket unless it already exists. A failed probe is
// treated like a missing bucket and answered with a create attempt.
func (s *Service) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		s.logger.Warn("Bucket probe failed, attempting to create it", zap.String("bucket", s.bucket), zap.Error(err))
	}
	if err == nil && exists {
		s.logger.Info("Bucket already exists", zap.String("bucket", s.bucket))
		return nil
	}

	err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region})
	if storage.IsBucketOwned(err) {
		s.logger.Info("Bucket already exists", zap.String("bucket", s.bucket))
		return nil
	}
	if err != nil {
		return apperr.Upstream("pieces.ensure_bucket", fmt.Errorf("failed to create bucket %s: %w", s.bucket, err))
	}

	s.logger.Info("Bucket created", zap.String("bucket", s.bucket))
	return nil
}

// Sync makes sure every image of the asset tree is present in the bucket.
// A missing asset root aborts before any storage call. Upload failures are
// logged and collected in the report; they never stop the run.
func (s *Service) Sync(ctx context.Context) (*Report, error) {
	sets, err := s.listSets()
	if err != nil {
		return nil, err
	}

	if err := s.EnsureBucket(ctx); err != nil {
		return nil, err
	}

	report := &Report{Sets: len(sets)}

	for _, set := range sets {
		for _, color := range s.cfg.Colors {
			if err := ctx.Err(); err != nil {
				return report, err
			}

			colorDir := filepath.Join(s.cfg.Root, set, color)
			files, err := s.listImages(colorDir)
			if err != nil {
				s.logger.Warn("Skipping color directory", zap.String("dir", colorDir), zap.Error(err))
				report.SkippedDirs = append(report.SkippedDirs, colorDir)
				continue
			}

			for _, name := range files {
				key := ObjectKey(s.cfg.Prefix, set, color, name)
				if err := s.upload(ctx, filepath.Join(colorDir, name), key); err != nil {
					s.logger.Error("Failed to upload piece", zap.String("key", key), zap.Error(err))
					report.Failed = append(report.Failed, Failure{Key: key, Error: err.Error()})
					continue
				}
				report.Uploaded = append(report.Uploaded, key)
			}
		}
	}

	s.logger.Info("All chess pieces uploaded",
		zap.String("bucket", s.bucket),
		zap.Int("sets", report.Sets),
		zap.Int("uploaded", len(report.Uploaded)),
		zap.Int("failed", len(report.Failed)),
		zap.Int("skipped_dirs", len(report.SkippedDirs)),
	)

	return report, nil
}

// listSets returns the piece set directories under the asset root, sorted by name.
func (s *Service) listSets() ([]string, error) {
	info, err := os.Stat(s.cfg.Root)
	if err != nil {
		return nil, apperr.Configuration("pieces.root", fmt.Errorf("assets directory does not exist: %s", s.cfg.Root))
	}
	if !info.IsDir() {
		return nil, apperr.Configuration("pieces.root", fmt.Errorf("assets path is not a directory: %s", s.cfg.Root))
	}

	entries, err := os.ReadDir(s.cfg.Root)
	if err != nil {
		return nil, apperr.Configuration("pieces.root", fmt.Errorf("failed to read assets directory: %w", err))
	}

	var sets []string
	for _, e := range entries {
		if e.IsDir() {
			sets = append(sets, e.Name())
		}
	}
	return sets, nil
}

// listImages returns the image file names of a color directory, sorted by name.
func (s *Service) listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !hasExtension(e.Name(), s.cfg.Extensions) {
			continue
		}
		files = append(files, e.Name())
	}
	return files, nil
}

func (s *Service) upload(ctx context.Context, filePath, key string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", filePath, err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, key, f, info.Size(), minio.PutObjectOptions{
		ContentType: ContentType(filePath),
	})
	if err != nil {
		return err
	}

	s.logger.Debug("Uploaded piece", zap.String("key", key), zap.String("size", humanize.Bytes(uint64(info.Size()))))
	return nil
}
