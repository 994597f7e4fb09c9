package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"breezechess/core/config"
	"breezechess/core/logger"
	"breezechess/core/storage"
	"breezechess/feature/pieces"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	seedRoot   string
	seedBucket string
	seedCheck  bool
)

// seedCmd is the parent command for one-shot seeding tasks.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed external stores with static assets",
}

// seedPiecesCmd uploads the chess piece images to the bucket.
var seedPiecesCmd = &cobra.Command{
	Use:   "pieces",
	Short: "Upload chess piece images to the object store",
	Long: `Ensures the bucket exists and uploads every image found under
<root>/<set>/{b,w}/ as chess_piece/<set>/<color>/<file>.

Failed uploads are logged and do not change the exit status.
A missing asset root exits with status 1 without contacting the store.`,
	RunE: runSeedPieces,
}

func init() {
	seedPiecesCmd.Flags().StringVar(&seedRoot, "root", "", "Asset root directory (overrides PIECES_ROOT)")
	seedPiecesCmd.Flags().StringVar(&seedBucket, "bucket", "", "Target bucket (overrides STORAGE_BUCKET)")
	seedPiecesCmd.Flags().BoolVar(&seedCheck, "check", false, "Only compare the bucket with the asset tree, upload nothing")

	seedCmd.AddCommand(seedPiecesCmd)
	RootCmd.AddCommand(seedCmd)
}

func runSeedPieces(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if seedRoot != "" {
		cfg.Pieces.Root = seedRoot
	}
	if seedBucket != "" {
		cfg.Storage.Bucket = seedBucket
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logg.Info("Seeding chess pieces",
		zap.String("root", cfg.Pieces.Root),
		zap.String("bucket", cfg.Storage.Bucket),
		zap.String("endpoint", cfg.Storage.Endpoint),
	)

	svc := pieces.NewService(client, cfg.Storage.Bucket, cfg.Storage.Region, cfg.Pieces, logg)

	if seedCheck {
		report, err := svc.Check(ctx)
		if err != nil {
			return fmt.Errorf("piece check failed: %w", err)
		}
		if report.InSync() {
			logg.Info("Bucket is in sync with the asset tree.")
		} else {
			logg.Warn("Bucket differs from the asset tree",
				zap.Strings("missing", report.Missing),
				zap.Strings("extra", report.Extra),
			)
			logg.Info("Run without --check to upload missing pieces.")
		}
		return nil
	}

	if _, err := svc.Sync(ctx); err != nil {
		return fmt.Errorf("piece seeding failed: %w", err)
	}
	return nil
}
