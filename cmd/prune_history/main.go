package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"

	"github.com/light-bringer/partner-profile-service/internal/app/partner/repo"
	"github.com/light-bringer/partner-profile-service/internal/config"
	"github.com/light-bringer/partner-profile-service/internal/pkg/committer"
	"github.com/light-bringer/partner-profile-service/internal/pkg/logging"
)

func main() {
	configFile := flag.String("config", os.Getenv("PPS_CONFIG_FILE"), "Optional YAML config file")
	dryRun := flag.Bool("dry-run", false, "Show what would be deleted without actually deleting")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(context.Background(), cfg, *dryRun, logger); err != nil {
		logger.Fatal("prune failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, dryRun bool, logger *zap.Logger) error {
	client, err := spanner.NewClient(ctx, cfg.Spanner.Database)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	now := time.Now().UTC()
	snapshots := repo.NewSnapshotRepo(client)
	outbox := repo.NewOutboxRepo(client)

	targets := []target{
		{
			name:   "profile_snapshots",
			cutoff: now.Add(-cfg.Retention.Snapshots),
			count:  snapshots.CountBefore,
			delete: snapshots.DeleteBeforeStmt,
		},
		{
			name:   "outbox_events",
			cutoff: now.Add(-cfg.Retention.Outbox),
			count:  outbox.CountProcessedBefore,
			delete: outbox.DeleteProcessedBeforeStmt,
		},
	}

	_, err = prune(ctx, targets, committer.NewCommitter(client), dryRun, logger)
	return err
}
