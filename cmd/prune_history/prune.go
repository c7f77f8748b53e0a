package main

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"
)

// target is one table with a retention window.
type target struct {
	name   string
	cutoff time.Time
	count  func(ctx context.Context, cutoff time.Time) (int64, error)
	delete func(cutoff time.Time) spanner.Statement
}

type partitionedExecutor interface {
	ExecutePartitioned(ctx context.Context, stmt spanner.Statement) (int64, error)
}

// prune deletes rows older than each target's cutoff and returns the
// number of rows removed, or that would be removed on a dry run, per table.
func prune(ctx context.Context, targets []target, exec partitionedExecutor, dryRun bool, logger *zap.Logger) (map[string]int64, error) {
	result := make(map[string]int64, len(targets))
	for _, t := range targets {
		log := logger.With(zap.String("table", t.name), zap.Time("cutoff", t.cutoff))

		n, err := t.count(ctx, t.cutoff)
		if err != nil {
			return result, fmt.Errorf("failed to count %s: %w", t.name, err)
		}
		if n == 0 {
			log.Info("nothing to prune")
			result[t.name] = 0
			continue
		}
		if dryRun {
			log.Info("dry run: would delete rows", zap.Int64("rows", n))
			result[t.name] = n
			continue
		}

		deleted, err := exec.ExecutePartitioned(ctx, t.delete(t.cutoff))
		if err != nil {
			return result, fmt.Errorf("failed to prune %s: %w", t.name, err)
		}
		log.Info("pruned rows", zap.Int64("rows", deleted))
		result[t.name] = deleted
	}
	return result, nil
}
