package usermap

import (
	"context"
	"fmt"

	"usermap-reconciler/core/cache"
	"usermap-reconciler/core/reconcile"
	"usermap-reconciler/core/report"

	"go.uber.org/zap"
)

// Service runs builds and dumps.
type Service struct {
	source   reconcile.Adapter
	cacheDir string
	logger   *zap.Logger
	verbose  bool
}

// NewService creates a new usermap service. source may be nil for
// services that only dump caches.
func NewService(source reconcile.Adapter, cacheDir string, logger *zap.Logger, verbose bool) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		source:   source,
		cacheDir: cacheDir,
		logger:   logger,
		verbose:  verbose,
	}
}

// sink returns a sink that both logs and records events.
func (s *Service) sink() (*report.Log, report.Sink) {
	log := report.NewLog()
	return log, report.Tee(log, report.NewZapSink(s.logger, s.verbose))
}

// Build reconciles every observation of the source. Inconsistent mappings
// are reported as events and kept in the result.
func (s *Service) Build(ctx context.Context) (*Result, error) {
	if s.source == nil {
		return nil, fmt.Errorf("no observation source configured")
	}

	log, sink := s.sink()
	r := reconcile.New(sink)
	if err := r.Run(ctx, s.source); err != nil {
		return nil, err
	}
	r.CheckConsistency()

	snap := r.Snapshot()
	summary := r.Summary()
	return &Result{
		Mode:      ModeBuild,
		Names:     snap.Names,
		IDs:       snap.KnownIDs(),
		Seen:      snap.Seen,
		Reconcile: &summary,
		Events:    log.Events(),
	}, nil
}

// Dump decodes the binary caches.
func (s *Service) Dump(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log, sink := s.sink()
	contents, err := cache.Load(s.cacheDir, sink)
	if err != nil {
		return nil, err
	}

	return &Result{
		Mode:   ModeDump,
		Names:  contents.Names,
		IDs:    contents.IDs,
		Events: log.Events(),
	}, nil
}

// WriteCache saves the result as usermap.bin and uuids.bin.
func (s *Service) WriteCache(result *Result) error {
	if err := cache.Save(s.cacheDir, &cache.Contents{Names: result.Names, IDs: result.IDs}); err != nil {
		return fmt.Errorf("failed to write caches: %w", err)
	}
	usermapPath, uuidsPath := cache.Paths(s.cacheDir)
	s.logger.Info("Caches written",
		zap.String("usermap", usermapPath),
		zap.String("uuids", uuidsPath),
		zap.Int("names", result.Names.Len()),
		zap.Int("uuids_count", result.IDs.Len()),
	)
	return nil
}
