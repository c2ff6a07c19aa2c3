// Package service implements the aggregation engine: read-only derived
// views over the employee and attendance stores.
package service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"hrms/internal/dashboard/models"
	dErrors "hrms/pkg/domain-errors"
)

// DefaultRecentLimit bounds the recent-attendance join in the stats
// snapshot, matching the original dashboard payload.
const DefaultRecentLimit = 5

// Store is the read-only query surface the engine requires.
type Store interface {
	CountEmployees(ctx context.Context) (int, error)
	CountAttendance(ctx context.Context) (int, error)
	StatusCountsOn(ctx context.Context, day time.Time) (present, absent int, err error)
	DepartmentDistribution(ctx context.Context) ([]*models.DepartmentCount, error)
	RecentAttendance(ctx context.Context, limit int) ([]*models.RecentEntry, error)
}

// Cache optionally fronts Stats with a short-lived snapshot. A miss is
// (nil, nil); cache failures are never promoted to caller errors.
type Cache interface {
	Get(ctx context.Context) (*models.Stats, error)
	Set(ctx context.Context, stats *models.Stats) error
}

// Clock supplies "today" for the daily counts; injected for testability.
type Clock func() time.Time

// Service derives dashboard statistics from current store state. It never
// mutates the store.
type Service struct {
	store       Store
	cache       Cache
	clock       Clock
	logger      *slog.Logger
	recentLimit int
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithCache(cache Cache) Option {
	return func(s *Service) { s.cache = cache }
}

func WithClock(clock Clock) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func WithRecentLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.recentLimit = limit
		}
	}
}

// New constructs a Service.
func New(store Store, opts ...Option) *Service {
	s := &Service{
		store:       store,
		clock:       time.Now,
		recentLimit: DefaultRecentLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stats assembles the aggregate snapshot in one call. The five queries are
// independent reads and fan out concurrently; any failure cancels the rest.
func (s *Service) Stats(ctx context.Context) (*models.Stats, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	var stats models.Stats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.store.CountEmployees(gctx)
		stats.TotalEmployees = n
		return err
	})
	g.Go(func() error {
		n, err := s.store.CountAttendance(gctx)
		stats.TotalAttendance = n
		return err
	})
	g.Go(func() error {
		present, absent, err := s.store.StatusCountsOn(gctx, s.clock())
		stats.PresentToday = present
		stats.AbsentToday = absent
		return err
	})
	g.Go(func() error {
		depts, err := s.store.DepartmentDistribution(gctx)
		if err != nil {
			return err
		}
		stats.Departments = make([]models.DepartmentCount, 0, len(depts))
		for _, d := range depts {
			stats.Departments = append(stats.Departments, *d)
		}
		return nil
	})
	g.Go(func() error {
		recent, err := s.store.RecentAttendance(gctx, s.recentLimit)
		if err != nil {
			return err
		}
		stats.RecentAttendance = make([]models.RecentEntry, 0, len(recent))
		for _, r := range recent {
			stats.RecentAttendance = append(stats.RecentAttendance, *r)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to compute dashboard stats")
	}

	s.toCache(ctx, &stats)
	return &stats, nil
}

func (s *Service) fromCache(ctx context.Context) *models.Stats {
	if s.cache == nil {
		return nil
	}
	cached, err := s.cache.Get(ctx)
	if err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "dashboard cache read failed", "error", err.Error())
	}
	return cached
}

func (s *Service) toCache(ctx context.Context, stats *models.Stats) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, stats); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "dashboard cache write failed", "error", err.Error())
	}
}
