package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/itech-net/student-portal-api/internal/models"
)

type catalogRepository interface {
	ListByCourses(ctx context.Context, courses []string) ([]models.CatalogEntry, error)
}

// CatalogService resolves the subject catalog of courses, caching each
// course's subject list.
type CatalogService struct {
	repo    catalogRepository
	cache   *CacheService
	metrics *MetricsService
	ttl     time.Duration
	logger  *zap.Logger
}

// NewCatalogService constructs the catalog service. A nil cache reads through to storage.
func NewCatalogService(repo catalogRepository, cache *CacheService, metrics *MetricsService, ttl time.Duration, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{repo: repo, cache: cache, metrics: metrics, ttl: ttl, logger: logger}
}

// SubjectsForCourses returns the catalog entries of the given courses. Cached
// courses are served from Redis; the rest are fetched in one query.
func (s *CatalogService) SubjectsForCourses(ctx context.Context, courses []string) ([]models.CatalogEntry, error) {
	courses = uniqueCourses(courses)
	if len(courses) == 0 {
		return []models.CatalogEntry{}, nil
	}

	entries := make([]models.CatalogEntry, 0)
	missing := make([]string, 0, len(courses))
	for _, course := range courses {
		var cached []models.CatalogEntry
		hit, err := s.cache.Get(ctx, catalogCacheKey(course), &cached)
		if err != nil || !hit {
			missing = append(missing, course)
			continue
		}
		entries = append(entries, cached...)
	}
	if len(missing) == 0 {
		return entries, nil
	}

	start := time.Now()
	fetched, err := s.repo.ListByCourses(ctx, missing)
	s.metrics.ObserveDBQuery("catalog_by_courses", time.Since(start))
	if err != nil {
		return nil, err
	}
	entries = append(entries, fetched...)

	if s.cache.Enabled() {
		byCourse := make(map[string][]models.CatalogEntry, len(missing))
		for _, course := range missing {
			byCourse[models.NormalizeText(course)] = []models.CatalogEntry{}
		}
		for _, entry := range fetched {
			key := models.NormalizeText(entry.Course)
			byCourse[key] = append(byCourse[key], entry)
		}
		for course, list := range byCourse {
			if err := s.cache.Set(ctx, catalogCacheKey(course), list, s.ttl); err != nil {
				s.logger.Debug("catalog cache write skipped", zap.String("course", course), zap.Error(err))
			}
		}
	}
	return entries, nil
}

// Invalidate drops every cached course catalog.
func (s *CatalogService) Invalidate(ctx context.Context) error {
	return s.cache.Invalidate(ctx, "catalog:*")
}

func catalogCacheKey(course string) string {
	return "catalog:" + models.NormalizeText(course)
}

func uniqueCourses(courses []string) []string {
	seen := make(map[string]struct{}, len(courses))
	result := make([]string, 0, len(courses))
	for _, course := range courses {
		trimmed := strings.TrimSpace(course)
		key := models.NormalizeText(trimmed)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, trimmed)
	}
	sort.Strings(result)
	return result
}
