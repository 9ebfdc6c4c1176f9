package services

import (
	"context"
	"errors"
	"time"

	"cursos_app_echo/internal/models"
)

// ErrCourseNotFound is returned when no course matches a slug
var ErrCourseNotFound = errors.New("course not found")

const coursesCacheKey = "courses:all"

// CourseLister fetches the course list from the API
type CourseLister interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
}

// CourseCatalog serves the course list, cached in Redis when available.
// Only courses are cached; orders are always fetched fresh.
type CourseCatalog struct {
	api   CourseLister
	cache *RedisCache
	ttl   time.Duration
}

// NewCourseCatalog creates a catalog. cache may be nil.
func NewCourseCatalog(api CourseLister, cache *RedisCache, ttl time.Duration) *CourseCatalog {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CourseCatalog{api: api, cache: cache, ttl: ttl}
}

// List returns all courses
func (c *CourseCatalog) List(ctx context.Context) ([]models.Course, error) {
	return GetOrSet(c.cache, ctx, coursesCacheKey, c.ttl, func() ([]models.Course, error) {
		return c.api.ListCourses(ctx)
	})
}

// FindBySlug returns the course with the given slug
func (c *CourseCatalog) FindBySlug(ctx context.Context, slug string) (models.Course, error) {
	if slug == "" {
		return models.Course{}, ErrCourseNotFound
	}
	courses, err := c.List(ctx)
	if err != nil {
		return models.Course{}, err
	}
	for _, course := range courses {
		if course.Slug == slug {
			return course, nil
		}
	}
	return models.Course{}, ErrCourseNotFound
}
