package services

import (
	"context"
	"fmt"
	"time"

	"github.com/studyshelf/backend/internal/models"
	"github.com/studyshelf/backend/internal/streak"
	"golang.org/x/sync/errgroup"
)

const (
	// RecentActivityLimit is the number of completions shown on the dashboard
	RecentActivityLimit = 5
	// DefaultDailyDays is the number of day records returned when none is requested
	DefaultDailyDays = 30
)

type progressService struct {
	courseRepo   CourseRepository
	bookRepo     BookRepository
	lessonRepo   LessonRepository
	tagRepo      TagRepository
	progressRepo LessonProgressRepository
	streakRepo   DailyStreakRepository
	monthlyRepo  MonthlyProgressRepository
	cache        DashboardCache
	now          func() time.Time
}

// NewProgressService creates a new progress service
func NewProgressService(
	courseRepo CourseRepository,
	bookRepo BookRepository,
	lessonRepo LessonRepository,
	tagRepo TagRepository,
	progressRepo LessonProgressRepository,
	streakRepo DailyStreakRepository,
	monthlyRepo MonthlyProgressRepository,
	cache DashboardCache,
) *progressService {
	return &progressService{
		courseRepo:   courseRepo,
		bookRepo:     bookRepo,
		lessonRepo:   lessonRepo,
		tagRepo:      tagRepo,
		progressRepo: progressRepo,
		streakRepo:   streakRepo,
		monthlyRepo:  monthlyRepo,
		cache:        cache,
		now:          time.Now,
	}
}

// GetDashboard returns the dashboard, from the cache when present.
// The independent queries run concurrently; the first failure cancels the rest.
func (s *progressService) GetDashboard(ctx context.Context) (*models.Dashboard, error) {
	if dashboard, ok := s.cache.Get(ctx); ok {
		return dashboard, nil
	}

	now := s.now().UTC()
	dashboard := &models.Dashboard{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		currentStreak, err := computeStreak(gctx, s.streakRepo, now)
		if err != nil {
			return err
		}
		dashboard.Streak = currentStreak
		return nil
	})

	g.Go(func() error {
		todayLessons, err := s.streakRepo.GetByDate(gctx, models.NewDate(now))
		if err != nil {
			return fmt.Errorf("failed to get today's lessons: %w", err)
		}
		dashboard.TodayLessons = todayLessons
		return nil
	})

	g.Go(func() error {
		totalCourses, err := s.courseRepo.Count(gctx)
		if err != nil {
			return fmt.Errorf("failed to count courses: %w", err)
		}
		dashboard.TotalCourses = totalCourses
		return nil
	})

	g.Go(func() error {
		totalBooks, err := s.bookRepo.Count(gctx)
		if err != nil {
			return fmt.Errorf("failed to count books: %w", err)
		}
		dashboard.TotalBooks = totalBooks
		return nil
	})

	g.Go(func() error {
		totalLessons, completedLessons, err := s.lessonRepo.CountAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to count lessons: %w", err)
		}
		dashboard.TotalLessons = totalLessons
		dashboard.CompletedLessons = completedLessons
		return nil
	})

	g.Go(func() error {
		courses, err := s.courseRepo.GetAll(gctx, "", nil)
		if err != nil {
			return fmt.Errorf("failed to get courses: %w", err)
		}
		items, err := buildCourseListItems(gctx, courses, s.lessonRepo, s.tagRepo)
		if err != nil {
			return err
		}
		activeCourses := []models.CourseListItem{}
		for _, item := range items {
			if item.Progress.IsActive() {
				activeCourses = append(activeCourses, item)
			}
		}
		dashboard.ActiveCourses = activeCourses
		return nil
	})

	g.Go(func() error {
		recent, err := s.progressRepo.GetRecent(gctx, RecentActivityLimit)
		if err != nil {
			return fmt.Errorf("failed to get recent activity: %w", err)
		}
		dashboard.RecentActivity = recent
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.cache.Set(ctx, dashboard)
	return dashboard, nil
}

// GetStreak returns the current streak and today's completions
func (s *progressService) GetStreak(ctx context.Context) (*models.StreakResponse, error) {
	now := s.now().UTC()
	today := models.NewDate(now)

	currentStreak, err := computeStreak(ctx, s.streakRepo, now)
	if err != nil {
		return nil, err
	}

	todayLessons, err := s.streakRepo.GetByDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to get today's lessons: %w", err)
	}

	return &models.StreakResponse{
		Streak:       currentStreak,
		TodayLessons: todayLessons,
		Today:        today,
	}, nil
}

// GetDaily returns up to days latest day records, newest first.
// Zero days selects DefaultDailyDays.
func (s *progressService) GetDaily(ctx context.Context, days int) ([]models.DailyStreak, error) {
	if days == 0 {
		days = DefaultDailyDays
	}
	if days < 1 || days > streak.LookbackDays {
		return nil, invalidf("days must be between 1 and %d", streak.LookbackDays)
	}

	records, err := s.streakRepo.GetRecent(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily progress: %w", err)
	}
	return records, nil
}

// GetMonthly returns twelve months of the year, months without activity zero-filled.
// Zero year selects the current year.
func (s *progressService) GetMonthly(ctx context.Context, year int) ([]models.MonthlyProgress, error) {
	if year == 0 {
		year = s.now().UTC().Year()
	}
	if year < 1970 || year > 9999 {
		return nil, invalidf("year must be between 1970 and 9999")
	}

	stored, err := s.monthlyRepo.GetByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly progress: %w", err)
	}

	months := make([]models.MonthlyProgress, 12)
	for i := range months {
		months[i] = models.MonthlyProgress{Year: year, Month: i + 1}
	}
	for _, m := range stored {
		if m.Month >= 1 && m.Month <= 12 {
			months[m.Month-1] = m
		}
	}

	return months, nil
}
