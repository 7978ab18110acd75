package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/studyshelf/backend/internal/models"
	"github.com/studyshelf/backend/internal/schedule"
	"github.com/studyshelf/backend/internal/streak"
)

const (
	timeOfDayLayout = "15:04"
	// maxBlockRangeDays limits GetBlocks queries to about one year
	maxBlockRangeDays = 366
	maxBlockTitle     = 255
)

// CalendarBlockRepository is the interface that wraps methods for CalendarBlocks table data access
type CalendarBlockRepository interface {
	// Method GetBetween returns blocks with from <= date <= to ordered by date and start time.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	GetBetween(ctx context.Context, from, to models.Date) ([]models.CalendarBlock, error)
	// Method GetByID retrieves a block by its ID.
	//
	// If the block does not exist, the "calendar block not found" error will be returned.
	GetByID(ctx context.Context, id int) (*models.CalendarBlock, error)
	// Method CreateBatch inserts blocks in one transaction and sets their IDs.
	CreateBatch(ctx context.Context, blocks []*models.CalendarBlock) error
	// Method Update replaces all editable fields of a block.
	//
	// If the block does not exist, the "calendar block not found" error will be returned.
	Update(ctx context.Context, block *models.CalendarBlock) error
	// Method Delete deletes a block by its ID.
	Delete(ctx context.Context, id int) error
}

type calendarService struct {
	blockRepo    CalendarBlockRepository
	progressRepo LessonProgressRepository
	streakRepo   DailyStreakRepository
	now          func() time.Time
}

// NewCalendarService creates a new calendar service
func NewCalendarService(blockRepo CalendarBlockRepository, progressRepo LessonProgressRepository, streakRepo DailyStreakRepository) *calendarService {
	return &calendarService{
		blockRepo:    blockRepo,
		progressRepo: progressRepo,
		streakRepo:   streakRepo,
		now:          time.Now,
	}
}

// GetMonth builds the month grid with blocks and completed lessons per day.
// Zero year and month select the current month.
func (s *calendarService) GetMonth(ctx context.Context, year, month int) (*models.CalendarMonth, error) {
	now := s.now().UTC()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return nil, invalidf("month must be between 1 and 12")
	}
	if year < 1970 || year > 9999 {
		return nil, invalidf("year must be between 1970 and 9999")
	}

	first := models.NewDate(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC))
	next := models.NewDate(first.AddDate(0, 1, 0))
	last := next.AddDays(-1)

	blocks, err := s.blockRepo.GetBetween(ctx, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar blocks: %w", err)
	}

	completions, err := s.progressRepo.GetBetween(ctx, first.Time, next.Time)
	if err != nil {
		return nil, fmt.Errorf("failed to get completed lessons: %w", err)
	}

	currentStreak, err := computeStreak(ctx, s.streakRepo, now)
	if err != nil {
		return nil, err
	}

	dayCount := last.Day()
	days := make([]models.CalendarDay, dayCount)
	today := models.NewDate(now)
	for i := range days {
		date := first.AddDays(i)
		days[i] = models.CalendarDay{
			Date:             date,
			Day:              i + 1,
			IsToday:          date.Equal(today.Time),
			Blocks:           []models.CalendarBlock{},
			CompletedLessons: []models.LessonCompletion{},
		}
	}

	for _, block := range blocks {
		index := block.Date.Day() - 1
		if block.Date.Month() == time.Month(month) && index >= 0 && index < dayCount {
			days[index].Blocks = append(days[index].Blocks, block)
		}
	}
	for _, completion := range completions {
		completedAt := completion.CompletedAt.UTC()
		index := completedAt.Day() - 1
		if completedAt.Month() == time.Month(month) && index >= 0 && index < dayCount {
			days[index].CompletedLessons = append(days[index].CompletedLessons, completion)
		}
	}

	return &models.CalendarMonth{
		Year:          year,
		Month:         month,
		LeadingBlanks: int(first.Weekday()),
		Days:          days,
		Streak:        currentStreak,
	}, nil
}

// GetBlocks returns blocks between from and to inclusive, both "YYYY-MM-DD"
func (s *calendarService) GetBlocks(ctx context.Context, fromParam, toParam string) ([]models.CalendarBlock, error) {
	from, err := models.ParseDate(fromParam)
	if err != nil {
		return nil, invalid(fmt.Errorf("from: %w", err))
	}
	to, err := models.ParseDate(toParam)
	if err != nil {
		return nil, invalid(fmt.Errorf("to: %w", err))
	}
	if to.Before(from.Time) {
		return nil, invalidf("from must not be after to")
	}
	if from.DaysUntil(to) > maxBlockRangeDays {
		return nil, invalidf("date range must not exceed %d days", maxBlockRangeDays)
	}

	blocks, err := s.blockRepo.GetBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar blocks: %w", err)
	}
	return blocks, nil
}

// CreateBlocks creates one block, or one block per generated date when a recurrence is given
func (s *calendarService) CreateBlocks(ctx context.Context, req *models.CalendarBlockRequest) (*models.CreateBlocksResponse, error) {
	template, err := parseBlockRequest(req)
	if err != nil {
		return nil, err
	}

	dates := []models.Date{template.Date}
	if req.Recurrence != nil {
		frequency, err := schedule.ParseFrequency(req.Recurrence.Frequency)
		if err != nil {
			return nil, invalid(err)
		}
		dates, err = schedule.GenerateDates(template.Date, frequency, schedule.Weekdays(req.Recurrence.Weekdays), req.Recurrence.Weeks)
		if err != nil {
			return nil, invalid(err)
		}
		if len(dates) == 0 {
			return nil, invalidf("recurrence produces no dates")
		}
	}

	blocks := make([]*models.CalendarBlock, len(dates))
	for i, date := range dates {
		block := *template
		block.Date = date
		blocks[i] = &block
	}

	if err := s.blockRepo.CreateBatch(ctx, blocks); err != nil {
		return nil, fmt.Errorf("failed to create calendar blocks: %w", err)
	}

	ids := make([]int, len(blocks))
	for i, block := range blocks {
		ids[i] = block.ID
	}

	return &models.CreateBlocksResponse{IDs: ids, Count: len(ids)}, nil
}

// UpdateBlock replaces date, times, title and description of a block
func (s *calendarService) UpdateBlock(ctx context.Context, id int, req *models.CalendarBlockRequest) error {
	if id <= 0 {
		return invalidf("invalid block id")
	}
	if req.Recurrence != nil {
		return invalidf("recurrence can only be set when creating blocks")
	}

	block, err := parseBlockRequest(req)
	if err != nil {
		return err
	}
	block.ID = id

	return s.blockRepo.Update(ctx, block)
}

// DeleteBlock deletes a block
func (s *calendarService) DeleteBlock(ctx context.Context, id int) error {
	if id <= 0 {
		return invalidf("invalid block id")
	}
	return s.blockRepo.Delete(ctx, id)
}

// parseBlockRequest validates the common block fields and normalizes times to HH:MM
func parseBlockRequest(req *models.CalendarBlockRequest) (*models.CalendarBlock, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, invalidf("title is required")
	}
	if utf8.RuneCountInString(title) > maxBlockTitle {
		return nil, invalidf("title must be at most %d characters", maxBlockTitle)
	}

	if strings.TrimSpace(req.Date) == "" {
		return nil, invalidf("date is required")
	}
	date, err := models.ParseDate(strings.TrimSpace(req.Date))
	if err != nil {
		return nil, invalid(err)
	}

	start, err := parseTimeOfDay("start_time", req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := parseTimeOfDay("end_time", req.EndTime)
	if err != nil {
		return nil, err
	}
	if !end.After(start) {
		return nil, invalidf("end_time must be after start_time")
	}

	return &models.CalendarBlock{
		Date:        date,
		StartTime:   start.Format(timeOfDayLayout),
		EndTime:     end.Format(timeOfDayLayout),
		Title:       title,
		Description: strings.TrimSpace(req.Description),
	}, nil
}

func parseTimeOfDay(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, invalidf("%s is required", field)
	}
	t, err := time.Parse(timeOfDayLayout, value)
	if err != nil {
		return time.Time{}, invalidf("invalid %s %q, expected HH:MM", field, value)
	}
	return t, nil
}

// computeStreak loads the latest day records and counts the streak ending at now
func computeStreak(ctx context.Context, repo DailyStreakRepository, now time.Time) (int, error) {
	days, err := repo.GetRecent(ctx, streak.LookbackDays)
	if err != nil {
		return 0, fmt.Errorf("failed to get daily streaks: %w", err)
	}
	return streak.Compute(days, now.UTC()), nil
}
