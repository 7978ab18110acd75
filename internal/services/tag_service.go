package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/studyshelf/backend/internal/models"
)

// MaxTagNameLength is the longest accepted tag name, in characters
const MaxTagNameLength = 50

var tagColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// TagRepository is the interface that wraps methods for Tags table data access
type TagRepository interface {
	// Method GetAll retrieves all tags ordered by name.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context) ([]models.Tag, error)
	// Method GetByID retrieves a tag by its ID.
	//
	// If the tag does not exist, the "tag not found" error will be returned.
	GetByID(ctx context.Context, id int) (*models.Tag, error)
	// Method Create inserts a new tag and sets its ID.
	//
	// If a tag with the same name exists, the "tag already exists" error will be returned.
	Create(ctx context.Context, tag *models.Tag) error
	// Method Update replaces the name and color of a tag.
	//
	// If the tag does not exist, the "tag not found" error will be returned.
	// If another tag has the same name, the "tag already exists" error will be returned.
	Update(ctx context.Context, tag *models.Tag) error
	// Method Delete deletes a tag by its ID together with its course links.
	Delete(ctx context.Context, id int) error
	// Method CountByIDs returns how many of the given tag IDs exist.
	CountByIDs(ctx context.Context, ids []int) (int, error)
	// Method GetByCourseIDs retrieves tags of several courses keyed by course ID.
	//
	// Courses without tags are absent from the map.
	GetByCourseIDs(ctx context.Context, courseIDs []int) (map[int][]models.Tag, error)
}

type tagService struct {
	repo TagRepository
}

// NewTagService creates a new tag service
func NewTagService(repo TagRepository) *tagService {
	return &tagService{
		repo: repo,
	}
}

// ListTags returns all tags ordered by name
func (s *tagService) ListTags(ctx context.Context) ([]models.Tag, error) {
	tags, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}
	return tags, nil
}

// CreateTag validates the request and creates a tag
func (s *tagService) CreateTag(ctx context.Context, req *models.TagRequest) (*models.Tag, error) {
	tag, err := normalizeTag(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// UpdateTag validates the request and replaces name and color of a tag
func (s *tagService) UpdateTag(ctx context.Context, id int, req *models.TagRequest) (*models.Tag, error) {
	if id <= 0 {
		return nil, invalidf("invalid tag id")
	}

	tag, err := normalizeTag(req)
	if err != nil {
		return nil, err
	}
	tag.ID = id

	if err := s.repo.Update(ctx, tag); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// DeleteTag deletes a tag
func (s *tagService) DeleteTag(ctx context.Context, id int) error {
	if id <= 0 {
		return invalidf("invalid tag id")
	}
	return s.repo.Delete(ctx, id)
}

// Palette returns the colors offered for new tags
func (s *tagService) Palette() []string {
	palette := make([]string, len(models.TagPalette))
	copy(palette, models.TagPalette)
	return palette
}

// normalizeTag trims the name, validates it and applies the default color
func normalizeTag(req *models.TagRequest) (*models.Tag, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalidf("tag name is required")
	}
	if utf8.RuneCountInString(name) > MaxTagNameLength {
		return nil, invalidf("tag name must be at most %d characters", MaxTagNameLength)
	}

	color := strings.TrimSpace(req.Color)
	if color == "" {
		color = models.DefaultTagColor
	}
	if !tagColorPattern.MatchString(color) {
		return nil, invalidf("invalid color %q, expected #RRGGBB", req.Color)
	}

	return &models.Tag{
		Name:  name,
		Color: strings.ToUpper(color),
	}, nil
}
