// Package validation checks uploaded files before they reach storage
package validation

import (
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"slices"
	"strings"
)

// Kind identifies a category of uploaded file
type Kind string

const (
	KindBookPDF     Kind = "book_pdf"
	KindBookCover   Kind = "book_cover"
	KindCourseCover Kind = "course_cover"
	KindLessonImage Kind = "lesson_image"
	KindLessonVideo Kind = "lesson_video"
)

const megabyte = 1 << 20

// ErrTooLarge marks files above the size limit of their kind
var ErrTooLarge = errors.New("file is too large")

// Rule is what a Kind accepts
type Rule struct {
	ContentTypes []string
	Extensions   []string
	MaxSize      int64
	// Prefix is the storage key prefix for files of this kind
	Prefix string
}

var coverImageTypes = []string{"image/jpeg", "image/png", "image/jpg"}
var coverImageExtensions = []string{".jpg", ".jpeg", ".png"}

var rules = map[Kind]Rule{
	KindBookPDF: {
		ContentTypes: []string{"application/pdf"},
		Extensions:   []string{".pdf"},
		MaxSize:      50 * megabyte,
		Prefix:       "books/pdfs",
	},
	KindBookCover: {
		ContentTypes: coverImageTypes,
		Extensions:   coverImageExtensions,
		MaxSize:      10 * megabyte,
		Prefix:       "books/covers",
	},
	KindCourseCover: {
		ContentTypes: coverImageTypes,
		Extensions:   coverImageExtensions,
		MaxSize:      10 * megabyte,
		Prefix:       "courses/covers",
	},
	KindLessonImage: {
		ContentTypes: []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
		Extensions:   []string{".jpg", ".jpeg", ".png", ".gif", ".webp"},
		MaxSize:      10 * megabyte,
		Prefix:       "lessons/images",
	},
	KindLessonVideo: {
		ContentTypes: []string{"video/mp4", "video/webm", "video/quicktime"},
		Extensions:   []string{".mp4", ".webm", ".mov"},
		MaxSize:      100 * megabyte,
		Prefix:       "lessons/videos",
	},
}

// ParseKind validates an upload kind name
func ParseKind(s string) (Kind, error) {
	kind := Kind(s)
	if _, ok := rules[kind]; !ok {
		return "", fmt.Errorf("invalid upload kind %q", s)
	}
	return kind, nil
}

// RuleFor returns the rule of a kind
func RuleFor(kind Kind) (Rule, error) {
	rule, ok := rules[kind]
	if !ok {
		return Rule{}, fmt.Errorf("invalid upload kind %q", kind)
	}
	return rule, nil
}

// Validate accepts a file only when both its MIME type and its extension are
// declared for kind and its size is within (0, MaxSize].
func Validate(kind Kind, contentType, filename string, size int64) error {
	rule, err := RuleFor(kind)
	if err != nil {
		return err
	}

	mediaType := NormalizeContentType(contentType)
	if !slices.Contains(rule.ContentTypes, mediaType) {
		return fmt.Errorf("invalid file type %q: allowed types are %s", contentType, strings.Join(rule.ContentTypes, ", "))
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !slices.Contains(rule.Extensions, ext) {
		return fmt.Errorf("invalid file extension %q: allowed extensions are %s", ext, strings.Join(rule.Extensions, ", "))
	}

	if size <= 0 {
		return fmt.Errorf("file is empty")
	}
	if size > rule.MaxSize {
		return fmt.Errorf("%w: maximum size is %d MB", ErrTooLarge, rule.MaxSize/megabyte)
	}

	return nil
}

// NormalizeContentType lower-cases a Content-Type and strips its parameters
func NormalizeContentType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mediaType
}
