package content

import (
	"errors"
	"regexp"
)

var (
	// ErrSlugEmpty is returned for a post file with no name before its extension.
	ErrSlugEmpty = errors.New("slug must not be empty")

	// ErrSlugFormat is returned when a post file name would not make a clean URL.
	ErrSlugFormat = errors.New("slug must contain only lowercase alphanumeric characters and hyphens, and must not start or end with a hyphen")

	slugPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9\-]*[a-z0-9])?$`)
)

// ValidateSlug checks that slug can be used as the last segment of /blog/<slug>.
func ValidateSlug(slug string) error {
	if slug == "" {
		return ErrSlugEmpty
	}
	if !slugPattern.MatchString(slug) {
		return ErrSlugFormat
	}
	return nil
}
