package domain

import (
	"fmt"
	"regexp"
	"slices"
)

// MaxIDLength is the maximum record identifier length.
const MaxIDLength = 128

var (
	idRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	// Route segments that share a path level with record IDs.
	reservedIDs = map[string]bool{"tags": true, "filter": true}
)

// ValidateID checks a record identifier: ^[a-zA-Z0-9_-]+$, 1-128 chars, not reserved.
func ValidateID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidRecord)
	}
	if len(id) > MaxIDLength {
		return fmt.Errorf("%w: id too long (max %d)", ErrInvalidRecord, MaxIDLength)
	}
	if !idRegex.MatchString(id) {
		return fmt.Errorf("%w: id must be alphanumeric with underscores and hyphens", ErrInvalidRecord)
	}
	if reservedIDs[id] {
		return fmt.Errorf("%w: id %q is reserved", ErrInvalidRecord, id)
	}
	return nil
}

// RequireText returns an ErrInvalidRecord error naming field when value is empty.
func RequireText(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidRecord, field)
	}
	return nil
}

// UniqueTags drops empty and duplicate tags, keeping first-seen order.
// Always returns a fresh slice.
func UniqueTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t == "" || slices.Contains(out, t) {
			continue
		}
		out = append(out, t)
	}
	return out
}
