package services

import (
	"fmt"
	"strings"
)

const (
	maxTags      = 10
	maxTagLength = 20
)

// normalizeTags lower-cases and trims every tag, drops tags that end up
// empty, and collapses duplicates while preserving first-seen order.
// Too many tags or an over-long tag is rejected as invalid input; the limits
// apply to the normalized values.
func normalizeTags(tags []string) ([]string, error) {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))

	for _, tag := range tags {
		t := strings.ToLower(strings.TrimSpace(tag))
		if t == "" {
			continue
		}
		if len(t) > maxTagLength {
			return nil, fmt.Errorf("%w: tag %q exceeds %d characters", ErrInvalidInput, t, maxTagLength)
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		normalized = append(normalized, t)
	}

	if len(normalized) > maxTags {
		return nil, fmt.Errorf("%w: at most %d tags allowed", ErrInvalidInput, maxTags)
	}

	return normalized, nil
}
