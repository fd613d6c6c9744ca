package service

import (
	"strings"

	"wordthink/internal/dictionary"
)

// ResolveSenseID picks the sense id a new think is attached to.
// An explicit request must match one of the word's senses. Without one the first
// sense carrying an id wins, and UnresolvedSenseID is returned when none does.
func ResolveSenseID(requested string, senses []dictionary.Sense) (string, error) {
	requested = strings.TrimSpace(requested)

	if requested != "" {
		for _, s := range senses {
			if s.ID != nil && *s.ID == requested {
				return requested, nil
			}
		}
		return "", ErrInvalidSenseReference
	}

	for _, s := range senses {
		if s.ID != nil {
			return *s.ID, nil
		}
	}
	return UnresolvedSenseID, nil
}
