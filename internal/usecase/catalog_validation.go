package usecase

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	minCatalogNameLen        = 3
	minCatalogDescriptionLen = 10
)

// validateCatalogEntry checks the constraints shared by payment methods and
// payment types. Lengths are counted in characters after trimming.
func validateCatalogEntry(name, description string) (string, string, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if utf8.RuneCountInString(name) < minCatalogNameLen {
		return "", "", fmt.Errorf("%w: name must have at least %d characters", ErrValidation, minCatalogNameLen)
	}
	if utf8.RuneCountInString(description) < minCatalogDescriptionLen {
		return "", "", fmt.Errorf("%w: description must have at least %d characters", ErrValidation, minCatalogDescriptionLen)
	}
	return name, description, nil
}
