package taxonomy

import (
	"fmt"
	"strings"
)

// ValidationError 검증 실패
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the structural constraints of a taxonomy
func Validate(t *Taxonomy) error {
	if len(t.Categories) == 0 {
		return ValidationError{"categories", "at least one category required"}
	}

	seen := make(map[string]struct{}, len(t.Categories))
	for i, c := range t.Categories {
		field := fmt.Sprintf("categories[%d]", i)

		if strings.TrimSpace(c.ID) == "" {
			return ValidationError{field + ".id", "required"}
		}
		if _, dup := seen[c.ID]; dup {
			return ValidationError{field + ".id", fmt.Sprintf("duplicate id %q", c.ID)}
		}
		seen[c.ID] = struct{}{}

		if len(c.Keywords) == 0 {
			return ValidationError{field + ".keywords", "at least one keyword required"}
		}
		for j, kw := range c.Keywords {
			if strings.TrimSpace(kw) == "" {
				return ValidationError{fmt.Sprintf("%s.keywords[%d]", field, j), "must not be empty"}
			}
		}

		if strings.TrimSpace(c.Explanation) == "" {
			return ValidationError{field + ".explanation", "required"}
		}
	}

	return nil
}
