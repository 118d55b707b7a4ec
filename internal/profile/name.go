package profile

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"

	"github.com/osse101/skillforge/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var nameRule = fmt.Sprintf("required,max=%d", MaxNameLength)

// NormalizeName trims surrounding whitespace and checks the length rule.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if err := validate.Var(name, nameRule); err != nil {
		return "", fmt.Errorf("%w: %q must be 1-%d characters", domain.ErrInvalidProfileName, name, MaxNameLength)
	}
	return name, nil
}

// SameName compares profile names the way uniqueness is enforced: Unicode case
// folding, so "Hero", "HERO" and "hero" collide.
func SameName(a, b string) bool {
	// cases.Caser keeps state and is not safe for concurrent use
	fold := cases.Fold()
	return fold.String(strings.TrimSpace(a)) == fold.String(strings.TrimSpace(b))
}
