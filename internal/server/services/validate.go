package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/airlineadmin/internal/common"
)

// field is one named form value with its column limit.
type field struct {
	name     string
	value    string
	max      int
	required bool
}

func checkFields(fields ...field) error {
	for _, f := range fields {
		if f.required && strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", common.ErrValidation, f.name)
		}
		if utf8.RuneCountInString(f.value) > f.max {
			return fmt.Errorf("%w: %s longer than %d characters", common.ErrValidation, f.name, f.max)
		}
	}
	return nil
}

func parseInt(name, v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", common.ErrInvalidNumeric, name, v)
	}
	return n, nil
}

// parseFloat reads a finite decimal. Blank input yields def when def is
// non-nil and is an error otherwise.
func parseFloat(name, v string, def *float64) (float64, error) {
	v = strings.TrimSpace(v)
	if v == "" && def != nil {
		return *def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %s %q", common.ErrInvalidNumeric, name, v)
	}
	return f, nil
}

func ptr[T any](v T) *T { return &v }
