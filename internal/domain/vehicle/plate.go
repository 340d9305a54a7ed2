package vehicle

import (
	"strings"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
)

// NormalizePlate upper-cases the plate and collapses inner whitespace.
func NormalizePlate(plate string) (string, error) {
	p := strings.ToUpper(strings.Join(strings.Fields(plate), " "))
	if p == "" {
		return "", httperr.ErrBusinessf(httperr.CodeInvalidRequest, "plate number is required")
	}
	return p, nil
}
