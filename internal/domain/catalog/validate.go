package catalog

import (
	"math"
	"strings"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
)

// Normalize trims the name and rounds the rate to cents, rejecting blanks and negatives.
func Normalize(name string, laborRate float64) (string, float64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", 0, httperr.ErrBusinessf(httperr.CodeInvalidRequest, "service name is required")
	}
	if laborRate < 0 || math.IsNaN(laborRate) || math.IsInf(laborRate, 0) {
		return "", 0, httperr.ErrBusinessf(httperr.CodeInvalidRequest, "labor rate must be a non-negative amount")
	}
	return name, models.RoundMoney(laborRate), nil
}
