package models

import "math"

// RoundMoney rounds to cents.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
