// Package money provides monetary rounding helpers.
//
// Amounts are stored and computed as float64 throughout the domain; every
// value that leaves a computation or enters storage passes through Round2 so
// persisted and reported figures are exact to the cent.
package money

import "github.com/shopspring/decimal"

// Round2 rounds v to two decimal places, half away from zero.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
