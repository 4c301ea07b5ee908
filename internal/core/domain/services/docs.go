// Package services contains stateless domain services that coordinate
// multiple aggregates. The RateCalculator combines catalog methods and zones
// with a destination to price the available shipping options.
package services
