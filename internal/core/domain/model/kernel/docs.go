// Package kernel contains the shared value objects of the shipping domain:
// the UUID identifier wrapper and the Destination used for zone matching and
// rate calculation. Value objects in this package are immutable and must be
// created through their constructor functions.
package kernel
