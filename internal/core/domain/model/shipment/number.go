package shipment

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"time"

	"shipping/internal/pkg/errs"
)

var numberPattern = regexp.MustCompile(`^SHP-\d{13,}-\d{4}$`)

// NewShipmentNumber generates a candidate shipment number of the form
// SHP-<unix-ms>-<4-digit-random>. The random suffix alone does not guarantee
// uniqueness; the create handler checks the candidate against storage and
// regenerates on collision.
func NewShipmentNumber(now time.Time) string {
	return fmt.Sprintf("SHP-%d-%04d", now.UnixMilli(), rand.IntN(10000))
}

// ValidateShipmentNumber checks the SHP-<unix-ms>-<suffix> format.
func ValidateShipmentNumber(number string) error {
	if !numberPattern.MatchString(number) {
		return errs.NewValueIsInvalidError("shipmentNumber")
	}
	return nil
}
