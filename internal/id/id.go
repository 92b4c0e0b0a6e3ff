// Package id generates record identifiers.
package id

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewRecord returns a time-ordered UUIDv7, falling back to a random UUIDv4
// if v7 generation fails. Used for transaction and investment IDs.
func NewRecord() string {
	u, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return u.String()
}

// NewSale builds a sale record ID from the batch submission time plus the
// item and unit indexes. IDs are unique within one batch submission.
func NewSale(batch time.Time, item, unit int) string {
	return fmt.Sprintf("%d-%d-%d", batch.UnixMilli(), item, unit)
}
