// Package store provides the synchronous key-value persistence boundary.
// Record collections are serialized as JSON arrays under one key per record
// kind; the core logic touches the store only at hydrate and after each
// mutation.
package store

// Keys under which the record collections are persisted.
const (
	KeyTransactions = "transactions"
	KeySales        = "bolos"
	KeyInvestments  = "investments"
)

// Store is the key-value interface consumed by the services. Get reports
// whether the key was present; a missing key is not an error.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
