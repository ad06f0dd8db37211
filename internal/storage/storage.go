// Package storage provides the durable string-keyed value store the cart
// persists into, the server-side analogue of the storefront's local storage.
package storage

// Store is a string-keyed durable value store.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	// Set writes the value for key.
	Set(key, value string) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
}
