// Package cart owns the list of cart line items. The store is the single
// source of truth for cart state: it hydrates from durable storage at
// construction, persists after every mutation, and notifies subscribers
// so dependent views can refresh.
package cart

import (
	"encoding/json"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/velas-starlight/storefront/internal/domain"
	"github.com/velas-starlight/storefront/internal/storage"
)

// StorageKey is the durable-storage key the cart serializes under.
const StorageKey = "starlight_cart"

type Store struct {
	mu        sync.Mutex
	items     []domain.CartItem
	storage   storage.Store
	logger    *zap.Logger
	listeners []func()

	fallbackPrice float64
}

// NewStore creates a cart store hydrated from durable storage. A missing
// or unparsable stored value degrades to an empty cart.
func NewStore(st storage.Store, fallbackPrice float64, logger *zap.Logger) *Store {
	s := &Store{
		storage:       st,
		logger:        logger,
		fallbackPrice: fallbackPrice,
	}
	s.items = s.load()
	return s
}

// Subscribe registers a callback invoked after every mutation, once the
// new state has been persisted. Replaces ad-hoc cross-view syncing.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// AddItem adds a candidate item to the cart. If an item with the same
// configuration (title, type, size, fragrance) already exists, its
// quantity is incremented instead; otherwise the candidate gets an id and
// timestamp and is appended. Returns the resulting item.
func (s *Store) AddItem(candidate domain.CartItem) domain.CartItem {
	s.mu.Lock()

	if candidate.Quantity < 1 {
		candidate.Quantity = 1
	}
	if !validPrice(candidate.Price) {
		s.logger.Warn("Invalid unit price, using fallback",
			zap.String("title", candidate.Title),
			zap.Float64("price", candidate.Price),
			zap.Float64("fallback", s.fallbackPrice),
		)
		candidate.Price = s.fallbackPrice
	}

	var result domain.CartItem
	if idx := s.findByKey(candidate.Key()); idx >= 0 {
		s.items[idx].Quantity += candidate.Quantity
		result = s.items[idx]
	} else {
		candidate.ID = newItemID()
		if candidate.AddedAt.IsZero() {
			candidate.AddedAt = time.Now()
		}
		s.items = append(s.items, candidate)
		result = candidate
	}

	s.persist()
	s.mu.Unlock()

	s.notify()
	return result
}

// UpdateQuantity sets the quantity of the item with the given id. A
// quantity of zero or less removes the item. Returns false if the id is
// not in the cart.
func (s *Store) UpdateQuantity(id string, quantity int) bool {
	if quantity <= 0 {
		_, ok := s.RemoveItem(id)
		return ok
	}

	s.mu.Lock()
	idx := s.findByID(id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.items[idx].Quantity = quantity
	s.persist()
	s.mu.Unlock()

	s.notify()
	return true
}

// RemoveItem removes the item with the given id and returns it.
func (s *Store) RemoveItem(id string) (domain.CartItem, bool) {
	s.mu.Lock()
	idx := s.findByID(id)
	if idx < 0 {
		s.mu.Unlock()
		return domain.CartItem{}, false
	}
	removed := s.items[idx]
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.persist()
	s.mu.Unlock()

	s.notify()
	return removed, true
}

// Clear empties the cart. Asking the user for confirmation is the
// caller's concern.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.persist()
	s.mu.Unlock()

	s.notify()
}

// Items returns the cart's line items in insertion order.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of distinct line items.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// TotalUnits returns the sum of quantities across all line items.
func (s *Store) TotalUnits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

func (s *Store) findByKey(key domain.ConfigKey) int {
	for i, item := range s.items {
		if item.Key() == key {
			return i
		}
	}
	return -1
}

func (s *Store) findByID(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// persist writes the current items to durable storage. A write failure is
// logged and the in-memory state stays authoritative for the session.
// Callers must hold s.mu.
func (s *Store) persist() {
	raw, err := json.Marshal(s.itemsOrEmpty())
	if err != nil {
		s.logger.Error("Failed to serialize cart", zap.Error(err))
		return
	}
	if err := s.storage.Set(StorageKey, string(raw)); err != nil {
		s.logger.Error("Failed to persist cart", zap.Error(err))
	}
}

func (s *Store) itemsOrEmpty() []domain.CartItem {
	if s.items == nil {
		return []domain.CartItem{}
	}
	return s.items
}

func (s *Store) load() []domain.CartItem {
	raw, ok, err := s.storage.Get(StorageKey)
	if err != nil {
		s.logger.Error("Failed to read cart from storage, starting empty", zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}

	var items []domain.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.Warn("Corrupt cart in storage, starting empty", zap.Error(err))
		return nil
	}
	return items
}

func (s *Store) notify() {
	s.mu.Lock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// newItemID returns a time-ordered unique id for a cart item.
func newItemID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func validPrice(price float64) bool {
	return price > 0 && !math.IsNaN(price) && !math.IsInf(price, 0)
}
