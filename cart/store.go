// Package cart implements the durable shopping cart owned by a single
// buyer session, plus the checkout submission client.
//
// The cart lives in an embedded BoltDB file under one key: every
// mutation rewrites the serialized line-item list before returning, and
// opening the file again reconstructs the cart exactly as it was
// persisted. An absent key means an empty cart.
package cart

import (
	"encoding/json"
	"errors"
	"time"

	bolt "github.com/boltdb/bolt"

	"agricola-shop/catalog"
	"agricola-shop/models"
)

const (
	bucketName = "cart"
	cartKey    = "items"
)

// ErrProductNotFound is returned by Add when the requested
// (id, category) pair does not exist in the loaded catalog.
var ErrProductNotFound = errors.New("product not found in catalog")

// Store is an ordered collection of line items, unique by
// (product_id, category). Insertion order is display order.
type Store struct {
	db      *bolt.DB
	catalog *catalog.Catalog
	items   []models.LineItem
}

// Open opens (or creates) the cart database at path and rehydrates the
// line items persisted there.
func Open(path string, cat *catalog.Catalog) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	s := &Store{db: db, catalog: cat}

	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		if err != nil {
			return err
		}
		raw := b.Get([]byte(cartKey))
		if raw == nil {
			return nil
		}
		return json.Unmarshal(raw, &s.items)
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Close releases the database file lock.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add puts one unit of the given catalog product into the cart. An
// existing line with the same key gains quantity; a new line snapshots
// the product's current name and price.
func (s *Store) Add(productID int, category models.Category) error {
	product, ok := s.catalog.ByKey(productID, category)
	if !ok {
		return ErrProductNotFound
	}

	if i := s.find(productID, category); i >= 0 {
		s.items[i].Quantity++
		return s.persist()
	}

	s.items = append(s.items, models.LineItem{
		ProductID: product.ID,
		Category:  product.Category,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  1,
	})
	return s.persist()
}

// UpdateQuantity adds delta to the matching line's quantity. A missing
// line is a no-op; a resulting quantity of zero or below removes the
// line entirely.
func (s *Store) UpdateQuantity(productID int, category models.Category, delta int) error {
	i := s.find(productID, category)
	if i < 0 {
		return nil
	}

	s.items[i].Quantity += delta
	if s.items[i].Quantity <= 0 {
		return s.Remove(productID, category)
	}
	return s.persist()
}

// Remove deletes the matching line. Removing an absent line is not an
// error.
func (s *Store) Remove(productID int, category models.Category) error {
	i := s.find(productID, category)
	if i < 0 {
		return nil
	}

	s.items = append(s.items[:i], s.items[i+1:]...)
	return s.persist()
}

// Clear empties the cart.
func (s *Store) Clear() error {
	s.items = nil
	return s.persist()
}

// Total returns the sum of unit price times quantity over all lines.
func (s *Store) Total() float64 {
	total := 0.0
	for _, item := range s.items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

// ItemCount returns the sum of quantities over all lines.
func (s *Store) ItemCount() int {
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Items returns a copy of the current lines in insertion order.
func (s *Store) Items() []models.LineItem {
	out := make([]models.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) find(productID int, category models.Category) int {
	for i, item := range s.items {
		if item.ProductID == productID && item.Category == category {
			return i
		}
	}
	return -1
}

// persist writes the full cart durably before the mutation returns.
func (s *Store) persist() error {
	data, err := json.Marshal(s.items)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(cartKey), data)
	})
}
