package cart

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"storefront/internal/domain/entity"
)

// storedItem is the on-disk shape of a cart line. It additionally accepts the
// legacy "imageUrl" key used by carts saved before the field was renamed.
type storedItem struct {
	ProductID    uuid.UUID `json:"productId"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	Quantity     int       `json:"quantity"`
	MainImageURL string    `json:"mainImageUrl"`
	LegacyImage  string    `json:"imageUrl,omitempty"`
}

// Store persists a cart to a JSON file, saving on every mutation and loading
// at open, the way the browser cart uses local storage.
type Store struct {
	mu   sync.Mutex
	path string
	cart *Cart
}

// Open loads the cart stored at path, or starts an empty one if the file does
// not exist. Carts written with the legacy image field are migrated and saved
// back once.
func Open(path string) (*Store, error) {
	store := &Store{path: path, cart: New()}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}

		return nil, errors.Wrap(err, "failed to read cart file")
	}

	var stored []storedItem
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, errors.Wrap(err, "failed to decode cart file")
	}

	migrated := false
	items := make([]Item, 0, len(stored))
	for _, s := range stored {
		if s.MainImageURL == "" && s.LegacyImage != "" {
			s.MainImageURL = s.LegacyImage
			migrated = true
		}
		items = append(items, Item{
			ProductID:    s.ProductID,
			Name:         s.Name,
			Price:        s.Price,
			Quantity:     s.Quantity,
			MainImageURL: s.MainImageURL,
		})
	}
	store.cart.replace(items)

	if migrated {
		if err := store.save(); err != nil {
			return nil, err
		}
	}

	return store, nil
}

// Add puts one unit of the product in the cart and saves.
func (s *Store) Add(product *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Add(product)

	return s.save()
}

// SetQuantity updates a line's quantity and saves. Quantities below 1 are
// ignored and nothing is written.
func (s *Store) SetQuantity(productID uuid.UUID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		return nil
	}
	s.cart.SetQuantity(productID, quantity)

	return s.save()
}

// Remove drops a line and saves.
func (s *Store) Remove(productID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Remove(productID)

	return s.save()
}

// Clear empties the cart and saves.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Clear()

	return s.save()
}

// Items returns a copy of the current cart lines.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Items()
}

// Total returns the current cart total.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Total()
}

func (s *Store) save() error {
	items := s.cart.Items()
	stored := make([]storedItem, 0, len(items))
	for _, item := range items {
		stored = append(stored, storedItem{
			ProductID:    item.ProductID,
			Name:         item.Name,
			Price:        item.Price,
			Quantity:     item.Quantity,
			MainImageURL: item.MainImageURL,
		})
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return errors.Wrap(err, "failed to encode cart")
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.Wrap(err, "failed to write cart file")
	}

	return nil
}
