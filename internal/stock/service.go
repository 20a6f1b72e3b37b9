// Package stock provides lookup over the stock item masters, persisted
// as masters/stock-items.csv. Its main job is resolving GST rates for
// voucher lines that carry none.
package stock

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bahikhata-dev/bahikhata/internal/model"
)

// Service provides in-memory lookup over stock items by name.
type Service struct {
	items  []model.StockItem
	byName map[string]model.StockItem
}

// NewService creates a Service from a slice of stock items.
func NewService(items []model.StockItem) *Service {
	byName := make(map[string]model.StockItem, len(items))
	for _, item := range items {
		byName[strings.ToLower(item.Name)] = item
	}
	return &Service{items: items, byName: byName}
}

// Load reads masters/stock-items.csv from a books root. A missing file
// yields an empty Service.
func Load(booksRoot string) (*Service, error) {
	path := filepath.Join(booksRoot, "masters", "stock-items.csv")
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return NewService(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening stock masters: %w", err)
	}
	defer f.Close()

	items, err := ReadItems(f)
	if err != nil {
		return nil, fmt.Errorf("reading stock masters: %w", err)
	}
	return NewService(items), nil
}

// All returns all stock items.
func (s *Service) All() []model.StockItem {
	return s.items
}

// Get returns a stock item by name, case-insensitively.
func (s *Service) Get(name string) (model.StockItem, bool) {
	item, ok := s.byName[strings.ToLower(name)]
	return item, ok
}

// GSTRate implements posting.RateResolver.
func (s *Service) GSTRate(item string) (decimal.Decimal, bool) {
	it, ok := s.Get(item)
	if !ok {
		return decimal.Zero, false
	}
	return it.GSTRate, true
}

// Save writes the stock masters to masters/stock-items.csv.
func (s *Service) Save(booksRoot string) error {
	dir := filepath.Join(booksRoot, "masters")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating masters dir: %w", err)
	}

	path := filepath.Join(dir, "stock-items.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating stock masters file: %w", err)
	}
	defer f.Close()

	if err := WriteItems(f, s.items); err != nil {
		return fmt.Errorf("writing stock masters: %w", err)
	}
	return nil
}
