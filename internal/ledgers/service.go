// Package ledgers provides in-memory lookup over the tenant's ledger
// masters, persisted as masters/ledgers.csv.
package ledgers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/bahikhata-dev/bahikhata/internal/model"
)

// Service provides in-memory lookup over the ledger masters. Names are
// unique case-insensitively.
type Service struct {
	ledgers []model.LedgerAccount
	byName  map[string]model.LedgerAccount
	byID    map[string]model.LedgerAccount
}

// NewService creates a Service from a slice of ledger accounts.
func NewService(accounts []model.LedgerAccount) *Service {
	byName := make(map[string]model.LedgerAccount, len(accounts))
	byID := make(map[string]model.LedgerAccount, len(accounts))
	for _, a := range accounts {
		byName[strings.ToLower(a.Name)] = a
		byID[a.ID] = a
	}
	return &Service{ledgers: accounts, byName: byName, byID: byID}
}

// Load reads masters/ledgers.csv from a books root and returns a Service.
// A missing file yields an empty Service.
func Load(booksRoot string) (*Service, error) {
	path := filepath.Join(booksRoot, "masters", "ledgers.csv")
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return NewService(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger masters: %w", err)
	}
	defer f.Close()

	accts, err := ReadLedgers(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger masters: %w", err)
	}
	return NewService(accts), nil
}

// All returns all ledger accounts.
func (s *Service) All() []model.LedgerAccount {
	return s.ledgers
}

// Names returns every ledger name, in master order.
func (s *Service) Names() []string {
	names := make([]string, 0, len(s.ledgers))
	for _, a := range s.ledgers {
		names = append(names, a.Name)
	}
	return names
}

// ByName returns a ledger by name, case-insensitively.
func (s *Service) ByName(name string) (model.LedgerAccount, bool) {
	a, ok := s.byName[strings.ToLower(name)]
	return a, ok
}

// ByID returns a ledger by its ID.
func (s *Service) ByID(id string) (model.LedgerAccount, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// Exists reports whether a ledger name exists, case-insensitively.
func (s *Service) Exists(name string) bool {
	_, ok := s.byName[strings.ToLower(name)]
	return ok
}

// Add appends a new ledger, assigning it an ID. Duplicate names (any
// casing) are rejected.
func (s *Service) Add(a model.LedgerAccount) (model.LedgerAccount, error) {
	if strings.TrimSpace(a.Name) == "" {
		return model.LedgerAccount{}, fmt.Errorf("ledger name is required")
	}
	if s.Exists(a.Name) {
		return model.LedgerAccount{}, fmt.Errorf("ledger %q already exists", a.Name)
	}
	if a.ParentLedgerID != "" {
		if _, ok := s.byID[a.ParentLedgerID]; !ok {
			return model.LedgerAccount{}, fmt.Errorf("parent ledger %q not found", a.ParentLedgerID)
		}
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	s.ledgers = append(s.ledgers, a)
	s.byName[strings.ToLower(a.Name)] = a
	s.byID[a.ID] = a
	return a, nil
}

// Save writes the ledger masters to masters/ledgers.csv.
func (s *Service) Save(booksRoot string) error {
	dir := filepath.Join(booksRoot, "masters")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating masters dir: %w", err)
	}

	path := filepath.Join(dir, "ledgers.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating ledger masters file: %w", err)
	}
	defer f.Close()

	if err := WriteLedgers(f, s.ledgers); err != nil {
		return fmt.Errorf("writing ledger masters: %w", err)
	}
	return nil
}
