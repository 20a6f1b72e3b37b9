package model

import "strings"

// LedgerAccount is a row in masters/ledgers.csv: a named bucket in the
// chart of accounts. The hierarchy fields place it under the global
// taxonomy; ParentLedgerID nests it under another tenant ledger instead.
type LedgerAccount struct {
	ID             string // uuid
	Name           string // unique, case-insensitive for lookups
	Category       string
	Group          string
	SubGroup1      string
	SubGroup2      string
	SubGroup3      string
	ParentLedgerID string // empty = parented on the taxonomy path
}

// HierarchyPath returns the non-empty taxonomy levels above the ledger,
// stopping at the first gap. A missing intermediate level truncates the
// path rather than leaving a hole.
func (a LedgerAccount) HierarchyPath() []string {
	var path []string
	for _, level := range []string{a.Category, a.Group, a.SubGroup1, a.SubGroup2, a.SubGroup3} {
		if strings.TrimSpace(level) == "" {
			break
		}
		path = append(path, level)
	}
	return path
}
