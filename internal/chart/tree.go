package chart

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/bahikhata-dev/bahikhata/internal/model"
)

// Node is one selectable entry in the chart display tree. Children are
// arena indices owned exclusively by this node; Parent is -1 for roots.
type Node struct {
	Name     string
	Level    int
	Parent   int
	Children []int
	IsCustom bool
	LedgerID string // set when the node is a tenant ledger
}

// Tree is the built chart: an arena of nodes plus ordered root indices.
// It is rebuilt from scratch on every load, never mutated in place.
type Tree struct {
	Nodes []Node
	Roots []int
}

// Path returns the names from the root down to node i, inclusive. This is
// the taxonomy path a new ledger created under the node would carry.
func (t *Tree) Path(i int) []string {
	var rev []string
	for ; i >= 0; i = t.Nodes[i].Parent {
		rev = append(rev, t.Nodes[i].Name)
	}
	path := make([]string, 0, len(rev))
	for j := len(rev) - 1; j >= 0; j-- {
		path = append(path, rev[j])
	}
	return path
}

// childKey locates a node by its parent index and normalized name, so the
// builder never concatenates path strings.
type childKey struct {
	parent int
	name   string
}

type builder struct {
	nodes    []Node
	roots    []int
	index    map[childKey]int
	byLedger map[string]int // ledger ID -> arena index
	log      logrus.FieldLogger
}

// Build merges the global taxonomy with the tenant's ledgers into a
// display tree. Ledgers parented on other ledgers nest beneath them;
// orphaned parent references leave the child unattached.
func Build(taxonomy []TaxonomyRow, ledgers []model.LedgerAccount, log logrus.FieldLogger) *Tree {
	if log == nil {
		log = logrus.StandardLogger()
	}
	b := &builder{
		index:    make(map[childKey]int),
		byLedger: make(map[string]int),
		log:      log,
	}

	for _, row := range taxonomy {
		b.insertPath(row.Path(), "")
	}

	// Taxonomy-parented tenant ledgers first, so custom parents exist
	// before their children are attached.
	var nested []model.LedgerAccount
	for _, l := range ledgers {
		if l.ParentLedgerID != "" {
			nested = append(nested, l)
			continue
		}
		b.insertPath(append(l.HierarchyPath(), l.Name), l.ID)
	}
	b.attachNested(nested)

	roots := b.collectRoots()
	return &Tree{Nodes: b.nodes, Roots: roots}
}

// insertPath materializes every level of one path, linking each new node
// under its parent, and marks the deepest node custom when ledgerID is set.
func (b *builder) insertPath(path []string, ledgerID string) {
	if len(path) == 0 {
		return
	}
	parent := -1
	for depth, name := range path {
		idx := b.child(parent, name, depth)
		parent = idx
	}
	if ledgerID != "" {
		b.nodes[parent].IsCustom = true
		b.nodes[parent].LedgerID = ledgerID
		b.byLedger[ledgerID] = parent
	}
}

// child returns the node named name under parent, creating it if absent.
func (b *builder) child(parent int, name string, level int) int {
	key := childKey{parent: parent, name: strings.ToLower(name)}
	if idx, ok := b.index[key]; ok {
		return idx
	}

	idx := len(b.nodes)
	b.nodes = append(b.nodes, Node{Name: name, Level: level, Parent: parent})
	b.index[key] = idx
	if parent < 0 {
		b.roots = append(b.roots, idx)
	} else {
		b.nodes[parent].Children = append(b.nodes[parent].Children, idx)
	}
	return idx
}

// attachNested hangs ledgers with a parent ledger one level beneath their
// parent node. Passes repeat until no progress so chains of custom
// ledgers resolve regardless of input order.
func (b *builder) attachNested(ledgers []model.LedgerAccount) {
	pending := ledgers
	for len(pending) > 0 {
		var unresolved []model.LedgerAccount
		for _, l := range pending {
			parentIdx, ok := b.byLedger[l.ParentLedgerID]
			if !ok {
				unresolved = append(unresolved, l)
				continue
			}
			idx := b.child(parentIdx, l.Name, b.nodes[parentIdx].Level+1)
			b.nodes[idx].IsCustom = true
			b.nodes[idx].LedgerID = l.ID
			b.byLedger[l.ID] = idx
		}
		if len(unresolved) == len(pending) {
			for _, l := range unresolved {
				b.log.WithFields(logrus.Fields{
					"ledger": l.Name,
					"parent": l.ParentLedgerID,
				}).Warn("ledger parent not found, leaving unattached")
			}
			return
		}
		pending = unresolved
	}
}

// rootPriority is the fixed display order for top-level categories, by
// normalized name. Anything unlisted sorts alphabetically after these.
var rootPriority = map[string]int{
	"owner's fund": 0,
	"npo fund":     1,
	"liabilitie":   2,
	"asset":        3,
	"income":       4,
	"expenditure":  5,
}

// normalizeRoot collapses case and singular/plural so "Asset" and
// "Assets" are the same root.
func normalizeRoot(name string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), "s")
}

// collectRoots de-duplicates top-level nodes by normalized name, merging a
// duplicate's children into the first occurrence, then applies the fixed
// category ordering. The seen set is local to this step.
func (b *builder) collectRoots() []int {
	seen := make(map[string]int)
	var roots []int
	for _, idx := range b.roots {
		norm := normalizeRoot(b.nodes[idx].Name)
		if keep, dup := seen[norm]; dup {
			b.nodes[keep].Children = append(b.nodes[keep].Children, b.nodes[idx].Children...)
			for _, c := range b.nodes[idx].Children {
				b.nodes[c].Parent = keep
			}
			b.nodes[idx].Children = nil
			continue
		}
		seen[norm] = idx
		roots = append(roots, idx)
	}

	sort.SliceStable(roots, func(i, j int) bool {
		ni := normalizeRoot(b.nodes[roots[i]].Name)
		nj := normalizeRoot(b.nodes[roots[j]].Name)
		pi, iok := rootPriority[ni]
		pj, jok := rootPriority[nj]
		switch {
		case iok && jok:
			return pi < pj
		case iok:
			return true
		case jok:
			return false
		default:
			return ni < nj
		}
	})
	return roots
}
