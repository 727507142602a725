// Package catalog holds the immutable rashi and tree tables and resolves the
// trees recommended for a rashi.
//
// A Catalog is built once at process start and is safe for concurrent reads.
package catalog

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/jsamuelsen/rashi-tree-guide/internal/domain"
)

// ProblemKind classifies a dangling catalog reference.
type ProblemKind string

// Problem kinds reported by the integrity check.
const (
	ProblemUnknownRashi    ProblemKind = "unknown_rashi"
	ProblemMissingTree     ProblemKind = "missing_tree"
	ProblemUnmappedRashi   ProblemKind = "unmapped_rashi"
	ProblemDuplicateTreeID ProblemKind = "duplicate_tree_id"
)

// Problem is a single integrity violation.
type Problem struct {
	Kind   ProblemKind
	Rashi  domain.RashiKey
	TreeID string
}

func (p Problem) String() string {
	switch p.Kind {
	case ProblemUnknownRashi:
		return fmt.Sprintf("mapping for unknown rashi %q", p.Rashi)
	case ProblemMissingTree:
		return fmt.Sprintf("%s references missing tree %q", p.Rashi, p.TreeID)
	case ProblemUnmappedRashi:
		return fmt.Sprintf("rashi %s has no mapping", p.Rashi)
	case ProblemDuplicateTreeID:
		return fmt.Sprintf("duplicate tree id %q", p.TreeID)
	default:
		return string(p.Kind)
	}
}

// IntegrityError lists every dangling reference found while building a Catalog.
type IntegrityError struct {
	Problems []Problem
}

// Error implements the error interface.
func (e *IntegrityError) Error() string {
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = p.String()
	}

	return fmt.Sprintf("catalog integrity: %d problem(s): %s", len(e.Problems), strings.Join(parts, "; "))
}

// Catalog is the read-only rashi, tree and mapping table.
type Catalog struct {
	rashis   []domain.Rashi
	trees    []domain.Tree
	mappings []domain.RashiTreeMapping

	rashiByKey   map[domain.RashiKey]domain.Rashi
	treeByID     map[string]domain.Tree
	mappingByKey map[domain.RashiKey]domain.RashiTreeMapping

	problems []Problem
}

type options struct {
	rashis   []domain.Rashi
	trees    []domain.Tree
	mappings []domain.RashiTreeMapping
	lenient  bool
}

// Option configures New.
type Option func(*options)

// WithData replaces the shipped tables.
func WithData(rashis []domain.Rashi, trees []domain.Tree, mappings []domain.RashiTreeMapping) Option {
	return func(o *options) {
		o.rashis = rashis
		o.trees = trees
		o.mappings = mappings
	}
}

// WithLenientIntegrity builds the catalog even when references dangle.
// Problems stay available through Report.
func WithLenientIntegrity() Option {
	return func(o *options) {
		o.lenient = true
	}
}

// New builds a Catalog from the shipped tables unless WithData is given.
// It returns an *IntegrityError when a mapping references an unknown rashi
// or tree, unless WithLenientIntegrity is set.
func New(opts ...Option) (*Catalog, error) {
	o := options{
		rashis:   shippedRashis(),
		trees:    shippedTrees(),
		mappings: shippedMappings(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Catalog{
		rashis:       slices.Clone(o.rashis),
		trees:        slices.Clone(o.trees),
		mappings:     cloneMappings(o.mappings),
		rashiByKey:   make(map[domain.RashiKey]domain.Rashi, len(o.rashis)),
		treeByID:     make(map[string]domain.Tree, len(o.trees)),
		mappingByKey: make(map[domain.RashiKey]domain.RashiTreeMapping, len(o.mappings)),
	}

	for _, r := range c.rashis {
		c.rashiByKey[r.Key] = r
	}

	for _, t := range c.trees {
		if _, dup := c.treeByID[t.ID]; dup {
			c.problems = append(c.problems, Problem{Kind: ProblemDuplicateTreeID, TreeID: t.ID})

			continue
		}

		t.IsPrimary = false
		c.treeByID[t.ID] = t
	}

	for _, m := range c.mappings {
		c.mappingByKey[m.Rashi] = m
	}

	c.problems = append(c.problems, c.check()...)

	if len(c.problems) > 0 && !o.lenient {
		return nil, &IntegrityError{Problems: slices.Clone(c.problems)}
	}

	return c, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := New()
	if err != nil {
		panic(err)
	}

	return c
})

// Default returns the process-wide catalog built from the shipped tables.
// It panics if the shipped tables fail the integrity check.
func Default() *Catalog {
	return defaultCatalog()
}

func (c *Catalog) check() []Problem {
	var problems []Problem

	for _, m := range c.mappings {
		if _, ok := c.rashiByKey[m.Rashi]; !ok {
			problems = append(problems, Problem{Kind: ProblemUnknownRashi, Rashi: m.Rashi})
		}

		for _, id := range m.TreeIDs() {
			if _, ok := c.treeByID[id]; !ok {
				problems = append(problems, Problem{Kind: ProblemMissingTree, Rashi: m.Rashi, TreeID: id})
			}
		}
	}

	for _, r := range c.rashis {
		if _, ok := c.mappingByKey[r.Key]; !ok {
			problems = append(problems, Problem{Kind: ProblemUnmappedRashi, Rashi: r.Key})
		}
	}

	return problems
}

// Rashis returns all rashis in catalog order.
func (c *Catalog) Rashis() []domain.Rashi {
	return slices.Clone(c.rashis)
}

// Rashi looks up a rashi by key.
func (c *Catalog) Rashi(key domain.RashiKey) (domain.Rashi, bool) {
	r, ok := c.rashiByKey[key]

	return r, ok
}

// Tree looks up a tree by id.
func (c *Catalog) Tree(id string) (domain.Tree, bool) {
	t, ok := c.treeByID[id]

	return t, ok
}

// Trees returns every tree in catalog order.
func (c *Catalog) Trees() []domain.Tree {
	return slices.Clone(c.trees)
}

// Mapping returns the tree mapping for a rashi.
func (c *Catalog) Mapping(key domain.RashiKey) (domain.RashiTreeMapping, bool) {
	m, ok := c.mappingByKey[key]
	if !ok {
		return domain.RashiTreeMapping{}, false
	}

	m.Alternates = slices.Clone(m.Alternates)

	return m, true
}

// Report summarises the catalog for operators.
type Report struct {
	Rashis       int
	Trees        int
	Mappings     int
	Problems     []Problem
	UnusedTrees  []string
	TreesByRashi map[domain.RashiKey]int
}

// Healthy reports whether no integrity problems were found.
func (r Report) Healthy() bool {
	return len(r.Problems) == 0
}

// Report returns the integrity report for the catalog.
func (c *Catalog) Report() Report {
	used := make(map[string]bool, len(c.treeByID))
	perRashi := make(map[domain.RashiKey]int, len(c.mappings))

	for _, m := range c.mappings {
		for _, id := range m.TreeIDs() {
			used[id] = true
		}

		perRashi[m.Rashi] = len(c.Resolve(m.Rashi))
	}

	var unused []string

	for _, t := range c.trees {
		if !used[t.ID] {
			unused = append(unused, t.ID)
		}
	}

	return Report{
		Rashis:       len(c.rashis),
		Trees:        len(c.treeByID),
		Mappings:     len(c.mappings),
		Problems:     slices.Clone(c.problems),
		UnusedTrees:  unused,
		TreesByRashi: perRashi,
	}
}

func cloneMappings(in []domain.RashiTreeMapping) []domain.RashiTreeMapping {
	out := make([]domain.RashiTreeMapping, len(in))
	for i, m := range in {
		m.Alternates = slices.Clone(m.Alternates)
		out[i] = m
	}

	return out
}
