package catalog

import "github.com/jsamuelsen/rashi-tree-guide/internal/domain"

// Resolve returns the trees recommended for a rashi: the primary tree first,
// flagged IsPrimary, then the alternates in mapping order. Unknown keys yield
// an empty list and ids missing from the tree table are skipped.
func (c *Catalog) Resolve(key domain.RashiKey) []domain.Tree {
	m, ok := c.mappingByKey[key]
	if !ok {
		return []domain.Tree{}
	}

	trees := make([]domain.Tree, 0, len(m.Alternates)+1)

	if t, ok := c.treeByID[m.Primary]; ok {
		t.IsPrimary = true
		trees = append(trees, t)
	}

	for _, id := range m.Alternates {
		if t, ok := c.treeByID[id]; ok {
			trees = append(trees, t)
		}
	}

	return trees
}

// TreesFor returns the display label and resolved trees for a rashi key.
// An unknown key is echoed back as its own label with no trees.
func (c *Catalog) TreesFor(key domain.RashiKey) (string, []domain.Tree) {
	r, ok := c.rashiByKey[key]
	if !ok {
		return string(key), c.Resolve(key)
	}

	return r.DisplayLabel(), c.Resolve(key)
}
