package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/rashi-tree-guide/internal/catalog"
	"github.com/jsamuelsen/rashi-tree-guide/internal/domain"
	"github.com/jsamuelsen/rashi-tree-guide/internal/ports"
)

// TreesByRashi is the browse-flow answer for one rashi.
type TreesByRashi struct {
	Key   domain.RashiKey
	Label string
	Trees []domain.Tree
}

// CatalogService serves the static catalog to the browse flow.
type CatalogService struct {
	catalog ports.Catalog
	logger  *slog.Logger
}

// NewCatalogService creates a catalog service.
func NewCatalogService(c ports.Catalog, logger *slog.Logger) *CatalogService {
	if c == nil {
		panic("app: CatalogService requires a Catalog")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &CatalogService{catalog: c, logger: logger}
}

// ListRashis returns all twelve rashis in zodiac order.
func (s *CatalogService) ListRashis(context.Context) []domain.Rashi {
	return s.catalog.Rashis()
}

// GetRashi returns one rashi or a not found error.
func (s *CatalogService) GetRashi(_ context.Context, key domain.RashiKey) (domain.Rashi, error) {
	r, ok := s.catalog.Rashi(key)
	if !ok {
		return domain.Rashi{}, domain.NewNotFoundError("rashi", string(key))
	}

	return r, nil
}

// TreesByRashi never fails: an unknown key comes back with itself as the
// label and no trees.
func (s *CatalogService) TreesByRashi(ctx context.Context, key domain.RashiKey) TreesByRashi {
	label, trees := s.catalog.TreesFor(key)
	if len(trees) == 0 {
		s.logger.DebugContext(ctx, "no trees for rashi", slog.String("rashi", string(key)))
	}

	return TreesByRashi{Key: key, Label: label, Trees: trees}
}

// GetTree returns one tree or a not found error.
func (s *CatalogService) GetTree(_ context.Context, id string) (domain.Tree, error) {
	t, ok := s.catalog.Tree(id)
	if !ok {
		return domain.Tree{}, domain.NewNotFoundError("tree", id)
	}

	return t, nil
}

// IntegrityReport returns the catalog integrity report.
func (s *CatalogService) IntegrityReport(context.Context) catalog.Report {
	return s.catalog.Report()
}
