package dto

import (
	"sort"

	"github.com/jsamuelsen/rashi-tree-guide/internal/app"
	"github.com/jsamuelsen/rashi-tree-guide/internal/catalog"
	"github.com/jsamuelsen/rashi-tree-guide/internal/domain"
)

// RashiKeyURI binds the :key path segment of a single-rashi lookup.
type RashiKeyURI struct {
	Key string `uri:"key" json:"key" validate:"required,rashikey"`
}

// RashiKey returns the bound key.
func (u RashiKeyURI) RashiKey() domain.RashiKey {
	return domain.RashiKey(u.Key)
}

// RashiResponse is one catalog rashi.
type RashiResponse struct {
	Key          string `json:"key"`
	Label        string `json:"label"`
	Vedic        string `json:"vedic"`
	NativeLabel  string `json:"native_label"`
	EnglishName  string `json:"englishName"`
	DisplayLabel string `json:"display_label"`
	Symbol       string `json:"symbol"`
	Element      string `json:"element"`
	RulingPlanet string `json:"ruling_planet"`
	Color        string `json:"color"`
	Image        string `json:"image,omitempty"`
	SignNumber   int    `json:"sign_number"`
}

// NewRashiResponse converts a domain rashi.
func NewRashiResponse(r domain.Rashi) RashiResponse {
	return RashiResponse{
		Key:          string(r.Key),
		Label:        r.Label,
		Vedic:        r.Vedic,
		NativeLabel:  r.NativeLabel,
		EnglishName:  r.EnglishName,
		DisplayLabel: r.DisplayLabel(),
		Symbol:       r.Symbol,
		Element:      string(r.Element),
		RulingPlanet: r.RulingPlanet,
		Color:        r.Color,
		Image:        r.Image,
		SignNumber:   r.SignNumber(),
	}
}

// RashiListResponse wraps the catalog list.
type RashiListResponse struct {
	Rashis []RashiResponse `json:"rashis"`
	Count  int             `json:"count"`
}

// NewRashiListResponse converts the catalog list, keeping its order.
func NewRashiListResponse(rashis []domain.Rashi) RashiListResponse {
	out := make([]RashiResponse, 0, len(rashis))
	for _, r := range rashis {
		out = append(out, NewRashiResponse(r))
	}

	return RashiListResponse{Rashis: out, Count: len(out)}
}

// TreeResponse is one tree. IsPrimary is only set inside a recommendation.
type TreeResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ScientificName string `json:"scientific_name"`
	Description    string `json:"description"`
	CareTips       string `json:"care_tips"`
	IdealRegion    string `json:"ideal_region,omitempty"`
	Image          string `json:"image,omitempty"`
	IsPrimary      bool   `json:"is_primary,omitempty"`
}

// NewTreeResponse converts a domain tree.
func NewTreeResponse(t domain.Tree) TreeResponse {
	return TreeResponse{
		ID:             t.ID,
		Name:           t.Name,
		ScientificName: t.ScientificName,
		Description:    t.Description,
		CareTips:       t.CareTips,
		IdealRegion:    t.IdealRegion,
		Image:          t.Image,
		IsPrimary:      t.IsPrimary,
	}
}

// NewTreeResponses converts a resolution result. The result is never nil so
// an empty recommendation encodes as [].
func NewTreeResponses(trees []domain.Tree) []TreeResponse {
	out := make([]TreeResponse, 0, len(trees))
	for _, t := range trees {
		out = append(out, NewTreeResponse(t))
	}

	return out
}

// TreesByRashiResponse is the browse-flow recommendation.
type TreesByRashiResponse struct {
	RashiKey   string         `json:"rashi_key"`
	RashiLabel string         `json:"rashi_label"`
	Trees      []TreeResponse `json:"trees"`
}

// NewTreesByRashiResponse converts the browse-flow answer.
func NewTreesByRashiResponse(t app.TreesByRashi) TreesByRashiResponse {
	return TreesByRashiResponse{
		RashiKey:   string(t.Key),
		RashiLabel: t.Label,
		Trees:      NewTreeResponses(t.Trees),
	}
}

// CatalogReportResponse is the operator view of catalog integrity.
type CatalogReportResponse struct {
	Healthy      bool           `json:"healthy"`
	Rashis       int            `json:"rashis"`
	Trees        int            `json:"trees"`
	Mappings     int            `json:"mappings"`
	Problems     []string       `json:"problems"`
	UnusedTrees  []string       `json:"unused_trees"`
	TreesByRashi map[string]int `json:"trees_by_rashi"`
}

// NewCatalogReportResponse converts an integrity report. Problems are sorted
// so the output is stable.
func NewCatalogReportResponse(r catalog.Report) CatalogReportResponse {
	problems := make([]string, 0, len(r.Problems))
	for _, p := range r.Problems {
		problems = append(problems, p.String())
	}

	sort.Strings(problems)

	perRashi := make(map[string]int, len(r.TreesByRashi))
	for k, n := range r.TreesByRashi {
		perRashi[string(k)] = n
	}

	unused := r.UnusedTrees
	if unused == nil {
		unused = []string{}
	}

	return CatalogReportResponse{
		Healthy:      r.Healthy(),
		Rashis:       r.Rashis,
		Trees:        r.Trees,
		Mappings:     r.Mappings,
		Problems:     problems,
		UnusedTrees:  unused,
		TreesByRashi: perRashi,
	}
}
