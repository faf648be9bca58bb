package state

import (
	"context"
	"strings"
	"sync"

	"fanation-admin/client"
	"fanation-admin/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Status tabs of the pieces list view.
const (
	TabAll      = "todos"
	TabActive   = "ativos"
	TabInactive = "inativos"
)

// Pieces sort fields (server-side names).
const (
	SortByOrdem     = "ordem"
	SortByNome      = "nome"
	SortByCreatedAt = "createdAt"
)

const piecesPageSize = 10

// StructuredFilters is the closed filter set of the pieces list view.
type StructuredFilters struct {
	TipoRecorte string `json:"tipoRecorte"`
	TipoProduto string `json:"tipoProduto"`
	Material    string `json:"material"`
	Cor         string `json:"cor"`
}

// empty reports whether no structured filter is set.
func (f StructuredFilters) empty() bool {
	return f == StructuredFilters{}
}

// PieceListViewModel is the snapshot a list view renders from.
type PieceListViewModel struct {
	Pieces        []models.Piece     `json:"pieces"`
	Page          int                `json:"page"`
	TotalPages    int                `json:"totalPages"`
	Total         int                `json:"total"`
	SortBy        string             `json:"sortBy"`
	SortOrder     string             `json:"sortOrder"`
	ActiveTab     string             `json:"activeTab"`
	SearchTerm    string             `json:"searchTerm"`
	Filters       StructuredFilters  `json:"filters"`
	Counts        models.PieceCounts `json:"counts"`
	Loading       bool               `json:"loading"`
	LoadingCounts bool               `json:"loadingCounts"`
	Error         string             `json:"error,omitempty"`
	HasAnyFilter  bool               `json:"hasAnyFilter"`
}

// PieceListState is the single source of truth for the pieces list view's
// query parameters. Changing the search term, the status tab or any
// structured filter resets the page to 1; page navigation and sort-only
// changes never do.
//
// Every load carries a generation token; a response is applied only while
// its generation is still current, so a slow stale response can never
// overwrite fresher state.
type PieceListState struct {
	api    client.RecortesAPI
	logger *zap.Logger

	mu         sync.Mutex
	query      Query
	activeTab  string
	searchTerm string
	filters    StructuredFilters

	pieces     []models.Piece
	total      int
	totalPages int
	counts     models.PieceCounts

	loading       bool
	loadingCounts bool
	errMsg        string
	generation    uint64
}

// NewPieceListState creates a pieces list state with the default query
// (sorted by display order ascending, all-statuses tab).
func NewPieceListState(api client.RecortesAPI, logger *zap.Logger) *PieceListState {
	return &PieceListState{
		api:       api,
		logger:    logger,
		query:     NewQuery(SortByOrdem),
		activeTab: TabAll,
	}
}

// SetSearch updates the free-text search term. The page resets to 1 only
// when the term actually changes.
func (s *PieceListState) SetSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if term == s.searchTerm {
		return
	}
	s.searchTerm = term
	s.query.SetPage(1)
}

// SetTab switches the active/inactive/all tab, resetting the page.
func (s *PieceListState) SetTab(tab string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tab != TabAll && tab != TabActive && tab != TabInactive {
		tab = TabAll
	}
	if tab == s.activeTab {
		return
	}
	s.activeTab = tab
	s.query.SetPage(1)
}

// ApplyFilters replaces the structured filter set. The page resets to 1
// only when a filter value actually changes.
func (s *PieceListState) ApplyFilters(filters StructuredFilters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if filters == s.filters {
		return
	}
	s.filters = filters
	s.query.SetPage(1)
}

// ResetFilters clears the structured filter set.
func (s *PieceListState) ResetFilters() {
	s.ApplyFilters(StructuredFilters{})
}

// ClearAll clears search, structured filters and the status tab.
func (s *PieceListState) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := s.searchTerm != "" || !s.filters.empty() || s.activeTab != TabAll
	s.searchTerm = ""
	s.filters = StructuredFilters{}
	s.activeTab = TabAll
	if changed {
		s.query.SetPage(1)
	}
}

// SetPage navigates to a page.
func (s *PieceListState) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.SetPage(page)
}

// SetSort selects or toggles a sort field.
func (s *PieceListState) SetSort(field string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.SetSort(field)
}

// HasAnyFilter reports whether any structured filter or the search term is
// non-empty; drives the "clear all" affordance.
func (s *PieceListState) HasAnyFilter() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasAnyFilterLocked()
}

func (s *PieceListState) hasAnyFilterLocked() bool {
	return !s.filters.empty() || strings.TrimSpace(s.searchTerm) != ""
}

// params builds the remote query for the current state. status selects the
// tab unless overridden by the caller (nil keeps the tab semantics).
func (s *PieceListState) paramsLocked() models.RecortesParams {
	params := models.RecortesParams{
		Page:        s.query.Page,
		Limit:       piecesPageSize,
		SortBy:      s.query.SortBy,
		SortOrder:   s.query.SortOrder,
		TipoRecorte: s.filters.TipoRecorte,
		TipoProduto: s.filters.TipoProduto,
		Material:    s.filters.Material,
		Cor:         s.filters.Cor,
	}
	if term := strings.TrimSpace(s.searchTerm); term != "" {
		params.Search = term
	}
	switch s.activeTab {
	case TabActive:
		active := true
		params.Status = &active
	case TabInactive:
		inactive := false
		params.Status = &inactive
	}
	return params
}

// Load fetches the current page from the remote API and applies it unless
// a newer load has started since. Failures retain a view-level error
// string; there is no automatic retry.
func (s *PieceListState) Load(ctx context.Context) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.loading = true
	s.errMsg = ""
	params := s.paramsLocked()
	s.mu.Unlock()

	resp, err := s.api.ListRecortes(ctx, params)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		// A newer load superseded this one; drop the stale response.
		return
	}
	s.loading = false
	if err != nil {
		s.logger.Warn("failed to load pieces", zap.Error(err))
		s.errMsg = "Erro ao carregar peças. Tente novamente."
		s.pieces = nil
		s.total = 0
		s.totalPages = 0
		return
	}
	s.pieces = resp.Pieces
	s.total = resp.Total
	s.totalPages = resp.TotalPages
}

// LoadCounts fetches the three aggregate tab counts concurrently, sharing
// the current search and structured filters and differing only in status.
// The joined result is applied all-or-nothing; on any failure the stale
// counts are retained and the error only logged.
func (s *PieceListState) LoadCounts(ctx context.Context) {
	s.mu.Lock()
	base := s.paramsLocked()
	base.Page = 1
	base.Limit = 1
	base.Status = nil
	base.SortBy = ""
	base.SortOrder = ""
	s.loadingCounts = true
	s.mu.Unlock()

	var counts models.PieceCounts
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		resp, err := s.api.ListRecortes(gctx, base)
		if err != nil {
			return err
		}
		counts.Total = resp.Total
		return nil
	})
	g.Go(func() error {
		params := base
		active := true
		params.Status = &active
		resp, err := s.api.ListRecortes(gctx, params)
		if err != nil {
			return err
		}
		counts.Active = resp.Total
		return nil
	})
	g.Go(func() error {
		params := base
		inactive := false
		params.Status = &inactive
		resp, err := s.api.ListRecortes(gctx, params)
		if err != nil {
			return err
		}
		counts.Inactive = resp.Total
		return nil
	})

	err := g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadingCounts = false
	if err != nil {
		s.logger.Warn("failed to load piece counts, retaining stale values", zap.Error(err))
		return
	}
	s.counts = counts
}

// Snapshot returns the current view model.
func (s *PieceListState) Snapshot() PieceListViewModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return PieceListViewModel{
		Pieces:        s.pieces,
		Page:          s.query.Page,
		TotalPages:    s.totalPages,
		Total:         s.total,
		SortBy:        s.query.SortBy,
		SortOrder:     s.query.SortOrder,
		ActiveTab:     s.activeTab,
		SearchTerm:    s.searchTerm,
		Filters:       s.filters,
		Counts:        s.counts,
		Loading:       s.loading,
		LoadingCounts: s.loadingCounts,
		Error:         s.errMsg,
		HasAnyFilter:  s.hasAnyFilterLocked(),
	}
}
