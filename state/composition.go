package state

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"fanation-admin/client"
	"fanation-admin/models"
	"fanation-admin/service"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CompositionPhase is the composition view's state machine phase.
type CompositionPhase string

const (
	PhaseIdle          CompositionPhase = "idle"
	PhaseLoadingPieces CompositionPhase = "loading"
	PhaseError         CompositionPhase = "error"
	PhaseReady         CompositionPhase = "ready"
	PhaseCompositing   CompositionPhase = "compositing"
)

// CompositionViewModel is the snapshot the composition view renders from.
type CompositionViewModel struct {
	Phase    CompositionPhase `json:"phase"`
	Pieces   []models.Piece   `json:"pieces"`
	Error    string           `json:"error,omitempty"`
	HasImage bool             `json:"hasImage"`
}

// Composition drives the image composition view: it loads the selected
// pieces, keeps the ordered layer list, and recomputes the composite
// whenever order or membership changes.
//
// Phases: Idle -> LoadingPieces -> {Error | Ready};
// Ready -> Compositing -> Ready on every layer change.
type Composition struct {
	api      client.RecortesAPI
	composer service.ComposerServiceInterface
	logger   *zap.Logger

	mu         sync.Mutex
	phase      CompositionPhase
	pieces     []models.Piece
	image      []byte
	errMsg     string
	generation uint64
}

// NewComposition creates an idle composition state.
func NewComposition(api client.RecortesAPI, composer service.ComposerServiceInterface, logger *zap.Logger) *Composition {
	return &Composition{
		api:      api,
		composer: composer,
		logger:   logger,
		phase:    PhaseIdle,
	}
}

// Enter starts a composition session for the given ordered SKU selection.
// An empty selection is a fatal error. Pieces are fetched concurrently and
// the initial layer order is ascending displayOrder (lower order = lower
// layer).
func (c *Composition) Enter(ctx context.Context, skus []string) {
	if len(skus) == 0 {
		c.mu.Lock()
		c.phase = PhaseError
		c.errMsg = "Nenhuma peça selecionada para visualização."
		c.pieces = nil
		c.image = nil
		c.mu.Unlock()
		return
	}

	c.mu.Lock()
	c.phase = PhaseLoadingPieces
	c.errMsg = ""
	c.image = nil
	c.mu.Unlock()

	pieces := make([]models.Piece, len(skus))
	g, gctx := errgroup.WithContext(ctx)
	for i, sku := range skus {
		g.Go(func() error {
			piece, err := c.api.GetRecorteBySKU(gctx, sku)
			if err != nil {
				return fmt.Errorf("piece %s: %w", sku, err)
			}
			pieces[i] = *piece
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		c.logger.Warn("failed to load selected pieces", zap.Error(err))
		c.mu.Lock()
		c.phase = PhaseError
		c.errMsg = "Erro ao carregar informações das peças selecionadas."
		c.pieces = nil
		c.mu.Unlock()
		return
	}

	sort.SliceStable(pieces, func(i, j int) bool {
		return pieces[i].DisplayOrder < pieces[j].DisplayOrder
	})

	c.mu.Lock()
	c.phase = PhaseReady
	c.pieces = pieces
	c.mu.Unlock()

	c.recompose(ctx)
}

// MoveLayer moves the layer at index from to index to with splice
// semantics: the element is removed and re-inserted, shifting the layers
// in between by one position. Out-of-range indexes are rejected.
func (c *Composition) MoveLayer(ctx context.Context, from, to int) error {
	c.mu.Lock()
	if from < 0 || from >= len(c.pieces) || to < 0 || to >= len(c.pieces) {
		c.mu.Unlock()
		return fmt.Errorf("layer index out of range")
	}
	if from == to {
		c.mu.Unlock()
		return nil
	}
	c.pieces = SpliceMove(c.pieces, from, to)
	c.mu.Unlock()

	c.recompose(ctx)
	return nil
}

// RemoveLayer deletes the layer with the given piece id from the sequence.
// displayOrder is not renumbered; the field is not persisted by this view.
func (c *Composition) RemoveLayer(ctx context.Context, pieceID string) {
	c.mu.Lock()
	kept := c.pieces[:0]
	for _, piece := range c.pieces {
		if piece.ID != pieceID {
			kept = append(kept, piece)
		}
	}
	c.pieces = kept
	c.mu.Unlock()

	c.recompose(ctx)
}

// Image returns the current composite PNG, if one was produced.
func (c *Composition) Image() ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.image) == 0 {
		return nil, false
	}
	return c.image, true
}

// Snapshot returns the current view model.
func (c *Composition) Snapshot() CompositionViewModel {
	c.mu.Lock()
	defer c.mu.Unlock()
	pieces := make([]models.Piece, len(c.pieces))
	copy(pieces, c.pieces)
	return CompositionViewModel{
		Phase:    c.phase,
		Pieces:   pieces,
		Error:    c.errMsg,
		HasImage: len(c.image) > 0,
	}
}

// recompose recomputes the composite for the current layer list. A newer
// recompose supersedes a slower older one. Composite failures clear the
// output image and surface an error; the layer list stays editable.
func (c *Composition) recompose(ctx context.Context) {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.phase = PhaseCompositing
	pieces := make([]models.Piece, len(c.pieces))
	copy(pieces, c.pieces)
	c.mu.Unlock()

	image, err := c.composer.Compose(ctx, pieces)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return
	}
	c.phase = PhaseReady
	if err != nil {
		c.logger.Warn("composite failed", zap.Error(err))
		c.image = nil
		c.errMsg = "Erro ao gerar a imagem composta."
		return
	}
	c.image = image
	c.errMsg = ""
}

// SpliceMove returns the sequence with the element at from removed and
// re-inserted at to, preserving all other relative orderings. A swap would
// produce a different, incorrect result when moving across more than one
// position.
func SpliceMove(pieces []models.Piece, from, to int) []models.Piece {
	moved := pieces[from]
	out := append(pieces[:from:from], pieces[from+1:]...)
	out = append(out, models.Piece{})
	copy(out[to+1:], out[to:])
	out[to] = moved
	return out
}
