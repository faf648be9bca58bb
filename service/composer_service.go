package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"time"

	"fanation-admin/models"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Composite failure modes. Per-layer image failures are not errors; they
// are skipped and logged.
var (
	// ErrNoValidImages means no piece in the layer list had a usable image.
	ErrNoValidImages = errors.New("no valid images to display")
)

// ImageFetcher downloads raw image bytes from an absolute URL.
type ImageFetcher interface {
	FetchImage(ctx context.Context, url string) ([]byte, error)
}

// ComposerService renders an ordered list of piece layers into a single
// composite PNG. Later layers occlude earlier ones.
// Implements ComposerServiceInterface.
type ComposerService struct {
	fetcher      ImageFetcher
	imageTimeout time.Duration
	logger       *zap.Logger
}

// NewComposerService creates a new ComposerService instance.
func NewComposerService(fetcher ImageFetcher, imageTimeout time.Duration, logger *zap.Logger) *ComposerService {
	return &ComposerService{
		fetcher:      fetcher,
		imageTimeout: imageTimeout,
		logger:       logger,
	}
}

// Ensure ComposerService implements ComposerServiceInterface
var _ ComposerServiceInterface = (*ComposerService)(nil)

// Compose paints the pieces in order onto a canvas sized to the first piece
// that has an image resource, and returns the result encoded as PNG.
//
// Image bytes are prefetched concurrently, but decoding and drawing stay
// strictly sequential in layer order; the paint order is the correctness
// requirement. A piece whose image fails to fetch or decode is skipped.
func (s *ComposerService) Compose(ctx context.Context, pieces []models.Piece) ([]byte, error) {
	layers := s.prefetch(ctx, pieces)

	canvas, err := s.newCanvas(layers)
	if err != nil {
		return nil, err
	}
	bounds := canvas.Bounds()

	// Draw each layer scaled to the full canvas, in order.
	painted := 0
	for _, layer := range layers {
		if layer.data == nil {
			continue
		}
		img, err := imaging.Decode(bytes.NewReader(layer.data))
		if err != nil {
			s.logger.Warn("skipping layer with undecodable image",
				zap.String("piece", layer.piece.Title),
				zap.Error(err))
			continue
		}
		if img.Bounds().Dx() != bounds.Dx() || img.Bounds().Dy() != bounds.Dy() {
			img = imaging.Resize(img, bounds.Dx(), bounds.Dy(), imaging.Lanczos)
		}
		draw.Draw(canvas, bounds, img, image.Point{}, draw.Over)
		painted++
	}

	if painted == 0 {
		return nil, ErrNoValidImages
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("failed to encode composite: %w", err)
	}

	s.logger.Info("composite rendered",
		zap.Int("layers", painted),
		zap.Int("width", bounds.Dx()),
		zap.Int("height", bounds.Dy()))
	return buf.Bytes(), nil
}

// fetchedLayer pairs a piece with its prefetched image bytes (nil on a
// fetch failure or when the piece carries no image).
type fetchedLayer struct {
	piece models.Piece
	data  []byte
}

// prefetch downloads all layer images concurrently. Failures are per-layer
// and non-fatal; the slice preserves the input layer order.
func (s *ComposerService) prefetch(ctx context.Context, pieces []models.Piece) []fetchedLayer {
	layers := make([]fetchedLayer, len(pieces))

	g, gctx := errgroup.WithContext(ctx)
	for i, piece := range pieces {
		layers[i].piece = piece
		if piece.ImageURL == "" {
			continue
		}
		g.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(gctx, s.imageTimeout)
			defer cancel()

			data, err := s.fetcher.FetchImage(fetchCtx, piece.ImageURL)
			if err != nil {
				s.logger.Warn("failed to load layer image",
					zap.String("piece", piece.Title),
					zap.String("url", piece.ImageURL),
					zap.Error(err))
				return nil
			}
			layers[i].data = data
			return nil
		})
	}
	// Workers never return errors; per-layer failures are fail-soft.
	_ = g.Wait()

	return layers
}

// newCanvas sizes the output to the dimensions of the first layer that has
// decodable image bytes.
func (s *ComposerService) newCanvas(layers []fetchedLayer) (*image.RGBA, error) {
	for _, layer := range layers {
		if layer.data == nil {
			continue
		}
		cfg, _, err := image.DecodeConfig(bytes.NewReader(layer.data))
		if err != nil {
			continue
		}
		return image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height)), nil
	}
	return nil, ErrNoValidImages
}
