package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"fanation-admin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fetcherFunc adapts a function to ImageFetcher.
type fetcherFunc func(ctx context.Context, url string) ([]byte, error)

func (f fetcherFunc) FetchImage(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}

// solidPNG encodes a w x h PNG filled with a single opaque color.
func solidPNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func mapFetcher(images map[string][]byte) fetcherFunc {
	return func(ctx context.Context, url string) ([]byte, error) {
		data, ok := images[url]
		if !ok {
			return nil, errors.New("no such image")
		}
		return data, nil
	}
}

func TestComposeLayerOrder(t *testing.T) {
	red := solidPNG(t, 8, 8, color.RGBA{R: 255, A: 255})
	blue := solidPNG(t, 8, 8, color.RGBA{B: 255, A: 255})
	fetcher := mapFetcher(map[string][]byte{
		"https://cdn/red.png":  red,
		"https://cdn/blue.png": blue,
	})
	composer := NewComposerService(fetcher, time.Second, zap.NewNop())

	out, err := composer.Compose(context.Background(), []models.Piece{
		{Title: "Fundo", ImageURL: "https://cdn/red.png"},
		{Title: "Frente", ImageURL: "https://cdn/blue.png"},
	})
	require.NoError(t, err)

	img := decodePNG(t, out)
	r, g, b, _ := img.At(4, 4).RGBA()
	assert.Zero(t, r>>8)
	assert.Zero(t, g>>8)
	assert.Equal(t, uint32(255), b>>8, "the later layer paints over the earlier one")
}

func TestComposeCanvasSizedToFirstUsableImage(t *testing.T) {
	small := solidPNG(t, 4, 6, color.RGBA{R: 255, A: 255})
	big := solidPNG(t, 32, 32, color.RGBA{B: 255, A: 255})
	fetcher := mapFetcher(map[string][]byte{
		"https://cdn/small.png": small,
		"https://cdn/big.png":   big,
	})
	composer := NewComposerService(fetcher, time.Second, zap.NewNop())

	out, err := composer.Compose(context.Background(), []models.Piece{
		{Title: "Base", ImageURL: "https://cdn/small.png"},
		{Title: "Topo", ImageURL: "https://cdn/big.png"},
	})
	require.NoError(t, err)

	img := decodePNG(t, out)
	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy(), "the canvas takes the first usable layer's dimensions")
}

func TestComposeSkipsFailedLayers(t *testing.T) {
	red := solidPNG(t, 8, 8, color.RGBA{R: 255, A: 255})
	fetcher := mapFetcher(map[string][]byte{
		"https://cdn/red.png": red,
		"https://cdn/bad.png": []byte("not a png"),
	})
	composer := NewComposerService(fetcher, time.Second, zap.NewNop())

	out, err := composer.Compose(context.Background(), []models.Piece{
		{Title: "Sem imagem"},
		{Title: "Quebrada", ImageURL: "https://cdn/missing.png"},
		{Title: "Corrompida", ImageURL: "https://cdn/bad.png"},
		{Title: "Boa", ImageURL: "https://cdn/red.png"},
	})
	require.NoError(t, err, "failed layers are skipped, not fatal")

	img := decodePNG(t, out)
	r, _, _, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(255), r>>8)
}

func TestComposeNoValidImages(t *testing.T) {
	fetcher := fetcherFunc(func(ctx context.Context, url string) ([]byte, error) {
		return nil, errors.New("unreachable")
	})
	composer := NewComposerService(fetcher, time.Second, zap.NewNop())

	_, err := composer.Compose(context.Background(), []models.Piece{
		{Title: "A", ImageURL: "https://cdn/a.png"},
		{Title: "B"},
	})
	assert.ErrorIs(t, err, ErrNoValidImages)

	_, err = composer.Compose(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoValidImages, "an empty layer list has nothing to paint")
}

func TestComposeResizesMismatchedLayers(t *testing.T) {
	base := solidPNG(t, 10, 10, color.RGBA{R: 255, A: 255})
	overlay := solidPNG(t, 40, 20, color.RGBA{G: 255, A: 255})
	fetcher := mapFetcher(map[string][]byte{
		"https://cdn/base.png":    base,
		"https://cdn/overlay.png": overlay,
	})
	composer := NewComposerService(fetcher, time.Second, zap.NewNop())

	out, err := composer.Compose(context.Background(), []models.Piece{
		{Title: "Base", ImageURL: "https://cdn/base.png"},
		{Title: "Overlay", ImageURL: "https://cdn/overlay.png"},
	})
	require.NoError(t, err)

	img := decodePNG(t, out)
	assert.Equal(t, 10, img.Bounds().Dx())
	_, g, _, _ := img.At(5, 5).RGBA()
	assert.Equal(t, uint32(255), g>>8, "the overlay is scaled to cover the full canvas")
}

func TestComposeHonorsImageTimeout(t *testing.T) {
	fetcher := fetcherFunc(func(ctx context.Context, url string) ([]byte, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(5 * time.Second):
			return nil, errors.New("too slow anyway")
		}
	})
	composer := NewComposerService(fetcher, 10*time.Millisecond, zap.NewNop())

	start := time.Now()
	_, err := composer.Compose(context.Background(), []models.Piece{
		{Title: "Lenta", ImageURL: "https://cdn/slow.png"},
	})
	assert.ErrorIs(t, err, ErrNoValidImages)
	assert.Less(t, time.Since(start), 2*time.Second, "slow fetches are cut off by the per-image timeout")
}
