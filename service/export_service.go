package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"fanation-admin/client"
	"fanation-admin/models"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

const itemsPerSheetPage = 9

// ExportService renders the filtered pieces catalog as an HTML contact
// sheet and screenshots it to PNG with headless Chrome.
// Implements ExportServiceInterface.
type ExportService struct {
	api     client.RecortesAPI
	baseURL string // address chromedp navigates to for the render page
	chrome  string // optional CHROME_PATH override
	logger  *zap.Logger
}

// NewExportService creates a new ExportService instance.
func NewExportService(api client.RecortesAPI, baseURL, chromePath string, logger *zap.Logger) *ExportService {
	return &ExportService{
		api:     api,
		baseURL: baseURL,
		chrome:  chromePath,
		logger:  logger,
	}
}

// Ensure ExportService implements ExportServiceInterface
var _ ExportServiceInterface = (*ExportService)(nil)

// detectChromePath detects the path to Chrome/Chromium executable
// Checks the configured override first, then common installation paths
func (s *ExportService) detectChromePath() string {
	if s.chrome != "" {
		if _, err := os.Stat(s.chrome); err == nil {
			return s.chrome
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sheetItem is a single piece cell of the contact sheet template.
type sheetItem struct {
	Title       string
	SKU         string
	Status      models.PieceStatus
	ImageBase64 template.URL
}

// paginateSheet splits items into pages of itemsPerSheetPage each.
func paginateSheet(items []sheetItem) [][]sheetItem {
	var pages [][]sheetItem
	for i := 0; i < len(items); i += itemsPerSheetPage {
		end := i + itemsPerSheetPage
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, items[i:end])
	}
	return pages
}

// RenderCatalogHTML renders the contact sheet for the given pieces. Piece
// images are inlined as base64 data URIs so the rendered page has no
// external dependencies; a piece whose image cannot be fetched renders
// without one.
func (s *ExportService) RenderCatalogHTML(ctx context.Context, pieces []models.Piece) (string, error) {
	items := make([]sheetItem, 0, len(pieces))
	for _, piece := range pieces {
		item := sheetItem{
			Title:  piece.Title,
			SKU:    piece.SKU,
			Status: piece.Status,
		}
		if piece.ImageURL != "" {
			data, err := s.api.FetchImage(ctx, piece.ImageURL)
			if err != nil {
				s.logger.Warn("failed to fetch catalog image",
					zap.String("piece", piece.Title),
					zap.Error(err))
			} else {
				uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
				item.ImageBase64 = template.URL(uri)
			}
		}
		items = append(items, item)
	}

	templatePath := filepath.Join("templates", "catalog.html")
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	templateData := struct {
		Pages     [][]sheetItem
		Generated string
	}{
		Pages:     paginateSheet(items),
		Generated: time.Now().Format("2006-01-02"),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// GeneratePNG navigates headless Chrome to the catalog render page with the
// given raw query string and screenshots the full sheet.
func (s *ExportService) GeneratePNG(ctx context.Context, rawQuery string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	chromePath := s.detectChromePath()
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := s.baseURL + "/admin/catalog/render"
	if rawQuery != "" {
		renderURL += "?" + rawQuery
	}

	var pngBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 1123),
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(1*time.Second), // Wait for layout after images decode
		chromedp.FullScreenshot(&pngBuf, 100),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate catalog PNG: %w", err)
	}

	s.logger.Info("catalog sheet exported", zap.Int("bytes", len(pngBuf)))
	return pngBuf, nil
}

// GeneratePDF renders the catalog sheet as an A4 PDF. Page breaks between
// sheet pages come from the template's CSS.
func (s *ExportService) GeneratePDF(ctx context.Context, rawQuery string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	chromePath := s.detectChromePath()
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := s.baseURL + "/admin/catalog/render"
	if rawQuery != "" {
		renderURL += "?" + rawQuery
	}

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(1*time.Second), // Wait for layout after images decode
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// 210mm x 297mm in inches; margins come from the template CSS.
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate catalog PDF: %w", err)
	}

	s.logger.Info("catalog sheet exported", zap.Int("bytes", len(pdfBuf)))
	return pdfBuf, nil
}
