package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"fanation-admin/models"
	"fanation-admin/utils"
)

// Ensure Client implements RecortesAPI
var _ RecortesAPI = (*Client)(nil)

// ListRecortes lists recortes with pagination and filters, mapped to the
// Piece view model.
func (c *Client) ListRecortes(ctx context.Context, params models.RecortesParams) (*models.PieceListResponse, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	if params.SortBy != "" {
		query.Set("sortBy", params.SortBy)
	}
	if params.SortOrder != "" {
		query.Set("sortOrder", params.SortOrder)
	}
	if params.TipoRecorte != "" {
		query.Set("tipoRecorte", params.TipoRecorte)
	}
	if params.TipoProduto != "" {
		query.Set("tipoProduto", params.TipoProduto)
	}
	if params.Material != "" {
		query.Set("material", params.Material)
	}
	if params.Cor != "" {
		query.Set("cor", params.Cor)
	}
	if params.Status != nil {
		query.Set("status", strconv.FormatBool(*params.Status))
	}

	path := "/recortes"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var resp models.RecortesListResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp, "Erro ao buscar recortes"); err != nil {
		return nil, err
	}

	return &models.PieceListResponse{
		Pieces:     utils.MapRecortesToPieces(resp.Data),
		Total:      resp.Pagination.Total,
		Page:       resp.Pagination.Page,
		Limit:      resp.Pagination.Limit,
		TotalPages: resp.Pagination.TotalPages,
	}, nil
}

// GetRecorteByID fetches a single recorte by id.
func (c *Client) GetRecorteByID(ctx context.Context, id string) (*models.Piece, error) {
	var resp models.RecorteResponse
	if err := c.doJSON(ctx, http.MethodGet, "/recortes/"+url.PathEscape(id), nil, &resp, "Erro ao buscar recorte"); err != nil {
		return nil, err
	}
	piece := utils.MapRecorteToPiece(resp.Data)
	return &piece, nil
}

// GetRecorteBySKU fetches a single recorte by SKU. The marker is stripped
// before the SKU is used as a lookup key and re-encoded on the wire.
func (c *Client) GetRecorteBySKU(ctx context.Context, sku string) (*models.Piece, error) {
	var resp models.RecorteResponse
	path := "/recortes/sku/" + utils.EncodeSKUPath(sku)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp, "Erro ao buscar recorte"); err != nil {
		return nil, err
	}
	piece := utils.MapRecorteToPiece(resp.Data)
	return &piece, nil
}

// CreateRecorte creates a recorte from form input.
func (c *Client) CreateRecorte(ctx context.Context, data models.CreatePieceData) (*models.Piece, error) {
	payload, err := utils.MapPieceDataToRecorte(data)
	if err != nil {
		return nil, err
	}

	var resp models.RecorteResponse
	if err := c.doJSON(ctx, http.MethodPost, "/recortes", payload, &resp, "Erro ao criar recorte"); err != nil {
		return nil, err
	}
	piece := utils.MapRecorteToPiece(resp.Data)
	return &piece, nil
}

// UpdateRecorte applies a partial update; omitted fields are not forwarded.
func (c *Client) UpdateRecorte(ctx context.Context, id string, data models.UpdatePieceData) (*models.Piece, error) {
	payload := utils.MapPieceUpdateToRecorte(data)

	var resp models.RecorteResponse
	if err := c.doJSON(ctx, http.MethodPut, "/recortes/"+url.PathEscape(id), payload, &resp, "Erro ao atualizar recorte"); err != nil {
		return nil, err
	}
	piece := utils.MapRecorteToPiece(resp.Data)
	return &piece, nil
}

// UpdateRecorteImage replaces the image of a recorte (multipart).
func (c *Client) UpdateRecorteImage(ctx context.Context, id, fileName string, image io.Reader) (*models.Piece, error) {
	body, contentType, err := buildImageForm(fileName, image, nil)
	if err != nil {
		return nil, err
	}

	var resp models.RecorteResponse
	path := "/recortes/" + url.PathEscape(id) + "/image"
	if err := c.doMultipart(ctx, http.MethodPut, path, body, contentType, &resp, "Erro ao atualizar imagem"); err != nil {
		return nil, err
	}
	piece := utils.MapRecorteToPiece(resp.Data)
	return &piece, nil
}

// DeleteRecorte deletes a recorte by id.
func (c *Client) DeleteRecorte(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/recortes/"+url.PathEscape(id), nil, nil, "Erro ao excluir recorte")
}

// UploadImage uploads an image with its classification fields and returns
// the hosted image reference.
func (c *Client) UploadImage(ctx context.Context, fileName string, image io.Reader, class models.UploadClassification) (*models.UploadResult, error) {
	fields := map[string]string{
		"tipoProduto": class.TipoProduto,
		"tipoRecorte": class.TipoRecorte,
		"material":    class.Material,
		"cor":         class.Cor,
	}
	body, contentType, err := buildImageForm(fileName, image, fields)
	if err != nil {
		return nil, err
	}

	var resp models.UploadImageResponse
	if err := c.doMultipart(ctx, http.MethodPost, "/recortes/upload", body, contentType, &resp, "Erro ao fazer upload da imagem"); err != nil {
		return nil, err
	}

	return &models.UploadResult{
		ImageURL: resp.Data.ImageURL,
		PublicID: resp.Data.PublicID,
		FileName: resp.Data.FileName,
	}, nil
}

// FetchImage downloads raw image bytes from an absolute URL. Used by the
// composition engine; the bearer token is not attached since piece images
// live on a public CDN.
func (c *Client) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image endpoint returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	return data, nil
}

// buildImageForm assembles a multipart body with an "image" file part and
// optional extra fields.
func buildImageForm(fileName string, image io.Reader, fields map[string]string) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("image", fileName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, "", fmt.Errorf("failed to copy image data: %w", err)
	}

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", key, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}
