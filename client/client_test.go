package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fanation-admin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, 5*time.Second, staticTokens(token), zap.NewNop())
}

func TestClientAttachesBearerToken(t *testing.T) {
	var authHeader string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":[],"pagination":{}}`))
	}, "tk-123")

	_, err := c.ListRecortes(context.Background(), models.RecortesParams{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tk-123", authHeader)
}

func TestClientOmitsEmptyToken(t *testing.T) {
	var hadAuth bool
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, hadAuth = r.Header["Authorization"]
		w.Write([]byte(`{"success":true,"data":[],"pagination":{}}`))
	}, "")

	_, err := c.ListRecortes(context.Background(), models.RecortesParams{})
	require.NoError(t, err)
	assert.False(t, hadAuth)
}

func TestClientUnauthorizedFiresHook(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"Token inválido"}`))
	}, "tk-stale")

	var hookFired bool
	c.OnUnauthorized(func() { hookFired = true })

	_, err := c.GetRecorteByID(context.Background(), "r1")

	require.Error(t, err)
	assert.True(t, hookFired)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Token inválido", apiErr.Message)
}

func TestClientSuccessFalseOn200(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":"SKU já cadastrado"}`))
	}, "tk")

	_, err := c.CreateRecorte(context.Background(), models.CreatePieceData{
		Title:    "Aba",
		SKU:      "100",
		ImageURL: "https://cdn/aba.png",
	})

	require.Error(t, err)
	assert.Equal(t, "SKU já cadastrado", err.Error(), "success:false on a 2xx is still a failure")
}

func TestClientEnvelopeMessagePrecedence(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"message wins", `{"message":"msg","error":"err"}`, "msg"},
		{"error when no message", `{"error":"err"}`, "err"},
		{"fallback when neither", `{}`, "Erro ao buscar recorte"},
		{"fallback on junk", `not json`, "Erro ao buscar recorte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(tt.body))
			}, "tk")

			_, err := c.GetRecorteByID(context.Background(), "r1")
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestGetRecorteBySKUEncodesMarker(t *testing.T) {
	var requestURI string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requestURI = r.RequestURI
		w.Write([]byte(`{"success":true,"data":{"id":"r1","nome":"Aba","sku":"#100","status":true}}`))
	}, "tk")

	piece, err := c.GetRecorteBySKU(context.Background(), "#100")

	require.NoError(t, err)
	assert.Equal(t, "/recortes/sku/%23100", requestURI,
		"the SKU marker travels percent-encoded")
	assert.Equal(t, "#100", piece.SKU)
}

func TestListRecortesQueryAndMapping(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "10", q.Get("limit"))
		assert.Equal(t, "aba", q.Get("search"))
		assert.Equal(t, "ordem", q.Get("sortBy"))
		assert.Equal(t, "desc", q.Get("sortOrder"))
		assert.Equal(t, "true", q.Get("status"))
		assert.Equal(t, "linho", q.Get("material"))
		assert.False(t, q.Has("tipoProduto"), "empty filters are not sent")

		w.Write([]byte(`{
			"success": true,
			"data": [
				{"id":"r1","nome":"Aba frontal","sku":"#100","ordem":1,"status":true,"urlImagem":"https://cdn/1.png"},
				{"id":"r2","nome":"Lateral","sku":"#200","ordem":2,"status":false}
			],
			"pagination": {"page":2,"limit":10,"total":21,"totalPages":3}
		}`))
	}, "tk")

	active := true
	resp, err := c.ListRecortes(context.Background(), models.RecortesParams{
		Page:      2,
		Limit:     10,
		Search:    "aba",
		SortBy:    "ordem",
		SortOrder: "desc",
		Material:  "linho",
		Status:    &active,
	})

	require.NoError(t, err)
	require.Len(t, resp.Pieces, 2)
	assert.Equal(t, 21, resp.Total)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, "#100", resp.Pieces[0].SKU)
	assert.Equal(t, models.StatusActive, resp.Pieces[0].Status)
	assert.Equal(t, models.StatusInactive, resp.Pieces[1].Status)
}

func TestUploadImageMultipart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "aba.png", header.Filename)

		assert.Equal(t, "trucker", r.FormValue("tipoProduto"))
		assert.Equal(t, "frente", r.FormValue("tipoRecorte"))
		assert.Equal(t, "linho", r.FormValue("material"))
		assert.Equal(t, "laranja", r.FormValue("cor"))

		w.Write([]byte(`{"success":true,"data":{"imageUrl":"https://cdn/aba.png","publicId":"p1","fileName":"aba.png"}}`))
	}, "tk")

	result, err := c.UploadImage(context.Background(), "aba.png", strings.NewReader("fake-bytes"), models.UploadClassification{
		TipoProduto: "trucker",
		TipoRecorte: "frente",
		Material:    "linho",
		Cor:         "laranja",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn/aba.png", result.ImageURL)
	assert.Equal(t, "p1", result.PublicID)
}

func TestDeleteRecorte(t *testing.T) {
	var method, path string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		w.Write([]byte(`{"success":true}`))
	}, "tk")

	require.NoError(t, c.DeleteRecorte(context.Background(), "r1"))
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/recortes/r1", path)
}

func TestFetchImageSkipsBearer(t *testing.T) {
	var hadAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadAuth = r.Header["Authorization"]
		w.Write([]byte("raw-image-bytes"))
	}))
	t.Cleanup(server.Close)

	c := New("http://unused", 5*time.Second, staticTokens("tk"), zap.NewNop())

	data, err := c.FetchImage(context.Background(), server.URL+"/img.png")

	require.NoError(t, err)
	assert.Equal(t, []byte("raw-image-bytes"), data)
	assert.False(t, hadAuth, "CDN fetches carry no session token")
}

func TestFetchImageNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	c := New("http://unused", 5*time.Second, staticTokens(""), zap.NewNop())

	_, err := c.FetchImage(context.Background(), server.URL+"/missing.png")
	assert.Error(t, err)
}
