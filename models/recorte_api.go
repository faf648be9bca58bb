package models

// Server-side shapes of the remote recortes API. Field names follow the
// server contract (Portuguese), the view models translate them.

// RecorteAPIData is a recorte record as returned by the remote API.
type RecorteAPIData struct {
	ID          string `json:"id"`
	Nome        string `json:"nome"`
	SKU         string `json:"sku"`
	Ordem       int    `json:"ordem"`
	Status      bool   `json:"status"`
	TipoRecorte string `json:"tipoRecorte"`
	Posicao     string `json:"posicao"`
	TipoProduto string `json:"tipoProduto"`
	Material    string `json:"material"`
	Cor         string `json:"cor"`
	URLImagem   string `json:"urlImagem"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// RecorteCreateData is the outgoing create payload.
type RecorteCreateData struct {
	Nome        string `json:"nome"`
	Ordem       int    `json:"ordem"`
	SKU         string `json:"sku"`
	TipoRecorte string `json:"tipoRecorte"`
	Posicao     string `json:"posicao"`
	TipoProduto string `json:"tipoProduto"`
	Material    string `json:"material"`
	Cor         string `json:"cor"`
	URLImagem   string `json:"urlImagem"`
	Status      bool   `json:"status"`
}

// RecorteUpdateData is the outgoing partial-update payload. Only fields
// present in the update are serialized; nil pointers are omitted entirely.
type RecorteUpdateData struct {
	Nome        *string `json:"nome,omitempty"`
	Ordem       *int    `json:"ordem,omitempty"`
	TipoRecorte *string `json:"tipoRecorte,omitempty"`
	Posicao     *string `json:"posicao,omitempty"`
	TipoProduto *string `json:"tipoProduto,omitempty"`
	Material    *string `json:"material,omitempty"`
	Cor         *string `json:"cor,omitempty"`
	URLImagem   *string `json:"urlImagem,omitempty"`
	Status      *bool   `json:"status,omitempty"`
}

// Pagination is the pagination block of the remote list envelope.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// RecortesListResponse is the remote list envelope.
type RecortesListResponse struct {
	Success    bool             `json:"success"`
	Data       []RecorteAPIData `json:"data"`
	Pagination Pagination       `json:"pagination"`
	Message    string           `json:"message,omitempty"`
	Error      string           `json:"error,omitempty"`
}

// RecorteResponse is the remote single-record envelope.
type RecorteResponse struct {
	Success bool           `json:"success"`
	Data    RecorteAPIData `json:"data"`
	Message string         `json:"message,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// UploadImageResponse is the envelope of POST /recortes/upload.
type UploadImageResponse struct {
	Success bool   `json:"success"`
	Data    struct {
		ImageURL string `json:"imageUrl"`
		PublicID string `json:"publicId"`
		FileName string `json:"fileName"`
	} `json:"data"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RecortesParams are the query parameters of GET /recortes.
type RecortesParams struct {
	Page        int
	Limit       int
	Search      string
	SortBy      string
	SortOrder   string
	TipoRecorte string
	TipoProduto string
	Material    string
	Cor         string
	// Status filters by the active flag when set; nil means all.
	Status *bool
}

// UploadClassification carries the classification fields sent alongside an
// image upload.
type UploadClassification struct {
	TipoProduto string
	TipoRecorte string
	Material    string
	Cor         string
}

// UploadResult is the mapped result of an image upload.
type UploadResult struct {
	ImageURL string `json:"imageUrl"`
	PublicID string `json:"publicId"`
	FileName string `json:"fileName"`
}
