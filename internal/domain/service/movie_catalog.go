package service

import (
	"context"
	"net/url"
)

// CatalogResponse is an upstream answer relayed to the client unchanged.
type CatalogResponse struct {
	StatusCode int
	Body       []byte
}

// MovieCatalog forwards requests to the movie-metadata provider.
type MovieCatalog interface {
	// Fetch calls endpoint with params plus the server-held API key. A non-2xx upstream
	// answer is returned as an error carrying the upstream status.
	Fetch(ctx context.Context, endpoint string, params url.Values) (*CatalogResponse, error)

	// Configured reports whether an API key is present.
	Configured() bool
}
