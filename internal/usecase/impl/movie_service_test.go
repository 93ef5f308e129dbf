package impl

import (
	"context"
	"net/url"
	"testing"

	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/domain/service"
	mockService "marquee/internal/mocks/service"
	"marquee/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieService_EndpointMapping(t *testing.T) {
	ctx := context.Background()
	ok := &service.CatalogResponse{StatusCode: 200, Body: []byte(`{"results":[]}`)}

	tests := []struct {
		name     string
		endpoint string
		params   url.Values
		call     func(usecase.MovieUsecase) (*service.CatalogResponse, error)
	}{
		{name: "trending", endpoint: "trending/movie/week", call: func(s usecase.MovieUsecase) (*service.CatalogResponse, error) { return s.Trending(ctx) }},
		{name: "popular", endpoint: "movie/popular", call: func(s usecase.MovieUsecase) (*service.CatalogResponse, error) { return s.Popular(ctx) }},
		{name: "top rated", endpoint: "movie/top_rated", call: func(s usecase.MovieUsecase) (*service.CatalogResponse, error) { return s.TopRated(ctx) }},
		{name: "tv shows", endpoint: "tv/popular", call: func(s usecase.MovieUsecase) (*service.CatalogResponse, error) { return s.PopularTVShows(ctx) }},
		{name: "details", endpoint: "movie/550", call: func(s usecase.MovieUsecase) (*service.CatalogResponse, error) { return s.Details(ctx, 550) }},
		{
			name:     "search",
			endpoint: "search/movie",
			params:   url.Values{"query": {"matrix"}},
			call:     func(s usecase.MovieUsecase) (*service.CatalogResponse, error) { return s.Search(ctx, "matrix") },
		},
		{
			name:     "by genre",
			endpoint: "discover/movie",
			params:   url.Values{"with_genres": {"28"}, "sort_by": {"popularity.desc"}},
			call:     func(s usecase.MovieUsecase) (*service.CatalogResponse, error) { return s.ByGenre(ctx, 28) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := mockService.NewMockMovieCatalog(t)
			catalog.EXPECT().Fetch(ctx, tt.endpoint, tt.params).Return(ok, nil)

			resp, err := tt.call(NewMovieService(catalog))
			require.NoError(t, err)
			assert.Same(t, ok, resp)
		})
	}
}

func TestMovieService_SearchRequiresQuery(t *testing.T) {
	catalog := mockService.NewMockMovieCatalog(t)

	resp, err := NewMovieService(catalog).Search(context.Background(), "  ")
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domainerrors.ErrQueryRequired)
}

func TestMovieService_PropagatesUpstreamErrors(t *testing.T) {
	ctx := context.Background()
	upstream := domainerrors.NewUpstreamError(401, "Invalid API key")

	catalog := mockService.NewMockMovieCatalog(t)
	catalog.EXPECT().Fetch(ctx, "movie/popular", url.Values(nil)).Return(nil, upstream)

	_, err := NewMovieService(catalog).Popular(ctx)
	assert.Same(t, upstream, err)
}
