package impl

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/domain/service"
	"marquee/internal/usecase"
)

// TMDB endpoints relayed by the movie routes.
const (
	endpointTrending = "trending/movie/week"
	endpointPopular  = "movie/popular"
	endpointTopRated = "movie/top_rated"
	endpointTVShows  = "tv/popular"
	endpointSearch   = "search/movie"
	endpointDiscover = "discover/movie"
	endpointMovie    = "movie/"
)

type movieService struct {
	catalog service.MovieCatalog
}

// NewMovieService is the constructor for movieService.
func NewMovieService(catalog service.MovieCatalog) usecase.MovieUsecase {
	return &movieService{catalog: catalog}
}

func (srv *movieService) Trending(ctx context.Context) (*service.CatalogResponse, error) {
	return srv.catalog.Fetch(ctx, endpointTrending, nil)
}

func (srv *movieService) Popular(ctx context.Context) (*service.CatalogResponse, error) {
	return srv.catalog.Fetch(ctx, endpointPopular, nil)
}

func (srv *movieService) TopRated(ctx context.Context) (*service.CatalogResponse, error) {
	return srv.catalog.Fetch(ctx, endpointTopRated, nil)
}

func (srv *movieService) PopularTVShows(ctx context.Context) (*service.CatalogResponse, error) {
	return srv.catalog.Fetch(ctx, endpointTVShows, nil)
}

func (srv *movieService) Search(ctx context.Context, query string) (*service.CatalogResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domainerrors.ErrQueryRequired
	}

	return srv.catalog.Fetch(ctx, endpointSearch, url.Values{"query": {query}})
}

func (srv *movieService) Details(ctx context.Context, movieID int) (*service.CatalogResponse, error) {
	return srv.catalog.Fetch(ctx, endpointMovie+strconv.Itoa(movieID), nil)
}

func (srv *movieService) ByGenre(ctx context.Context, genreID int) (*service.CatalogResponse, error) {
	return srv.catalog.Fetch(ctx, endpointDiscover, url.Values{
		"with_genres": {strconv.Itoa(genreID)},
		"sort_by":     {"popularity.desc"},
	})
}
