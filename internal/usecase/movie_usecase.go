package usecase

import (
	"context"

	"marquee/internal/domain/service"
)

// MovieUsecase relays movie-metadata lookups. Responses are upstream bodies, untouched.
type MovieUsecase interface {
	Trending(ctx context.Context) (*service.CatalogResponse, error)
	Popular(ctx context.Context) (*service.CatalogResponse, error)
	TopRated(ctx context.Context) (*service.CatalogResponse, error)
	PopularTVShows(ctx context.Context) (*service.CatalogResponse, error)
	Search(ctx context.Context, query string) (*service.CatalogResponse, error)
	Details(ctx context.Context, movieID int) (*service.CatalogResponse, error)
	ByGenre(ctx context.Context, genreID int) (*service.CatalogResponse, error)
}
