package handler

import (
	"context"

	"marquee/internal/delivery/api/response"
	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/domain/service"
	"marquee/internal/errors"
	"marquee/internal/usecase"

	"github.com/labstack/echo/v4"
)

// MovieHandler relays movie-metadata responses with the upstream status and body.
type MovieHandler struct {
	uc usecase.MovieUsecase
}

func NewMovieHandler(uc usecase.MovieUsecase) *MovieHandler {
	return &MovieHandler{uc: uc}
}

func (h *MovieHandler) Trending(c echo.Context) error {
	return relay(c, h.uc.Trending)
}

func (h *MovieHandler) Popular(c echo.Context) error {
	return relay(c, h.uc.Popular)
}

// TopRated serves /api/movies.
func (h *MovieHandler) TopRated(c echo.Context) error {
	return relay(c, h.uc.TopRated)
}

func (h *MovieHandler) TVShows(c echo.Context) error {
	return relay(c, h.uc.PopularTVShows)
}

func (h *MovieHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")

	return relay(c, func(ctx context.Context) (*service.CatalogResponse, error) {
		return h.uc.Search(ctx, query)
	})
}

func (h *MovieHandler) Details(c echo.Context) error {
	movieID, err := pathID(c)
	if err != nil {
		return err
	}

	return relay(c, func(ctx context.Context) (*service.CatalogResponse, error) {
		return h.uc.Details(ctx, movieID)
	})
}

func (h *MovieHandler) ByGenre(c echo.Context) error {
	genreID, err := pathID(c)
	if err != nil {
		return err
	}

	return relay(c, func(ctx context.Context) (*service.CatalogResponse, error) {
		return h.uc.ByGenre(ctx, genreID)
	})
}

// pathID reads a non-negative integer :id. Anything else does not match the route.
func pathID(c echo.Context) (int, error) {
	var id int
	if err := echo.PathParamsBinder(c).MustInt("id", &id).BindError(); err != nil || id < 0 {
		return 0, domainerrors.ErrNotFound
	}

	return id, nil
}

func relay(c echo.Context, fetch func(ctx context.Context) (*service.CatalogResponse, error)) error {
	resp, err := fetch(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Raw(c, resp.StatusCode, resp.Body)
}
