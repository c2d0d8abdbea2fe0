package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/rapor/core/roster"
)

type rosterApi struct {
	svc        *roster.Service
	dl         downloader
	translator ut.Translator
}

func registerRosterAPI(g *echo.Group, svc *roster.Service, dl downloader, translator ut.Translator) {
	api := rosterApi{svc: svc, dl: dl, translator: translator}

	rg := g.Group("/roster")
	rg.GET("", api.query)
	rg.GET("/export/:format", api.export)
}

func (api *rosterApi) roster(ctx echo.Context) (roster.Roster, error) {
	filter, err := bindRosterFilter(ctx)
	if err != nil {
		return roster.Roster{}, err
	}
	r, err := api.svc.Roster(ctx.Request().Context(), contextToken(ctx), filter)
	if err != nil {
		return roster.Roster{}, errors.Wrap(err, "querying roster")
	}
	return r, nil
}

func (api *rosterApi) query(ctx echo.Context) error {
	r, err := api.roster(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, r)
}

func (api *rosterApi) export(ctx echo.Context) error {
	r, err := api.roster(ctx)
	if err != nil {
		return err
	}
	return api.dl.send(ctx, roster.Table(api.translator, r), roster.Meta(api.translator))
}
