package echoapi

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/rapor/core"
	"github.com/trezcool/rapor/core/roster"
)

var (
	searchParam  = "search"
	classIDParam = "class_id"
)

func bindSearch(ctx echo.Context) string {
	return strings.TrimSpace(ctx.QueryParam(searchParam))
}

func bindRosterFilter(ctx echo.Context) (roster.QueryFilter, error) {
	filter := roster.QueryFilter{Search: bindSearch(ctx)}
	if val := ctx.QueryParam(classIDParam); val != "" {
		id, err := strconv.Atoi(val)
		if err != nil || id < 0 {
			return filter, core.NewFieldError(classIDParam, "must be a class id")
		}
		filter.ClassID = id
	}
	return filter, nil
}

func bindIntParam(ctx echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
