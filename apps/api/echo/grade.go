package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/rapor/core/grade"
)

type (
	openSheetRequest struct {
		AssignmentID int `json:"assignment_id" validate:"required,min=1"`
	}

	scoreResponse struct {
		Accepted bool              `json:"accepted"`
		Record   grade.GradeRecord `json:"record"`
	}

	gradeApi struct {
		svc        *grade.Service
		dl         downloader
		validate   *validator.Validate
		translator ut.Translator
	}
)

func registerGradeAPI(
	g *echo.Group,
	svc *grade.Service,
	dl downloader,
	validate *validator.Validate,
	translator ut.Translator,
) {
	api := gradeApi{
		svc:        svc,
		dl:         dl,
		validate:   validate,
		translator: translator,
	}

	g.GET("/assignments", api.queryAssignments)

	sg := g.Group("/sheets")
	sg.POST("", api.openSheet)
	sg.GET("/:id", api.retrieveSheet)
	sg.DELETE("/:id", api.closeSheet)
	sg.GET("/:id/export/:format", api.exportSheet)
	sg.PUT("/:id/students/:studentID/score", api.setScore)
	sg.POST("/:id/students/:studentID/save", api.saveGrade)

	g.GET("/report-card", api.reportCard)
	g.GET("/report-card/export/:format", api.exportReportCard)
}

// Handlers

func (api *gradeApi) queryAssignments(ctx echo.Context) error {
	tas, err := api.svc.Assignments(ctx.Request().Context(), contextToken(ctx))
	if err != nil {
		return errors.Wrap(err, "querying teaching assignments")
	}
	return ctx.JSON(http.StatusOK, tas)
}

func (api *gradeApi) openSheet(ctx echo.Context) error {
	var data openSheetRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to openSheetRequest")
	}
	if err := api.validate.Struct(data); err != nil {
		return err
	}

	sh, err := api.svc.OpenSheet(ctx.Request().Context(), contextToken(ctx), contextOwner(ctx), data.AssignmentID)
	if err != nil {
		return errors.Wrap(err, "opening sheet")
	}
	return ctx.JSON(http.StatusCreated, sh)
}

func (api *gradeApi) sheet(ctx echo.Context) (grade.Sheet, error) {
	sh, err := api.svc.Sheet(contextOwner(ctx), ctx.Param("id"))
	if err != nil {
		return grade.Sheet{}, errors.Wrap(err, "getting sheet")
	}
	return sh, nil
}

// retrieveSheet narrows the records to the `search` query. Exports always hold the whole class.
func (api *gradeApi) retrieveSheet(ctx echo.Context) error {
	sh, err := api.sheet(ctx)
	if err != nil {
		return err
	}
	sh.Records = sh.Filter(bindSearch(ctx))
	return ctx.JSON(http.StatusOK, sh)
}

func (api *gradeApi) closeSheet(ctx echo.Context) error {
	if err := api.svc.CloseSheet(contextOwner(ctx), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "closing sheet")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *gradeApi) exportSheet(ctx echo.Context) error {
	sh, err := api.sheet(ctx)
	if err != nil {
		return err
	}
	return api.dl.send(ctx, grade.SheetTable(api.translator, sh.Records), grade.SheetMeta(api.translator, sh))
}

func (api *gradeApi) setScore(ctx echo.Context) error {
	studentID, err := bindIntParam(ctx, "studentID")
	if err != nil {
		return err
	}
	var data grade.ScoreUpdate
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ScoreUpdate")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	rec, accepted, err := api.svc.SetScore(contextOwner(ctx), ctx.Param("id"), studentID, data.Field, data.Value)
	if err != nil {
		return errors.Wrap(err, "setting score")
	}
	return ctx.JSON(http.StatusOK, scoreResponse{Accepted: accepted, Record: rec})
}

func (api *gradeApi) saveGrade(ctx echo.Context) error {
	studentID, err := bindIntParam(ctx, "studentID")
	if err != nil {
		return err
	}

	rec, err := api.svc.SaveGrade(ctx.Request().Context(), contextToken(ctx), contextOwner(ctx), ctx.Param("id"), studentID)
	if err != nil {
		return errors.Wrap(err, "saving grade")
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *gradeApi) reportCard(ctx echo.Context) error {
	grades, err := api.svc.ReportCard(ctx.Request().Context(), contextToken(ctx))
	if err != nil {
		return errors.Wrap(err, "querying report card")
	}
	return ctx.JSON(http.StatusOK, grades)
}

func (api *gradeApi) exportReportCard(ctx echo.Context) error {
	grades, err := api.svc.ReportCard(ctx.Request().Context(), contextToken(ctx))
	if err != nil {
		return errors.Wrap(err, "querying report card")
	}
	return api.dl.send(ctx, grade.ReportCardTable(api.translator, grades), grade.ReportCardMeta(api.translator))
}
