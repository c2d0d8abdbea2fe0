package echoapi

import (
	"bytes"
	"mime"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/rapor/core/tabular"
)

type downloader struct {
	exporters tabular.Registry
}

// send renders `doc` in the `:format` of the request and answers with it as an attachment.
func (dl downloader) send(ctx echo.Context, doc tabular.Document, meta tabular.Meta) error {
	exp, err := dl.exporters.Get(ctx.Param("format"))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := exp.Export(&buf, doc, meta); err != nil {
		return errors.Wrapf(err, "exporting %s", exp.Extension())
	}

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": tabular.Filename(exp, meta)})
	ctx.Response().Header().Set(echo.HeaderContentDisposition, disposition)
	return ctx.Blob(http.StatusOK, exp.ContentType(), buf.Bytes())
}
