package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/attendo/core"
)

var errHttpNotFound = echo.NewHTTPError(http.StatusNotFound, "not found")

// errorResponse maps an error returned by a handler to a status code and a JSON body.
// Only server errors are reported as such: everything else is the client's fault.
func errorResponse(err error, translator ut.Translator) (code int, body interface{}, serverErr bool) {
	switch cause := errors.Cause(err).(type) {
	case *echo.HTTPError:
		if inner, ok := cause.Internal.(*echo.HTTPError); ok {
			cause = inner
		}
		return cause.Code, cause.Message, false
	case validator.ValidationErrors:
		return http.StatusBadRequest, core.TranslateErrors(cause, translator), false
	case *core.ValidationError:
		if len(cause.Fields) == 0 {
			return http.StatusBadRequest, cause.Error(), false
		}
		fields := make(map[string]string, len(cause.Fields))
		for _, f := range cause.Fields {
			fields[f.Field] = f.Error
		}
		return http.StatusBadRequest, fields, false
	}
	if core.IsNotFound(err) {
		return http.StatusNotFound, errors.Cause(err).Error(), false
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), true
}

// newAppHTTPErrorHandler returns the echo.HTTPErrorHandler rendering every error as JSON.
// Server errors are logged; a core shutdown error also triggers `signalShutdown`.
func newAppHTTPErrorHandler(logger core.Logger, translator ut.Translator, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		code, body, serverErr := errorResponse(err, translator)

		if serverErr {
			msg := http.StatusText(code)
			logger.Error(msg, errors.Wrap(err, msg), map[string]interface{}{
				"method":    ctx.Request().Method,
				"path":      ctx.Path(),
				"requestID": ctx.Response().Header().Get(echo.HeaderXRequestID),
			})
			if core.IsShutdown(err) {
				signalShutdown()
			}
			if ctx.Echo().Debug {
				body = err.Error()
			}
		}
		if m, ok := body.(string); ok {
			body = echo.Map{"error": m}
		}

		if ctx.Response().Committed {
			return
		}
		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(code)
		} else {
			err = ctx.JSON(code, body)
		}
		if err != nil {
			ctx.Echo().Logger.Error(err)
		}
	}
}
