package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/riskmap/internal/domain"
	"github.com/ougirez/riskmap/internal/pkg/constants"
	"github.com/ougirez/riskmap/internal/pkg/logger"
)

func errorCode(err error) int {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if ce, ok := e.(*constants.CodedError); ok {
			return ce.Code()
		}
		if he, ok := e.(*echo.HTTPError); ok {
			return he.Code
		}
	}
	return http.StatusInternalServerError
}

func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	msg := err.Error()
	code := errorCode(err)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg = fmt.Sprint(he.Message)
	}

	ctx := c.Request().Context()
	if code >= http.StatusInternalServerError {
		logger.Errorf(ctx, "%s %s: %s", c.Request().Method, c.Path(), err.Error())
	} else {
		logger.Debugf(ctx, "%s %s: %s", c.Request().Method, c.Path(), err.Error())
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, domain.ErrorResponse{
		Message: msg,
		Code:    code,
	})
}
