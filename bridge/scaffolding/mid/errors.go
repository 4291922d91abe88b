package mid

import (
	"context"
	"errors"
	"net/http"
	"path"

	"github.com/jrazmi/dashboard/bridge/scaffolding/errs"
	"github.com/jrazmi/dashboard/infrastructure/web"
	"github.com/jrazmi/dashboard/sdk/logger"
)

// Errors handles errors coming out of the call chain. Outside of
// development mode the cause of internal failures never reaches the body.
func Errors(log *logger.Logger, devMode bool) web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			resp := next(ctx, r)
			err := isError(resp)
			if err == nil {
				return resp
			}

			var appErr *errs.Error
			if !errors.As(err, &appErr) {
				appErr = errs.Wrap(errs.Internal, err, "Internal Server Error")
			}

			log.ErrorContext(ctx, "handled error during request",
				"err", err,
				"code", appErr.Code.String(),
				"source_err_file", path.Base(appErr.FileName),
				"source_err_func", path.Base(appErr.FuncName))

			switch appErr.Code {
			case errs.InternalOnlyLog:
				return errs.Newf(errs.Internal, "Internal Server Error")

			case errs.Internal, errs.IntegrationFailure, errs.InvalidResponseFormat, errs.FailedPrecondition:
				if devMode && appErr.Detail == "" {
					appErr.Detail = err.Error()
				}
			}

			return appErr
		}
	}
}
