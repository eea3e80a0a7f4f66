package chi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	logpkg "github.com/kailas-cloud/campushub/internal/logger"
)

// Recoverer turns a handler panic into a JSON 500 and logs it with the
// request-scoped logger and the catalog being served.
// http.ErrAbortHandler is re-panicked so net/http can abort the response.
func (s *Server) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if err, ok := rvr.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rvr)
			}

			logpkg.FromContextOr(r.Context(), s.logger).Error("panic recovered",
				zap.Any("panic", rvr),
				zap.String("kind", chi.URLParam(r, "kind")),
				zap.Stack("stacktrace"),
			)
			writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
		}()
		next.ServeHTTP(w, r)
	})
}
