package middlewares

import (
	"bytes"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/clicker/internal/logger"
	"github.com/sbilibin2017/clicker/internal/repositories"
)

// TxMiddleware wraps an HTTP handler with a database transaction. The
// response is held back until the transaction is finished: a 5xx status
// rolls it back, and a failed commit replaces the response with a 500.
// AfterCommit hooks run only once the commit succeeded.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			bw := &bufferedWriter{
				header:     w.Header().Clone(),
				statusCode: http.StatusOK,
			}
			ctx, runHooks := repositories.WithAfterCommit(repositories.ContextWithTx(r.Context(), tx))

			next.ServeHTTP(bw, r.WithContext(ctx))

			if bw.statusCode >= http.StatusInternalServerError {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				bw.flush(w)
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			bw.flush(w)
			runHooks()
		})
	}
}

// bufferedWriter collects the handler's response so it can be dropped when
// the transaction fails to commit.
type bufferedWriter struct {
	header     http.Header
	statusCode int
	body       bytes.Buffer
	written    bool
}

func (bw *bufferedWriter) Header() http.Header {
	return bw.header
}

func (bw *bufferedWriter) WriteHeader(code int) {
	if bw.written {
		return
	}
	bw.statusCode = code
	bw.written = true
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.written = true
	return bw.body.Write(b)
}

func (bw *bufferedWriter) flush(w http.ResponseWriter) {
	dst := w.Header()
	for k, v := range bw.header {
		dst[k] = v
	}
	w.WriteHeader(bw.statusCode)
	w.Write(bw.body.Bytes())
}
