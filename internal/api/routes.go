package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/runtime"
	"go.uber.org/zap"
)

// ServerInterface is implemented by the seat API.
type ServerInterface interface {
	// Decode and store one pass
	// (POST /passes)
	CreatePass(w http.ResponseWriter, r *http.Request)
	// Decode and store a batch of passes
	// (POST /passes/batch)
	CreatePassBatch(w http.ResponseWriter, r *http.Request)
	// List stored passes
	// (GET /passes)
	ListPasses(w http.ResponseWriter, r *http.Request)
	// Highest stored seat id
	// (GET /seats/highest)
	GetHighestSeat(w http.ResponseWriter, r *http.Request)
	// The free seat between two stored seats
	// (GET /seats/free)
	GetFreeSeat(w http.ResponseWriter, r *http.Request)
	// Stored pass for a seat id
	// (GET /seats/{seatId})
	GetSeat(w http.ResponseWriter, r *http.Request, seatId int64)
}

// HandlerFromMux registers the API routes on r and returns it as a handler.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	r.Post("/passes", si.CreatePass)
	r.Post("/passes/batch", si.CreatePassBatch)
	r.Get("/passes", si.ListPasses)
	r.Get("/seats/highest", si.GetHighestSeat)
	r.Get("/seats/free", si.GetFreeSeat)
	r.Get("/seats/{seatId}", func(w http.ResponseWriter, req *http.Request) {
		var seatId int64

		err := runtime.BindStyledParameterWithOptions("simple", "seatId", chi.URLParam(req, "seatId"), &seatId,
			runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter seatId: %s", err))
			return
		}

		si.GetSeat(w, req, seatId)
	})
	return r
}

// RequestLogger logs one line per request through zap.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("elapsed", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}

// NewRouter builds the chi router with middleware and all API routes.
func NewRouter(si ServerInterface, logger *zap.Logger) http.Handler {
	mux := chi.NewMux()
	mux.Use(middleware.RequestID)
	mux.Use(RequestLogger(logger))
	mux.Use(middleware.Recoverer)
	return HandlerFromMux(si, mux)
}
