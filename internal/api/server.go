package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"seat-finder/internal/batch"
	"seat-finder/internal/boardingpass"
)

// Server implements ServerInterface on top of the SQLite store.
type Server struct {
	db      *sql.DB
	logger  *zap.Logger
	workers int
}

// NewServer creates the API server. workers sizes the batch decode pool;
// 0 means one per CPU.
func NewServer(db *sql.DB, logger *zap.Logger, workers int) ServerInterface {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{db: db, logger: logger, workers: workers}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// NewStoredPass converts a parsed pass into its storage form. ID is left empty.
func NewStoredPass(p *boardingpass.Pass) StoredPass {
	row, col := p.Seat()
	return StoredPass{Code: p.Code(), Row: row, Col: col, SeatID: p.ID()}
}

func seatFor(id int) Seat {
	return Seat{SeatId: id, Row: id / boardingpass.Cols, Column: id % boardingpass.Cols}
}

// CreatePass decodes one code and stores it.
func (s *Server) CreatePass(w http.ResponseWriter, r *http.Request) {
	var req PassReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := boardingpass.Parse(req.Code)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid boarding pass: "+err.Error())
		return
	}

	stored := NewStoredPass(p)
	id, err := SavePass(s.db, stored)
	if err != nil {
		s.logger.Error("failed to save pass", zap.String("code", req.Code), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to store pass")
		return
	}
	stored.ID = id

	s.logger.Debug("pass stored", zap.String("id", id), zap.Int("seat_id", stored.SeatID))
	writeJSON(w, http.StatusCreated, toPass(stored))
}

// CreatePassBatch decodes many codes on the worker pool and stores the
// valid ones in a single transaction.
func (s *Server) CreatePassBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Codes) == 0 {
		writeError(w, http.StatusBadRequest, "Batch must contain at least one code")
		return
	}

	report, err := batch.DecodeAll(r.Context(), req.Codes, batch.Options{
		Workers:     s.workers,
		SkipInvalid: req.SkipInvalid,
	})
	if err != nil {
		var lineErr *batch.LineError
		if errors.As(err, &lineErr) {
			writeError(w, http.StatusUnprocessableEntity, "Invalid boarding pass: "+lineErr.Error())
			return
		}
		s.logger.Error("batch decode failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to decode batch")
		return
	}

	stored := make([]StoredPass, len(report.Passes))
	for i, p := range report.Passes {
		stored[i] = NewStoredPass(p)
	}

	ids, err := SavePasses(s.db, stored)
	if err != nil {
		s.logger.Error("failed to save batch", zap.Int("passes", len(stored)), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to store passes")
		return
	}

	resp := BatchResp{
		Stored:   len(stored),
		Passes:   make([]Pass, len(stored)),
		Rejected: make([]Rejection, len(report.Rejected)),
	}
	for i := range stored {
		stored[i].ID = ids[i]
		resp.Passes[i] = toPass(stored[i])
	}
	for i, rej := range report.Rejected {
		resp.Rejected[i] = Rejection{Line: rej.Line, Code: rej.Code, Error: rej.Err.Error()}
	}
	if highest, ok := batch.MaxID(report.IDs()); ok {
		resp.HighestSeatId = &highest
	}

	s.logger.Info("batch stored",
		zap.Int("stored", resp.Stored),
		zap.Int("rejected", len(resp.Rejected)))
	writeJSON(w, http.StatusOK, resp)
}

// ListPasses returns every stored pass.
func (s *Server) ListPasses(w http.ResponseWriter, r *http.Request) {
	stored, err := ListPasses(s.db)
	if err != nil {
		s.logger.Error("failed to list passes", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to list passes")
		return
	}

	passes := make([]Pass, len(stored))
	for i, p := range stored {
		passes[i] = toPass(p)
	}
	writeJSON(w, http.StatusOK, passes)
}

// GetHighestSeat returns the highest stored seat id.
func (s *Server) GetHighestSeat(w http.ResponseWriter, r *http.Request) {
	s.aggregateSeat(w, batch.MaxID, "No passes stored")
}

// GetFreeSeat returns the one missing seat whose neighbours are both stored.
func (s *Server) GetFreeSeat(w http.ResponseWriter, r *http.Request) {
	s.aggregateSeat(w, batch.FreeSeat, "No free seat found")
}

func (s *Server) aggregateSeat(w http.ResponseWriter, agg func([]int) (int, bool), notFound string) {
	ids, err := ListSeatIDs(s.db)
	if err != nil {
		s.logger.Error("failed to list seat ids", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to query seats")
		return
	}

	id, ok := agg(ids)
	if !ok {
		writeError(w, http.StatusNotFound, notFound)
		return
	}
	writeJSON(w, http.StatusOK, seatFor(id))
}

// GetSeat returns the stored pass for a seat id.
func (s *Server) GetSeat(w http.ResponseWriter, r *http.Request, seatId int64) {
	if seatId < 0 || seatId >= boardingpass.Rows*boardingpass.Cols {
		writeError(w, http.StatusBadRequest, "Seat id out of range")
		return
	}

	p, err := GetPassBySeatID(s.db, int(seatId))
	if err != nil {
		s.logger.Error("failed to get seat", zap.Int64("seat_id", seatId), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to query seat")
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "Seat not found")
		return
	}

	writeJSON(w, http.StatusOK, toPass(*p))
}
