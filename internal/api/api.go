// Package api exposes the processor over HTTP.
//
//	POST /messages              newline delimited messages, responds with the report lines
//	GET  /teams                 known team names, one per line
//	GET  /teams/{name}          detailed view
//	GET  /teams/{name}/summary  simplified view
//
// Every request takes the same lock, so a result is applied to both teams before
// any other request can read either record.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/mux"
	"github.com/utakatalp/football-statistics/internal/errs"
	"github.com/utakatalp/football-statistics/internal/processor"
	"github.com/utakatalp/football-statistics/internal/source"
	"github.com/utakatalp/football-statistics/internal/store"
)

const maxBodySize = 8 * 1024 * 1024

// Server serialises HTTP access to a single processor.
type Server struct {
	mu    sync.Mutex
	proc  *processor.Processor
	table *store.Table
}

func NewServer(proc *processor.Processor, table *store.Table) *Server {
	return &Server{proc: proc, table: table}
}

func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/messages", s.onMessages).Methods(http.MethodPost)
	router.HandleFunc("/teams", s.onTeams).Methods(http.MethodGet)
	router.HandleFunc("/teams/{name}", s.onDetailed).Methods(http.MethodGet)
	router.HandleFunc("/teams/{name}/summary", s.onSimplified).Methods(http.MethodGet)

	return router
}

func (s *Server) onMessages(w http.ResponseWriter, r *http.Request) {
	var (
		out      strings.Builder
		rejected int
	)

	src := source.NewLines(http.MaxBytesReader(w, r.Body, maxBodySize))

	s.mu.Lock()
	errRead := src.Read(r.Context(), func(raw string) error {
		lines, errProcess := s.proc.Process(r.Context(), raw)
		for _, line := range lines {
			out.WriteString(line)
			out.WriteByte('\n')
		}

		if errProcess != nil {
			if errors.Is(errProcess, errs.ErrMalformedMessage) {
				rejected++
			}
			processor.LogError(errProcess)
		}

		return nil
	})
	s.mu.Unlock()

	if errRead != nil && !errors.Is(errRead, context.Canceled) {
		// Lines already processed stay applied.
		slog.Error("Failed to read message body", slog.String("error", errRead.Error()))
		http.Error(w, "failed to read body", http.StatusBadRequest)

		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Rejected-Messages", strconv.Itoa(rejected))
	_, _ = fmt.Fprint(w, out.String())
}

func (s *Server) onTeams(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	names := s.table.Names()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	for _, name := range names {
		_, _ = fmt.Fprintln(w, name)
	}
}

func (s *Server) onDetailed(w http.ResponseWriter, r *http.Request) {
	s.writeView(w, r, s.proc.Reports().Detailed)
}

func (s *Server) onSimplified(w http.ResponseWriter, r *http.Request) {
	s.writeView(w, r, s.proc.Reports().Simplified)
}

func (s *Server) writeView(w http.ResponseWriter, r *http.Request, view func(name string) (string, error)) {
	name := mux.Vars(r)["name"]

	s.mu.Lock()
	line, errView := view(name)
	s.mu.Unlock()

	if errView != nil {
		if errors.Is(errView, errs.ErrUnknownTeam) {
			http.Error(w, errView.Error(), http.StatusNotFound)

			return
		}
		http.Error(w, errView.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = fmt.Fprintln(w, line)
}
