// Package explorer exposes a block log over a small read-only HTTP API,
// grounded on the chi router and logging/metrics middleware pattern used
// elsewhere in this codebase's command-line servers.
package explorer

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/crokkon/blocklog/core"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blocklog_explorer_requests_total",
		Help: "HTTP requests served by the explorer, by route and status class.",
	}, []string{"route", "status"})
	blocksDecoded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blocklog_explorer_blocks_decoded_total",
		Help: "Blocks decoded and served by the explorer.",
	})
)

// Server exposes a BlockLog over HTTP.
type Server struct {
	router *chi.Mux
	bl     *core.BlockLog
	log    *logrus.Entry
	srv    *http.Server
}

// NewServer builds the router for bl, listening at addr once Start is called.
func NewServer(addr string, bl *core.BlockLog) *Server {
	s := &Server{
		router: chi.NewRouter(),
		bl:     bl,
		log:    logrus.WithField("component", "explorer"),
	}
	s.routes()
	s.srv = &http.Server{Addr: addr, Handler: s.router}
	return s
}

// Start blocks serving HTTP until the listener errors or is closed.
func (s *Server) Start() error {
	s.log.WithField("addr", s.srv.Addr).Info("explorer listening")
	return s.srv.ListenAndServe()
}

func (s *Server) routes() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Handle("/metrics", promhttp.Handler())
	s.router.Get("/blocks/{number}", s.handleBlock)
	s.router.Get("/blocks/{number}/stream", s.handleStream)
}

func (s *Server) handleBlock(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.ParseUint(chi.URLParam(r, "number"), 10, 32)
	if err != nil {
		s.fail(w, "blocks", http.StatusBadRequest, "invalid block number")
		return
	}
	blk, err := s.bl.BlockAtNumber(uint32(n))
	if err != nil {
		s.fail(w, "blocks", http.StatusNotFound, err.Error())
		return
	}
	blocksDecoded.Inc()
	s.writeJSON(w, "blocks", blk)
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.ParseUint(chi.URLParam(r, "number"), 10, 32)
	if err != nil {
		s.fail(w, "stream", http.StatusBadRequest, "invalid block number")
		return
	}
	opNames := r.URL.Query()["op"]
	rawOps := r.URL.Query().Get("raw_ops") == "true"

	stream := core.NewStream(s.bl, uint32(n), uint32(n), opNames, rawOps)
	w.Header().Set("Content-Type", "application/x-ndjson")
	enc := json.NewEncoder(w)
	for {
		rec, ok := stream.Next()
		if !ok {
			break
		}
		_ = enc.Encode(rec)
	}
	if err := stream.Err(); err != nil {
		requestsTotal.WithLabelValues("stream", "error").Inc()
		return
	}
	requestsTotal.WithLabelValues("stream", "2xx").Inc()
}

func (s *Server) writeJSON(w http.ResponseWriter, route string, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		requestsTotal.WithLabelValues(route, "error").Inc()
		return
	}
	requestsTotal.WithLabelValues(route, "2xx").Inc()
}

func (s *Server) fail(w http.ResponseWriter, route string, status int, msg string) {
	requestsTotal.WithLabelValues(route, strconv.Itoa(status/100)+"xx").Inc()
	http.Error(w, msg, status)
}
