// Package viz serves a browser visualiser that replays an A* search on a
// randomly generated board, one expansion at a time.
package viz

import (
	"embed"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	"github.com/sirupsen/logrus"

	astar "github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/internal/mapfile"
)

//go:embed static/index.html
var static embed.FS

const (
	URIIndex  = "/"
	URIInit   = "/api/init"
	URINext   = "/api/next"
	URIStream = "/api/stream"
	URIMetric = "/metrics"

	defaultStreamDelay = 50 * time.Millisecond
	maxStreamDelay     = 5 * time.Second
)

// board is the current search shown to clients.
type board struct {
	rows, cols int
	start      astar.Cell
	target     astar.Cell
	walls      [][2]int
	stepper    *astar.Stepper
	expanded   int
	recorded   bool
}

// Server holds one board shared by every client.
type Server struct {
	router   *way.Router
	upgrader *websocket.Upgrader
	logger   *logrus.Entry
	metrics  *Metrics
	options  []astar.Option

	mu    sync.Mutex
	grid  *astar.GridMap // replaced in place for each new board
	board *board
}

// NewServer builds the router. Search options apply to every board.
func NewServer(logger *logrus.Entry, options ...astar.Option) *Server {
	grid, _ := astar.NewGridMap(nil)
	server := &Server{
		grid:     grid,
		upgrader: &websocket.Upgrader{},
		logger:   logger,
		metrics:  NewMetrics(),
		options:  options,
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URIIndex, s.handleIndex)
	s.router.HandleFunc("GET", URIInit, s.handleInit)
	s.router.HandleFunc("GET", URINext, s.handleNext)
	s.router.HandleFunc("GET", URIStream, s.handleStream)
	s.router.Handle("GET", URIMetric, s.metrics.Handler())
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Metrics returns the server's metric set.
func (s *Server) Metrics() *Metrics { return s.metrics }

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := static.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

// boardRequest reads the /api/init query, falling back to the default board
// for missing or out-of-range values.
func boardRequest(r *http.Request) mapfile.GenerateSpec {
	spec := mapfile.DefaultGenerateSpec()
	spec.Seed = time.Now().UnixNano()
	query := r.URL.Query()
	if v, err := strconv.Atoi(query.Get("w")); err == nil && v > 4 {
		spec.Cols = v
	}
	if v, err := strconv.Atoi(query.Get("h")); err == nil && v > 4 {
		spec.Rows = v
	}
	if v, err := strconv.Atoi(query.Get("clusters")); err == nil && v > 0 {
		spec.Clusters = v
	}
	if v, err := strconv.Atoi(query.Get("steps")); err == nil && v > 0 {
		spec.Steps = v
	}
	if v, err := strconv.ParseFloat(query.Get("density"), 64); err == nil && v >= 0 && v <= 1 {
		spec.Density = v
	}
	if v, err := strconv.ParseInt(query.Get("seed"), 10, 64); err == nil {
		spec.Seed = v
	}
	return spec
}

// load swaps values into the server's grid and starts a stepper on it.
// Callers hold s.mu.
func (s *Server) load(values [][]int, start, target astar.Cell) (*board, error) {
	if err := s.grid.ReplaceInts(values); err != nil {
		return nil, err
	}
	stepper, err := astar.NewEngine(s.grid, s.options...).NewStepper(start, target)
	if err != nil {
		return nil, err
	}

	b := &board{rows: s.grid.Rows(), cols: s.grid.Cols(), start: start, target: target, stepper: stepper}
	for row, cells := range s.grid.Cells() {
		for col, state := range cells {
			if state == astar.Wall {
				b.walls = append(b.walls, [2]int{row, col})
			}
		}
	}
	s.board = b
	return b, nil
}

// randomBoard generates walls for spec and picks two distinct cells kept clear.
func randomBoard(spec mapfile.GenerateSpec) (values [][]int, start, target astar.Cell) {
	random := rand.New(rand.NewSource(spec.Seed))
	for start == target {
		start = astar.Cell{Row: random.Intn(spec.Rows), Col: random.Intn(spec.Cols)}
		target = astar.Cell{Row: random.Intn(spec.Rows), Col: random.Intn(spec.Cols)}
	}
	spec.Keep = [][2]int{pair(start), pair(target)}
	return mapfile.Generate(spec), start, target
}

func (s *Server) handleInit(w http.ResponseWriter, r *http.Request) {
	spec := boardRequest(r)
	values, start, target := randomBoard(spec)

	s.mu.Lock()
	b, err := s.load(values, start, target)
	s.mu.Unlock()
	if err != nil {
		s.logger.WithError(err).Error("board generation failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.metrics.Boards.Inc()

	s.logger.WithFields(logrus.Fields{
		"rows":   spec.Rows,
		"cols":   spec.Cols,
		"seed":   spec.Seed,
		"start":  b.start.String(),
		"target": b.target.String(),
	}).Info("new board")
	writeJSON(w, map[string]any{"ok": true, "w": spec.Cols, "h": spec.Rows})
}

// advance expands one node of the current board. ok is false before the
// first /api/init.
func (s *Server) advance() (snapshot Snapshot, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.board
	if b == nil {
		return Snapshot{}, false
	}

	step := b.stepper.Step()
	if step.StepIndex > b.expanded {
		s.metrics.Steps.Add(float64(step.StepIndex - b.expanded))
		b.expanded = step.StepIndex
	}
	if step.Done && !b.recorded {
		b.recorded = true
		s.record(b)
	}
	return newSnapshot(b, step), true
}

// record counts a finished search. The expansion count comes from the board
// since a failed search has an empty Result.
func (s *Server) record(b *board) {
	result, err := b.stepper.Result()
	outcome := "found"
	if err != nil {
		outcome = astar.ReasonOf(err).String()
	}
	s.metrics.Searches.WithLabelValues(outcome).Inc()
	s.metrics.Expanded.Observe(float64(b.expanded))
	s.logger.WithFields(logrus.Fields{
		"outcome":  outcome,
		"cost":     result.Cost,
		"expanded": b.expanded,
	}).Info("search finished")
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := s.advance()
	if !ok {
		http.Error(w, "engine not initialized", http.StatusBadRequest)
		return
	}
	writeJSON(w, snapshot)
}

// handleStream pushes one snapshot per tick over a websocket until the search
// is done. The tick is set with ?delay=<milliseconds>.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	delay := defaultStreamDelay
	if v, err := strconv.Atoi(r.URL.Query().Get("delay")); err == nil && v >= 0 {
		delay = min(time.Duration(v)*time.Millisecond, maxStreamDelay)
	}

	s.mu.Lock()
	initialized := s.board != nil
	s.mu.Unlock()
	if !initialized {
		http.Error(w, "engine not initialized", http.StatusBadRequest)
		return
	}

	con, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer con.Close()
	s.logger.Debug("stream connected")

	// The reader handles close and ping frames; clients send nothing else.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := con.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(max(delay, time.Millisecond))
	defer ticker.Stop()
	for {
		snapshot, ok := s.advance()
		if !ok {
			return
		}
		if err := con.WriteJSON(snapshot); err != nil {
			s.logger.WithError(err).Debug("stream write failed")
			return
		}
		if snapshot.Done {
			break
		}
		select {
		case <-closed:
			s.logger.Debug("stream closed by client")
			return
		case <-ticker.C:
		}
	}

	message := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done")
	if err := con.WriteControl(websocket.CloseMessage, message, time.Now().Add(time.Second)); err != nil && err != websocket.ErrCloseSent {
		s.logger.WithError(err).Debug("close frame")
	}
}

func writeJSON(w http.ResponseWriter, value any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(value); err != nil {
		http.Error(w, fmt.Sprintf("encode: %v", err), http.StatusInternalServerError)
	}
}
