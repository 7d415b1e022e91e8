package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/parkops/ridemax/internal/catalog"
	"github.com/parkops/ridemax/internal/config"
	"github.com/parkops/ridemax/internal/maxtime"
	"github.com/parkops/ridemax/internal/ride"
	"github.com/parkops/ridemax/internal/ticket"
)

type rideJSON struct {
	Description string  `json:"description"`
	Cost        int     `json:"cost"`
	Minutes     float64 `json:"minutes"`
}

type ridesResp struct {
	Rides []rideJSON `json:"rides"`
	Count int        `json:"count"`
}

type planResp struct {
	Algo         string     `json:"algo"`
	Budget       int        `json:"budget"`
	Rides        []rideJSON `json:"rides"`
	TotalCost    int        `json:"total_cost"`
	TotalMinutes float64    `json:"total_minutes"`
	Err          string     `json:"err,omitempty"`
}

type ticketsResp struct {
	Name  string `json:"name"`
	Rides int    `json:"rides"`
	Cost  int    `json:"cost"`
	Err   string `json:"err,omitempty"`
}

// Server serves the ride planner over HTTP. The catalog is guarded by a
// RWMutex so the file watcher can swap it while requests are in flight.
type Server struct {
	params  config.Params
	book    ticket.Book
	watcher *catalog.Watcher

	mu    sync.RWMutex
	rides []ride.Ride
}

// New loads the catalog named by params and, if params.Watch is set, starts
// a watcher that hot-swaps it on change.
func New(params config.Params) (*Server, error) {
	rides, err := catalog.Load(params.CatalogPath)
	if err != nil {
		return nil, err
	}
	s := &Server{
		params: params,
		book: ticket.Book{
			Name:       params.TicketName,
			PerRide:    params.PerRide,
			PerTenRide: params.PerTenRide,
			PerNRide:   params.PerNRide,
			N:          params.TicketN,
		},
		rides: rides,
	}
	if params.Watch {
		w, err := catalog.Watch(params.CatalogPath, s.reload)
		if err != nil {
			return nil, err
		}
		s.watcher = w
	}
	return s, nil
}

// Close stops the catalog watcher, if any.
func (s *Server) Close() {
	if s.watcher != nil {
		s.watcher.Stop()
	}
}

// reload re-reads the catalog after the watcher fires. A load failure keeps
// the previous catalog in place.
func (s *Server) reload(path string) {
	rides, err := catalog.Load(path)
	if err != nil {
		log.Printf("catalog reload failed, keeping previous: %v", err)
		return
	}
	s.mu.Lock()
	s.rides = rides
	s.mu.Unlock()
	log.Printf("catalog reloaded: %d rides", len(rides))
}

// Handler returns the route mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/rides", s.handleRides)
	mux.HandleFunc("/plan", s.handlePlan)
	mux.HandleFunc("/tickets", s.handleTickets)
	return mux
}

// ListenAndServe blocks serving on the configured address.
func (s *Server) ListenAndServe() error {
	log.Printf("listening on %s ...", s.params.Addr)
	return http.ListenAndServe(s.params.Addr, s.Handler())
}

func parseFloat(r *http.Request, key string) (float64, bool, string) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, false, ""
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false, "invalid " + key
	}
	return f, true, ""
}

func parseInt(r *http.Request, key string) (int, bool, string) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, false, ""
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, "invalid " + key
	}
	return n, true, ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func toJSON(rides []ride.Ride) []rideJSON {
	out := make([]rideJSON, len(rides))
	for i, r := range rides {
		out[i] = rideJSON{Description: r.Description, Cost: r.Cost, Minutes: r.Minutes}
	}
	return out
}

// GET /rides — the current catalog.
func (s *Server) handleRides(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	rides := s.rides
	s.mu.RUnlock()
	writeJSON(w, http.StatusOK, ridesResp{Rides: toJSON(rides), Count: len(rides)})
}

// GET /plan?budget=N[&algo=dynamic|exhaustive][&min_time=..&max_time=..&max_items=..]
func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	budget := s.params.Budget
	if v, ok, msg := parseInt(r, "budget"); msg != "" {
		writeJSON(w, http.StatusBadRequest, planResp{Err: msg})
		return
	} else if ok {
		budget = v
	}
	if budget < 0 {
		writeJSON(w, http.StatusBadRequest, planResp{Err: "budget must be >= 0"})
		return
	}

	algo := r.URL.Query().Get("algo")
	if algo == "" {
		algo = "dynamic"
	}

	s.mu.RLock()
	rides := s.rides
	s.mu.RUnlock()

	// Optional pre-filter; mandatory before exhaustive so 2^n stays sane.
	minTime, hasMin, msg := parseFloat(r, "min_time")
	if msg != "" {
		writeJSON(w, http.StatusBadRequest, planResp{Err: msg})
		return
	}
	maxTime, hasMax, msg := parseFloat(r, "max_time")
	if msg != "" {
		writeJSON(w, http.StatusBadRequest, planResp{Err: msg})
		return
	}
	maxItems, hasItems, msg := parseInt(r, "max_items")
	if msg != "" {
		writeJSON(w, http.StatusBadRequest, planResp{Err: msg})
		return
	}
	if hasMin || hasMax || hasItems || algo == "exhaustive" {
		if !hasMin {
			minTime = s.params.MinTime
		}
		if !hasMax {
			maxTime = s.params.MaxTime
		}
		if !hasItems {
			maxItems = s.params.MaxItems
		}
		rides = ride.Filter(rides, minTime, maxTime, maxItems)
	}

	var (
		best []ride.Ride
		err  error
	)
	switch algo {
	case "dynamic":
		best, err = maxtime.Dynamic(rides, budget)
	case "exhaustive":
		best, err = maxtime.Exhaustive(rides, float64(budget))
	default:
		writeJSON(w, http.StatusBadRequest, planResp{Err: "algo must be dynamic or exhaustive"})
		return
	}
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, maxtime.ErrTooManyRides) || errors.Is(err, maxtime.ErrGridTooLarge) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, planResp{Algo: algo, Budget: budget, Err: err.Error()})
		return
	}

	cost, minutes := ride.Sum(best)
	writeJSON(w, http.StatusOK, planResp{
		Algo:         algo,
		Budget:       budget,
		Rides:        toJSON(best),
		TotalCost:    cost,
		TotalMinutes: minutes,
	})
}

// GET /tickets?rides=N — dollars for N ride tickets under the park's book.
func (s *Server) handleTickets(w http.ResponseWriter, r *http.Request) {
	n, ok, msg := parseInt(r, "rides")
	if !ok {
		if msg == "" {
			msg = "missing param rides"
		}
		writeJSON(w, http.StatusBadRequest, ticketsResp{Err: msg})
		return
	}
	if n < 0 {
		writeJSON(w, http.StatusBadRequest, ticketsResp{Err: "rides must be >= 0"})
		return
	}
	writeJSON(w, http.StatusOK, ticketsResp{Name: s.book.Name, Rides: n, Cost: s.book.CostForRides(n)})
}
