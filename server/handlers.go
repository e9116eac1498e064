package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
	"github.com/katalvlaran/gridpath/mhastar"
	"github.com/katalvlaran/gridpath/pathexport"
)

// searchRequest is the body of POST /api/search. Either Profile names a
// configured profile, or the embedded Params describe the search inline.
type searchRequest struct {
	Rows    []string   `json:"rows"`
	Start   grid.Coord `json:"start"`
	Goal    grid.Coord `json:"goal"`
	Profile string     `json:"profile,omitempty"`
	config.Params
	// Scores adds the finishing lane's F, G and H tables to the response.
	Scores bool `json:"scores,omitempty"`
	// Format is "json" (default) or "geojson".
	Format string `json:"format,omitempty"`
}

type searchResponse struct {
	Path       []grid.Coord   `json:"path"`
	Cost       float64        `json:"cost"`
	Lane       int            `json:"lane"`
	Heuristic  heuristic.Kind `json:"heuristic"`
	Expansions int            `json:"expansions"`
	Profile    string         `json:"profile"`
	Mode       mhastar.Mode   `json:"mode"`
	Scores     *scoreTables   `json:"scores,omitempty"`
}

// scoreTables holds rows [y][x]; unreached cells are null.
type scoreTables struct {
	F [][]*float64 `json:"f"`
	G [][]*float64 `json:"g"`
	H [][]*float64 `json:"h"`
}

func scoreRows(m mhastar.ScoreMap) [][]*float64 {
	rows := m.Rows()
	out := make([][]*float64, len(rows))
	for y, row := range rows {
		out[y] = make([]*float64, len(row))
		for x := range row {
			if !math.IsInf(row[x], 0) {
				out[y][x] = &row[x]
			}
		}
	}
	return out
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	logger := ctxlog.FromContext(r.Context())

	var req searchRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if req.Format != "" && req.Format != "json" && req.Format != "geojson" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown format %q", req.Format))
		return
	}

	g, err := grid.ParseRows(req.Rows)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if g.Size() > s.opts.MaxCells {
		respondError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("grid has %d cells, limit is %d", g.Size(), s.opts.MaxCells))
		return
	}

	profile, status, err := s.profileFor(req)
	if err != nil {
		respondError(w, status, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.opts.SearchTimeout)
	defer cancel()

	opts := append(profile.Options(),
		mhastar.WithLogger(logger),
		mhastar.WithObserver(s.recorder),
	)
	res, err := mhastar.Search(ctx, g, req.Start, req.Goal, opts...)
	if err != nil {
		s.respondSearchError(w, logger, g, req, err)
		return
	}

	if req.Format == "geojson" {
		data, err := pathexport.Marshal(g, res)
		if err != nil {
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/geo+json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	resp := searchResponse{
		Path:       res.Path,
		Cost:       res.Cost,
		Lane:       res.Lane,
		Heuristic:  res.Heuristic,
		Expansions: res.Expansions,
		Profile:    profile.Name,
		Mode:       profile.Mode,
	}
	if req.Scores {
		resp.Scores = &scoreTables{F: scoreRows(res.F), G: scoreRows(res.G), H: scoreRows(res.H)}
	}
	respondJSON(w, http.StatusOK, resp)
}

// profileFor resolves the configuration of req, returning the HTTP status to
// use on failure.
func (s *Server) profileFor(req searchRequest) (*config.Profile, int, error) {
	inline := req.Mode != nil || req.Weight != nil || req.Weight2 != nil || len(req.Heuristics) > 0
	if req.Profile == "" {
		params := req.Params
		params.Name = "inline"
		p, err := params.Resolve()
		if err != nil {
			return nil, http.StatusUnprocessableEntity, err
		}
		return p, 0, nil
	}
	if inline {
		return nil, http.StatusBadRequest, errors.New("profile and inline search parameters are mutually exclusive")
	}
	p, err := s.opts.Profiles.Get(req.Profile)
	if err != nil {
		return nil, http.StatusNotFound, err
	}
	if req.MaxExpansions != nil {
		// The cap is the one attribute a caller may tighten on a named profile.
		limited := *p
		limited.MaxExpansions = *req.MaxExpansions
		if limited.MaxExpansions < 0 {
			return nil, http.StatusUnprocessableEntity, fmt.Errorf("%w: max_expansions must be ≥ 0", config.ErrInvalidProfile)
		}
		p = &limited
	}
	return p, 0, nil
}

func (s *Server) respondSearchError(w http.ResponseWriter, logger *slog.Logger, g *grid.Grid, req searchRequest, err error) {
	switch {
	case errors.Is(err, mhastar.ErrNoPath):
		// Only meaningful once validation passed, which NoPath implies.
		connected := g.Connected(req.Start, req.Goal)
		respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), Connected: &connected})
	case errors.Is(err, mhastar.ErrInvalidConfiguration):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, mhastar.ErrExpansionLimit):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, http.StatusGatewayTimeout, err.Error())
	case errors.Is(err, context.Canceled):
		// Client went away; nobody reads this.
		respondError(w, http.StatusServiceUnavailable, err.Error())
	default:
		logger.Error("search failed", slog.Any("error", err))
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

type heuristicInfo struct {
	Name       string `json:"name"`
	Admissible bool   `json:"admissible"`
	Anchor     bool   `json:"default_anchor"`
}

func (s *Server) handleHeuristics(w http.ResponseWriter, _ *http.Request) {
	anchor := heuristic.All()[0]
	out := make([]heuristicInfo, 0, len(heuristic.Names()))
	for _, name := range heuristic.Names() {
		k, _ := heuristic.Parse(name)
		out = append(out, heuristicInfo{Name: name, Admissible: k.Admissible(), Anchor: k == anchor})
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleListProfiles(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.opts.Profiles.All())
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.opts.Profiles.Get(mux.Vars(r)["name"])
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, p)
}
