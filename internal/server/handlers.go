package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/kundali/pkg/buildinfo"
	"github.com/matzehuels/kundali/pkg/cache"
	"github.com/matzehuels/kundali/pkg/chart"
	"github.com/matzehuels/kundali/pkg/errors"
	kio "github.com/matzehuels/kundali/pkg/io"
	"github.com/matzehuels/kundali/pkg/pipeline"
	"github.com/matzehuels/kundali/pkg/render"
	"github.com/matzehuels/kundali/pkg/store"
)

// cacheHeader reports whether a response was served from the cache.
const cacheHeader = "X-Kundali-Cache"

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

// =============================================================================
// Stateless endpoints
// =============================================================================

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respondLayout(w, r, req)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respondRender(w, r, req)
}

// =============================================================================
// Saved charts
// =============================================================================

func (s *Server) handleSaveChart(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	// Reject requests that cannot produce a chart before storing them.
	if _, err := req.Layout(); err != nil {
		s.writeError(w, r, err)
		return
	}
	p, err := s.store.Save(r.Context(), store.Profile{Name: r.URL.Query().Get("name"), Request: req})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/v1/charts/"+p.ID)
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleListCharts(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if profiles == nil {
		profiles = []store.Profile{}
	}
	writeJSON(w, http.StatusOK, profiles)
}

func (s *Server) handleGetChart(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeleteChart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateProfileID(id); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleChartLayout(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respondLayout(w, r, p.Request)
}

func (s *Server) handleChartModes(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	layouts, err := s.runner.AssembleModes(r.Context(), p.Request)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, layouts)
}

func (s *Server) handleChartRender(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respondRender(w, r, p.Request)
}

// =============================================================================
// Helpers
// =============================================================================

func (s *Server) profile(r *http.Request) (store.Profile, error) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateProfileID(id); err != nil {
		return store.Profile{}, err
	}
	return s.store.Get(r.Context(), id)
}

func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (chart.Request, error) {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer body.Close()
	return kio.ReadRequest(body, requestFormat(r))
}

func (s *Server) respondLayout(w http.ResponseWriter, r *http.Request, req chart.Request) {
	opts := pipeline.Options{
		Request: req,
		Mode:    chart.Mode(r.URL.Query().Get("mode")),
		Logger:  s.logger,
	}
	layout, hit, err := s.runner.AssembleWithCacheInfo(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set(cacheHeader, hitOrMiss(hit))
	writeJSON(w, http.StatusOK, layout)
}

func (s *Server) respondRender(w http.ResponseWriter, r *http.Request, req chart.Request) {
	opts, err := renderOptions(r, req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Logger = s.logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	format := opts.Formats[0]
	w.Header().Set("Content-Type", render.ContentTypes[format])
	w.Header().Set(cacheHeader, hitOrMiss(result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit))
	w.Header().Set("ETag", artifactETag(result.Layout.ID, opts, format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// renderOptions reads the render query parameters. Exactly one format is
// rendered per response.
func renderOptions(r *http.Request, req chart.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	format, err := render.ParseFormat(q.Get("format"))
	if err != nil {
		return pipeline.Options{}, err
	}
	opts := pipeline.Options{
		Request: req,
		Mode:    chart.Mode(q.Get("mode")),
		Formats: []string{format},
		Title:   q.Get("title"),
		Theme:   q.Get("theme"),
	}
	if v := q.Get("size"); v != "" {
		size, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return pipeline.Options{}, errors.New(errors.ErrCodeInvalidInput, "invalid size %q", v)
		}
		opts.Size = size
	}
	if v := q.Get("degrees"); v != "" {
		degrees, err := strconv.ParseBool(v)
		if err != nil {
			return pipeline.Options{}, errors.New(errors.ErrCodeInvalidInput, "invalid degrees flag %q", v)
		}
		opts.Degrees = degrees
	}
	return opts, nil
}

// artifactETag identifies one rendered artifact: the layout plus every option
// that changes its bytes. opts must already carry its defaults.
func artifactETag(layoutID string, opts pipeline.Options, format string) string {
	key, _ := json.Marshal(opts.ArtifactKeyOpts(format))
	return strconv.Quote(layoutID + "-" + format + "-" + cache.Hash(key)[:16])
}

func hitOrMiss(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}
