package server

import (
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dominauta/padring/pkg/buildinfo"
	"github.com/dominauta/padring/pkg/errors"
	"github.com/dominauta/padring/pkg/observability"
	"github.com/dominauta/padring/pkg/pad"
	"github.com/dominauta/padring/pkg/pipeline"
)

// fanoutRequest is the body of POST /v1/fanout: the pipeline options plus
// a flag to skip persistence. DevicePath is rejected; the API only takes
// inline devices.
type fanoutRequest struct {
	pipeline.Options
	NoStore bool `json:"no_store,omitempty"`
}

// fanoutResponse summarizes one pipeline run. Artifacts are base64 in the
// JSON encoding, keyed by format.
type fanoutResponse struct {
	LayoutID   string            `json:"layout_id,omitempty"`
	DeviceHash string            `json:"device_hash"`
	Device     string            `json:"device"`
	Baseline   float64           `json:"baseline"`
	Pads       int               `json:"pads"`
	Routes     int               `json:"routes"`
	Ordered    []string          `json:"ordered,omitempty"`
	Artifacts  map[string][]byte `json:"artifacts"`
	Cache      cacheInfo         `json:"cache"`
}

type cacheInfo struct {
	FanoutHit bool `json:"fanout_hit"`
	RenderHit bool `json:"render_hit"`
}

func (s *Server) handleFanout(w http.ResponseWriter, r *http.Request) {
	var req fanoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body"))
		return
	}
	if req.DevicePath != "" {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "device_path is not accepted over HTTP, inline the device"))
		return
	}

	result, err := s.runner.Execute(r.Context(), req.Options)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := fanoutResponse{
		DeviceHash: result.DeviceHash,
		Device:     result.Device.Name,
		Baseline:   result.Layout.Baseline,
		Pads:       result.Layout.PadCount(),
		Routes:     result.Layout.RouteCount(),
		Ordered:    result.Ordered,
		Artifacts:  result.Artifacts,
		Cache: cacheInfo{
			FanoutHit: result.CacheInfo.FanoutHit,
			RenderHit: result.CacheInfo.RenderHit,
		},
	}

	if !req.NoStore {
		start := time.Now()
		id, err := s.store.Save(r.Context(), result.Layout)
		observability.Store().OnSave(r.Context(), id, time.Since(start), err)
		if err != nil {
			// Persistence is best effort; the computation already
			// succeeded, so log and return the result without an ID.
			s.logger.Error("save layout", "err", err)
		} else {
			resp.LayoutID = id
		}
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateLayoutID(id); err != nil {
		s.writeError(w, r, err)
		return
	}

	start := time.Now()
	l, err := s.store.Get(r.Context(), id)
	observability.Store().OnFetch(r.Context(), id, err == nil, time.Since(start), err)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, l)
}

type padInfo struct {
	Name    string    `json:"name"`
	Default bool      `json:"default"`
	Size    []float64 `json:"size"`
	Ports   []string  `json:"ports"`
}

func (s *Server) handleListPads(w http.ResponseWriter, r *http.Request) {
	lib := pad.NewLibrary()

	infos := make([]padInfo, 0)
	for _, name := range lib.Names() {
		p, err := lib.Get(name)
		if err != nil {
			continue
		}
		ports := make([]string, 0, len(p.Ports))
		for port := range p.Ports {
			ports = append(ports, port)
		}
		sort.Strings(ports)
		infos = append(infos, padInfo{
			Name:    name,
			Default: name == lib.Default(),
			Size:    []float64{p.Size.Width, p.Size.Height},
			Ports:   ports,
		})
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"pads": infos})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}
