package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"estimador/internal/catalog"
	"estimador/internal/selection"
	"estimador/internal/telemetry"
	"estimador/internal/urlstate"
)

const maxBodyBytes = 64 << 10

type actionRequest struct {
	S        string `json:"s"`
	D        string `json:"d"`
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

type catalogResponse struct {
	Categories []catalog.Category `json:"categories"`
	Tasks      []catalog.Task     `json:"tasks"`
}

func (h *Handler) APICatalog(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, catalogResponse{
		Categories: catalog.Categories(),
		Tasks:      h.engine.Catalog.Tasks(),
	})
}

func (h *Handler) APIQuote(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, h.view(r))
}

func (h *Handler) APIToggle(w http.ResponseWriter, r *http.Request) {
	h.apiAction(w, r, func(state selection.State, req actionRequest) selection.State {
		next := selection.Toggle(h.engine.Catalog, state, req.ID)
		h.recordTask(telemetry.EventTaskToggled, req.ID, next)
		return next
	})
}

func (h *Handler) APIQuantity(w http.ResponseWriter, r *http.Request) {
	h.apiAction(w, r, func(state selection.State, req actionRequest) selection.State {
		next := selection.SetQuantity(h.engine.Catalog, state, req.ID, req.Quantity)
		h.recordTask(telemetry.EventQuantitySet, req.ID, next)
		return next
	})
}

// APIStats summarizes recorded events, optionally since=YYYY-MM-DD.
func (h *Handler) APIStats(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	since := urlstate.DecodeDate(r.URL.Query().Get("since"), time.Time{})
	events, err := h.telemetry.GetEvents(since, nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "telemetry unavailable")
		return
	}
	writeJSON(w, http.StatusOK, telemetry.CalculateStats(events, since))
}

// apiAction decodes {s, d, id, quantity}, applies one transition and answers with
// the resulting view.
func (h *Handler) apiAction(w http.ResponseWriter, r *http.Request, apply func(selection.State, actionRequest) selection.State) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	var req actionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.ID = strings.TrimSpace(req.ID)
	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	state, start := urlstate.Decode(h.engine.Catalog, req.S, req.D, h.clock.Now())
	next := apply(state, req)
	writeJSON(w, http.StatusOK, h.viewOf(r, next, start))
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return errors.New("invalid json body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}
