// Package web is the HTTP shell around the estimator. It keeps no state of its own:
// every request carries the estimate in the s and d parameters and every action
// answers with a re-encoded URL.
package web

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"estimador/internal/clock"
	"estimador/internal/export"
	"estimador/internal/httpmw"
	"estimador/internal/quote"
	"estimador/internal/rules"
	"estimador/internal/selection"
	"estimador/internal/telemetry"
	"estimador/internal/urlstate"

	"github.com/a-h/templ"
)

const (
	summaryPath = "/summary"
	homePath    = "/"
)

type Options struct {
	Engine rules.Engine
	Clock  clock.Clock
	// PublicURL is the origin used in share links. Empty derives it from the request.
	PublicURL     string
	WhatsAppPhone string
	// Telemetry receives visitor actions and backs /api/stats. Nil disables both.
	Telemetry telemetry.Repository
	Logger    *log.Logger
}

type Handler struct {
	engine    rules.Engine
	clock     clock.Clock
	publicURL string
	phone     string
	telemetry telemetry.Repository
	logger    *log.Logger
}

func NewHandler(opts Options) *Handler {
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Handler{
		engine:    opts.Engine,
		clock:     opts.Clock,
		publicURL: strings.TrimRight(opts.PublicURL, "/"),
		phone:     opts.WhatsAppPhone,
		telemetry: opts.Telemetry,
		logger:    opts.Logger,
	}
}

// Register mounts pages, form actions and the JSON API on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/{$}", h.Home)
	mux.HandleFunc(summaryPath, h.Summary)
	mux.HandleFunc("/toggle", h.Toggle)
	mux.HandleFunc("/quantity", h.Quantity)
	mux.HandleFunc("/start-date", h.StartDate)
	mux.HandleFunc("/download", h.Download)
	mux.HandleFunc("/share", h.Share)

	mux.HandleFunc("/api/catalog", h.APICatalog)
	mux.HandleFunc("/api/quote", h.APIQuote)
	mux.HandleFunc("/api/quote/toggle", h.APIToggle)
	mux.HandleFunc("/api/quote/quantity", h.APIQuantity)
	if h.telemetry != nil {
		mux.HandleFunc("/api/stats", h.APIStats)
	}
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	h.record(telemetry.EventQuoteViewed, nil)
	templ.Handler(SelectorPage(h.view(r))).ServeHTTP(w, r)
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	templ.Handler(SummaryPage(h.view(r))).ServeHTTP(w, r)
}

// Toggle flips one task and sends the browser back to the page it came from.
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet, http.MethodPost) {
		return
	}
	id := strings.TrimSpace(r.FormValue("id"))
	state, start := h.load(r)
	state = selection.Toggle(h.engine.Catalog, state, id)
	h.recordTask(telemetry.EventTaskToggled, id, state)
	h.redirect(w, r, state, start)
}

func (h *Handler) Quantity(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	id := strings.TrimSpace(r.FormValue("id"))
	state, start := h.load(r)
	state = selection.SetQuantity(h.engine.Catalog, state, id, parseQuantity(r.FormValue("quantity")))
	h.recordTask(telemetry.EventQuantitySet, id, state)
	h.redirect(w, r, state, start)
}

// StartDate moves the start of the estimate. Weekends and days before today are not
// selectable and leave the current start in place.
func (h *Handler) StartDate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	state, start := h.load(r)
	start = h.pickStart(r.FormValue("date"), start)
	h.record(telemetry.EventStartDateSet, nil)
	h.redirect(w, r, state, start)
}

func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	state, start := h.load(r)
	now := h.clock.Now()
	doc := export.Document(quote.Build(h.engine, state, start), now)
	h.record(telemetry.EventDocumentDownloaded, nil)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(now)+`"`)
	_, _ = w.Write([]byte(doc))
}

func (h *Handler) Share(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	h.record(telemetry.EventShareOpened, nil)
	http.Redirect(w, r, h.view(r).WhatsAppURL, http.StatusFound)
}

func (h *Handler) record(t telemetry.EventType, meta telemetry.EventMetadata) {
	if h.telemetry == nil {
		return
	}
	if err := h.telemetry.RecordEvent(t, meta); err != nil {
		httpmw.Log(h.logger, "warn", "telemetry_record_failed", httpmw.Fields{"error": err.Error()})
	}
}

// recordTask notes a transition on a known task and whether it left the task active.
func (h *Handler) recordTask(t telemetry.EventType, id string, state selection.State) {
	if !h.engine.Catalog.Has(id) {
		return
	}
	h.record(t, telemetry.EventMetadata{
		"task_id": id,
		"active":  strconv.FormatBool(selection.IsActiveID(h.engine.Catalog, state, id)),
	})
}

func (h *Handler) load(r *http.Request) (selection.State, time.Time) {
	s := r.FormValue(urlstate.ParamSelection)
	d := r.FormValue(urlstate.ParamDate)
	return urlstate.Decode(h.engine.Catalog, s, d, h.clock.Now())
}

func (h *Handler) view(r *http.Request) QuoteView {
	state, start := h.load(r)
	return h.viewOf(r, state, start)
}

func (h *Handler) viewOf(r *http.Request, state selection.State, start time.Time) QuoteView {
	return buildView(h.engine, state, start, h.baseURL(r), h.phone)
}

func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, state selection.State, start time.Time) {
	s, d := urlstate.Encode(h.engine.Catalog, state, start)
	target := homePath
	if r.FormValue("return") == summaryPath {
		target = summaryPath
	}
	if q := urlstate.ToQuery(s, d).Encode(); q != "" {
		target += "?" + q
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *Handler) pickStart(raw string, current time.Time) time.Time {
	picked := urlstate.DecodeDate(raw, time.Time{})
	if picked.IsZero() || !quote.IsBusinessDay(picked) {
		return current
	}
	y, m, d := h.clock.Now().Date()
	if picked.Before(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)) {
		return current
	}
	return picked
}

// baseURL is the origin share links point at: the configured public URL, or the
// request's own scheme and host.
func (h *Handler) baseURL(r *http.Request) string {
	if h.publicURL != "" {
		return h.publicURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if p := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); p != "" {
		scheme = p
	}
	return scheme + "://" + r.Host + homePath
}

// parseQuantity reads a form quantity; SetQuantity clamps it to 0..MaxQuantity.
func parseQuantity(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

func allowMethod(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
	}
	w.Header().Set("Allow", strings.Join(methods, ", "))
	if strings.HasPrefix(r.URL.Path, "/api/") {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	w.WriteHeader(http.StatusMethodNotAllowed)
	return false
}
