// Package server exposes the planner engine and profile store over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rgehrsitz/fireplan/internal/calculation"
	"github.com/rgehrsitz/fireplan/internal/config"
	"github.com/rgehrsitz/fireplan/internal/domain"
	"github.com/rgehrsitz/fireplan/internal/output"
	"github.com/rgehrsitz/fireplan/internal/store"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultMaxBodyBytes caps uploaded snapshots
const DefaultMaxBodyBytes = 1 << 20

// Options configures the HTTP handler
type Options struct {
	Logger       *zap.Logger
	Engine       *calculation.CalculationEngine
	Store        store.ProfileStore // nil disables the profile routes
	Registry     *prometheus.Registry
	MaxBodyBytes int64
	Version      string
}

type handler struct {
	logger       *zap.Logger
	engine       *calculation.CalculationEngine
	store        store.ProfileStore
	parser       *config.InputParser
	metrics      *Metrics
	maxBodyBytes int64
	version      string
}

// NewHandler constructs the router serving the planner API
func NewHandler(opts Options) http.Handler {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Engine == nil {
		opts.Engine = calculation.NewCalculationEngine()
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if strings.TrimSpace(opts.Version) == "" {
		opts.Version = "dev"
	}

	h := &handler{
		logger:       opts.Logger,
		engine:       opts.Engine,
		store:        opts.Store,
		parser:       config.NewInputParser(),
		metrics:      NewMetrics(opts.Registry),
		maxBodyBytes: opts.MaxBodyBytes,
		version:      opts.Version,
	}

	r := mux.NewRouter()
	r.Use(h.instrument)

	r.HandleFunc("/healthz", h.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	r.MethodNotAllowedHandler = http.HandlerFunc(h.handleMethodNotAllowed)
	api.MethodNotAllowedHandler = http.HandlerFunc(h.handleMethodNotAllowed)
	api.HandleFunc("/report", h.handleReport).Methods(http.MethodPost)
	api.HandleFunc("/breakdown", h.handleBreakdown).Methods(http.MethodPost)
	api.HandleFunc("/mortgage", h.handleMortgage).Methods(http.MethodPost)
	api.HandleFunc("/networth", h.handleNetWorth).Methods(http.MethodPost)
	api.HandleFunc("/profiles", h.handleListProfiles).Methods(http.MethodGet)
	api.HandleFunc("/profiles/{id}", h.handleGetProfile).Methods(http.MethodGet)
	api.HandleFunc("/profiles/{id}", h.handlePutProfile).Methods(http.MethodPut)
	api.HandleFunc("/profiles/{id}", h.handleDeleteProfile).Methods(http.MethodDelete)

	return r
}

// Run serves handler on addr until ctx is cancelled, then shuts down gracefully
func Run(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	}
}

func (h *handler) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.respondError(w, r, http.StatusMethodNotAllowed, fmt.Sprintf("method %s not allowed", r.Method))
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": h.version})
}

// readState decodes a YAML or JSON snapshot from the request body
func (h *handler) readState(w http.ResponseWriter, r *http.Request) (*domain.AppState, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("snapshot exceeds limit of %d bytes", h.maxBodyBytes))
			return nil, false
		}
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to read snapshot: %v", err))
		return nil, false
	}
	if len(data) == 0 {
		h.respondError(w, r, http.StatusBadRequest, "request body is empty")
		return nil, false
	}

	state, err := h.parser.LoadFromBytes(data)
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return state, true
}

// handleReport runs the whole engine. ?format= selects any registered output format.
func (h *handler) handleReport(w http.ResponseWriter, r *http.Request) {
	state, ok := h.readState(w, r)
	if !ok {
		return
	}
	report := h.engine.Run(state)
	h.metrics.Reports.WithLabelValues("report").Inc()

	format := r.URL.Query().Get("format")
	if format == "" || output.NormalizeFormatName(format) == "json" {
		h.writeJSON(w, http.StatusOK, report)
		return
	}

	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		h.respondError(w, r, http.StatusBadRequest,
			fmt.Sprintf("unknown format %q, available: %s", format, strings.Join(output.AvailableFormats(), ", ")))
		return
	}
	body, err := formatter.Format(report)
	if err != nil {
		h.respondError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to format report: %v", err))
		return
	}
	w.Header().Set("Content-Type", contentType(output.NormalizeFormatName(format)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		h.logger.Error("failed to write response", zap.Error(err))
	}
}

func contentType(format string) string {
	switch format {
	case "csv":
		return "text/csv; charset=utf-8"
	case "yaml":
		return "application/yaml"
	case "html":
		return "text/html; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

func (h *handler) handleBreakdown(w http.ResponseWriter, r *http.Request) {
	state, ok := h.readState(w, r)
	if !ok {
		return
	}
	breakdown := h.engine.CalculateNetIncomeBreakdown(state)
	h.metrics.Reports.WithLabelValues("breakdown").Inc()
	h.writeJSON(w, http.StatusOK, breakdown)
}

type mortgageResponse struct {
	Simulation domain.MortgageSimulation `json:"simulation"`
	Capacity   domain.RepaymentCapacity  `json:"capacity"`
}

func (h *handler) handleMortgage(w http.ResponseWriter, r *http.Request) {
	state, ok := h.readState(w, r)
	if !ok {
		return
	}
	if state.UserSettings.IsRenting {
		h.respondError(w, r, http.StatusUnprocessableEntity, "household is renting; there is no mortgage to simulate")
		return
	}
	surplus := h.engine.Surplus(state)
	resp := mortgageResponse{
		Simulation: h.engine.GenerateMortgageSimulation(state),
		Capacity:   calculation.CalculateRepaymentCapacity(state, surplus),
	}
	h.metrics.Reports.WithLabelValues("mortgage").Inc()
	h.writeJSON(w, http.StatusOK, resp)
}

// handleNetWorth projects net worth. ?surplus= overrides the annual surplus
// derived from the budget.
func (h *handler) handleNetWorth(w http.ResponseWriter, r *http.Request) {
	state, ok := h.readState(w, r)
	if !ok {
		return
	}

	surplus := h.engine.Surplus(state)
	if raw := r.URL.Query().Get("surplus"); raw != "" {
		override, err := decimal.NewFromString(raw)
		if err != nil {
			h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid surplus %q: %v", raw, err))
			return
		}
		if override.IsNegative() {
			h.respondError(w, r, http.StatusBadRequest, "surplus cannot be negative")
			return
		}
		surplus = override
	}

	h.metrics.Reports.WithLabelValues("networth").Inc()
	h.writeJSON(w, http.StatusOK, h.engine.GenerateNetWorthSimulation(state, surplus))
}

type profilesResponse struct {
	Current  string          `json:"current"`
	Profiles []store.Profile `json:"profiles"`
}

func (h *handler) requireStore(w http.ResponseWriter, r *http.Request) bool {
	if h.store == nil {
		h.respondError(w, r, http.StatusServiceUnavailable, "profile store is not configured")
		return false
	}
	return true
}

func (h *handler) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w, r) {
		return
	}
	profiles, err := h.store.ListProfiles(r.Context())
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	current, err := h.store.CurrentProfile(r.Context())
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, profilesResponse{Current: current, Profiles: profiles})
}

func (h *handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w, r) {
		return
	}
	state, err := h.store.LoadState(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, state)
}

// handlePutProfile saves a snapshot, creating the profile when it is new.
// ?name= names a new profile; otherwise the household name or the ID is used.
func (h *handler) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w, r) {
		return
	}
	id := mux.Vars(r)["id"]
	state, ok := h.readState(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	profiles, err := h.store.ListProfiles(ctx)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	status := http.StatusOK
	if !hasProfile(profiles, id) || r.URL.Query().Get("name") != "" {
		if !hasProfile(profiles, id) {
			status = http.StatusCreated
		}
		name := firstNonEmpty(r.URL.Query().Get("name"), state.UserSettings.Name, id)
		if _, err := h.store.SaveProfile(ctx, store.Profile{ID: id, Name: name}); err != nil {
			h.respondStoreError(w, r, err)
			return
		}
	}
	if err := h.store.SaveState(ctx, id, state); err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	h.writeJSON(w, status, map[string]string{"id": id})
}

func (h *handler) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w, r) {
		return
	}
	if err := h.store.DeleteProfile(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func hasProfile(profiles []store.Profile, id string) bool {
	for _, p := range profiles {
		if p.ID == id {
			return true
		}
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func (h *handler) respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrProfileNotFound):
		h.respondError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrDefaultProfile), errors.Is(err, store.ErrProfileActive):
		h.respondError(w, r, http.StatusConflict, err.Error())
	default:
		h.respondError(w, r, http.StatusInternalServerError, err.Error())
	}
}

func (h *handler) respondError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.logger.Warn("request failed",
		zap.String("route", routeName(r)),
		zap.Int("status", status),
		zap.String("error", msg),
	)
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
