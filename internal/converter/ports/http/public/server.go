package public

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hdlima/conversor/deploy/config"
	mwLogger "github.com/hdlima/conversor/internal/converter/ports/http/public/middleware/logger"
	"github.com/hdlima/conversor/internal/entities"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxHistoryDays = 365

type Server struct {
	Server  *http.Server
	cfg     *config.Config
	service Service
}

func NewServer(service Service, cfg *config.Config) *Server {
	server := &Server{
		cfg:     cfg,
		service: service,
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mwLogger.New())
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/rates", server.GetRates)
	r.Get("/convert", server.Convert)
	r.Get("/history", server.GetHistory)

	server.Server = &http.Server{
		Addr:         ":" + cfg.HTTPServer.Port,
		Handler:      r,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return server
}

func StartServer(ctx context.Context, service Service, cfg *config.Config) <-chan struct{} {
	server := NewServer(service, cfg)

	doneChan := make(chan struct{})

	go func() {
		if err := server.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Http server error", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Failed to stop server", "error", err)
		}

		close(doneChan)
	}()

	return doneChan
}

type ratesResponse struct {
	Rates      map[string]float64 `json:"rates"`
	Base       string             `json:"base"`
	LastUpdate time.Time          `json:"lastUpdate"`
}

type convertResponse struct {
	From            string                  `json:"from"`
	To              string                  `json:"to"`
	Amount          float64                 `json:"amount"`
	Result          float64                 `json:"result"`
	Rate            float64                 `json:"rate"`
	LastUpdate      time.Time               `json:"lastUpdate"`
	History         []entities.HistoryPoint `json:"history"`
	HistoryFidelity string                  `json:"historyFidelity"`
}

type historyResponse struct {
	History  []entities.HistoryPoint `json:"history"`
	Fidelity string                  `json:"fidelity"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func (s *Server) GetRates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	force := r.URL.Query().Get("refresh") == "true"

	snap, err := s.service.GetRates(ctx, force)
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Failed to fetch rates", err.Error())
		return
	}

	w.Header().Set("Cache-Control", "public, s-maxage=600, stale-while-revalidate=300")

	RespondWithJSON(w, http.StatusOK, ratesResponse{
		Rates:      snap.Rates,
		Base:       snap.Base,
		LastUpdate: snap.FetchedAt,
	})
}

func (s *Server) Convert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()
	from := q.Get("from")
	to := q.Get("to")

	if from == "" || to == "" || q.Get("amount") == "" {
		RespondWithError(w, http.StatusBadRequest, "Invalid parameters. Required: from, to, amount")
		return
	}

	amount, err := strconv.ParseFloat(q.Get("amount"), 64)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid parameters. Required: from, to, amount")
		return
	}

	conversion, err := s.service.Convert(ctx, from, to, amount)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrInvalidInput):
			RespondWithError(w, http.StatusBadRequest, "Invalid parameters. Required: from, to, amount")
		case errors.Is(err, entities.ErrCurrencyNotFound):
			RespondWithError(w, http.StatusNotFound, "Currency not found")
		default:
			RespondWithError(w, http.StatusInternalServerError, "Conversion failed", err.Error())
		}
		return
	}

	RespondWithJSON(w, http.StatusOK, convertResponse{
		From:            conversion.From,
		To:              conversion.To,
		Amount:          conversion.Amount,
		Result:          conversion.Result,
		Rate:            conversion.Rate,
		LastUpdate:      conversion.LastUpdate,
		History:         conversion.History.Points,
		HistoryFidelity: conversion.History.Fidelity,
	})
}

func (s *Server) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()

	from := q.Get("from")
	if from == "" {
		from = "USD"
	}

	to := q.Get("to")
	if to == "" {
		to = "BRL"
	}

	days := s.cfg.History.DefaultDays
	if raw := q.Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxHistoryDays {
			RespondWithError(w, http.StatusBadRequest, "Invalid days parameter")
			return
		}
		days = parsed
	}

	history := s.service.GetHistory(ctx, from, to, days)

	RespondWithJSON(w, http.StatusOK, historyResponse{
		History:  history.Points,
		Fidelity: history.Fidelity,
	})
}

func RespondWithJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode response", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string, details ...string) {
	response := errorResponse{Error: message}
	if len(details) > 0 {
		response.Message = details[0]
	}

	RespondWithJSON(w, code, response)
}
