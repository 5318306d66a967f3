package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"deedflow/internal/platform/metrics"
	"deedflow/internal/platform/middleware"
	"deedflow/internal/tracking/models"
	id "deedflow/pkg/domain"
	dErrors "deedflow/pkg/domain-errors"
	"deedflow/pkg/platform/httputil"
)

// Service defines the tracking operations the transport needs.
type Service interface {
	Stages(ctx context.Context, txID id.TransactionID, pipelineTag string) (*models.StagesResponse, error)
	Progress(ctx context.Context, txID id.TransactionID, pipelineTag string) (*models.Progress, error)
	SetNotApplicable(ctx context.Context, txID id.TransactionID, pipelineTag, docTypeKey string, isNA bool, note string) error
	SaveNote(ctx context.Context, txID id.TransactionID, pipelineTag, docTypeKey, note string) error
	Catalog(pipelineTag string) (*models.CatalogResponse, error)
	InvalidateProgress(ctx context.Context, txID id.TransactionID) error
}

// Handler handles document-tracking endpoints.
type Handler struct {
	logger       *slog.Logger
	tracking     Service
	metrics      *metrics.Metrics
	jwtValidator middleware.JWTValidator
}

// New creates a new tracking Handler.
func New(
	tracking Service,
	logger *slog.Logger,
	metrics *metrics.Metrics,
	jwtValidator middleware.JWTValidator) *Handler {
	return &Handler{
		logger:       logger,
		tracking:     tracking,
		metrics:      metrics,
		jwtValidator: jwtValidator,
	}
}

// Register registers the tracking routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	trackingRouter := chi.NewRouter()
	trackingRouter.Use(middleware.Recovery(h.logger))
	trackingRouter.Use(middleware.RequestID)
	trackingRouter.Use(middleware.Logger(h.logger))
	trackingRouter.Use(middleware.Timeout(30 * time.Second))
	trackingRouter.Use(middleware.ContentTypeJSON)
	trackingRouter.Use(middleware.LatencyMiddleware(h.metrics))
	trackingRouter.Use(middleware.RequireAuth(h.jwtValidator, h.logger))
	trackingRouter.Get("/transactions/{transactionID}/stages", h.handleStages)
	trackingRouter.Get("/transactions/{transactionID}/progress", h.handleProgress)
	trackingRouter.Put("/transactions/{transactionID}/documents/{docTypeKey}/not-applicable", h.handleSetNotApplicable)
	trackingRouter.Patch("/transactions/{transactionID}/documents/{docTypeKey}/note", h.handleSaveNote)
	trackingRouter.Get("/catalog/{pipeline}", h.handleCatalog)

	r.Mount("/", trackingRouter)
}

// RegisterAdmin registers the operator surface. Routes are guarded by a
// shared admin token rather than user JWTs; an empty hash disables them.
func (h *Handler) RegisterAdmin(r chi.Router, adminTokenHash string) {
	adminRouter := chi.NewRouter()
	adminRouter.Use(middleware.Recovery(h.logger))
	adminRouter.Use(middleware.RequestID)
	adminRouter.Use(middleware.Logger(h.logger))
	adminRouter.Use(middleware.Timeout(30 * time.Second))
	adminRouter.Use(middleware.RequireAdminToken(adminTokenHash, h.logger))
	adminRouter.Delete("/transactions/{transactionID}/progress-cache", h.handleInvalidateProgress)

	r.Mount("/admin", adminRouter)
}

// handleStages returns the derived stage view for a transaction.
func (h *Handler) handleStages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	txID, err := id.ParseTransactionID(chi.URLParam(r, "transactionID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	resp, err := h.tracking.Stages(ctx, txID, r.URL.Query().Get("pipeline"))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to derive stages",
			"request_id", middleware.GetRequestID(ctx),
			"transaction_id", txID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, resp)
}

// handleProgress returns the progress summary only.
func (h *Handler) handleProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	txID, err := id.ParseTransactionID(chi.URLParam(r, "transactionID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	progress, err := h.tracking.Progress(ctx, txID, r.URL.Query().Get("pipeline"))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to compute progress",
			"request_id", middleware.GetRequestID(ctx),
			"transaction_id", txID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, progress)
}

// handleSetNotApplicable toggles the N/A flag for a document type. The write
// is immediate, unlike note edits.
func (h *Handler) handleSetNotApplicable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	txID, err := id.ParseTransactionID(chi.URLParam(r, "transactionID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	docTypeKey := chi.URLParam(r, "docTypeKey")

	var req models.SetNotApplicableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid not-applicable request",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	err = h.tracking.SetNotApplicable(ctx, txID, r.URL.Query().Get("pipeline"), docTypeKey, req.IsNotApplicable, req.Note)
	if err != nil {
		if dErrors.Is(err, dErrors.CodeNotFound) {
			httputil.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "failed to set not-applicable",
			"request_id", requestID,
			"transaction_id", txID,
			"doc_type_key", docTypeKey,
			"client_id", middleware.GetClientID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to update document status"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleSaveNote accepts a note edit for deferred persistence. 202 signals
// the write is scheduled, not yet durable.
func (h *Handler) handleSaveNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	txID, err := id.ParseTransactionID(chi.URLParam(r, "transactionID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	docTypeKey := chi.URLParam(r, "docTypeKey")

	var req models.SaveNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid note request",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	err = h.tracking.SaveNote(ctx, txID, r.URL.Query().Get("pipeline"), docTypeKey, req.Note)
	if err != nil {
		if dErrors.Is(err, dErrors.CodeNotFound) {
			httputil.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "failed to schedule note save",
			"request_id", requestID,
			"transaction_id", txID,
			"doc_type_key", docTypeKey,
			"client_id", middleware.GetClientID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to save note"))
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// handleInvalidateProgress drops the cached progress for a transaction so the
// next read recomputes from the stores.
func (h *Handler) handleInvalidateProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	txID, err := id.ParseTransactionID(chi.URLParam(r, "transactionID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.tracking.InvalidateProgress(ctx, txID); err != nil {
		h.logger.ErrorContext(ctx, "failed to invalidate progress cache",
			"request_id", middleware.GetRequestID(ctx),
			"transaction_id", txID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to invalidate progress cache"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleCatalog returns the static document-type catalog for one pipeline.
func (h *Handler) handleCatalog(w http.ResponseWriter, r *http.Request) {
	resp, err := h.tracking.Catalog(chi.URLParam(r, "pipeline"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}
