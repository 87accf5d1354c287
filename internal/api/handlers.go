package api

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/mmrzaf/fakesheet/internal/app"
	"github.com/mmrzaf/fakesheet/internal/domain"
	"github.com/mmrzaf/fakesheet/internal/infra/repos/configs"
	"github.com/mmrzaf/fakesheet/internal/logging"
)

// maxBodyBytes bounds a generation request body.
const maxBodyBytes = 1 << 20

type Handler struct {
	configRepo    configs.Repository
	exportService *app.ExportService
	logger        *logging.Logger
}

func NewHandler(configRepo configs.Repository, exportService *app.ExportService, logger *logging.Logger) *Handler {
	return &Handler{
		configRepo:    configRepo,
		exportService: exportService,
		logger:        logger,
	}
}

// Generate streams the document back as an attachment.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req domain.GenerationRequest
	if err := decodeJSONStrict(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	res, err := h.exportService.Export(&req)
	if err != nil {
		if errors.Is(err, app.ErrInvalidRequest) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Errorw("generate.failed", map[string]any{"error": err.Error()})
		writeError(w, http.StatusInternalServerError, "failed to build spreadsheet")
		return
	}

	w.Header().Set("Content-Type", res.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": res.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(res.Data)))
	w.Header().Set("X-Config-Hash", res.ConfigHash)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Data)
}

func (h *Handler) ListRules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.exportService.Rules())
}

func (h *Handler) ListConfigs(w http.ResponseWriter, r *http.Request) {
	list, err := h.configRepo.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	cfg, err := h.configRepo.Get(name)
	if errors.Is(err, configs.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		h.logger.Errorw("config.load_failed", map[string]any{"name": name, "error": err.Error()})
		writeError(w, http.StatusInternalServerError, "failed to load config")
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeJSONStrict(r *http.Request, out any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}
