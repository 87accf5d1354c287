package app

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/mmrzaf/fakesheet/internal/domain"
	"github.com/mmrzaf/fakesheet/internal/exec"
	"github.com/mmrzaf/fakesheet/internal/export"
	"github.com/mmrzaf/fakesheet/internal/generators"
	"github.com/mmrzaf/fakesheet/internal/hashing"
	"github.com/mmrzaf/fakesheet/internal/logging"
	"github.com/mmrzaf/fakesheet/internal/registry"
	"github.com/mmrzaf/fakesheet/internal/validation"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrExportFailed   = errors.New("export failed")
)

type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
	ConfigHash  string
	Seed        int64
	Rows        int
	Columns     int
}

// ExportService runs one request end to end: validate, generate, serialize.
// It holds no per-request state and is safe for concurrent use.
type ExportService struct {
	rules     *registry.RuleRegistry
	validator *validation.Validator
	builder   *exec.Builder
	logger    *logging.Logger
	sheetName string
	now       func() time.Time
}

func NewExportService(rules *registry.RuleRegistry, logger *logging.Logger, sheetName string, maxRows int) *ExportService {
	return &ExportService{
		rules:     rules,
		validator: validation.NewValidator(rules, maxRows),
		builder:   exec.NewBuilder(rules, logger.WithComponent("builder")),
		logger:    logger,
		sheetName: sheetName,
		now:       time.Now,
	}
}

func (s *ExportService) Validator() *validation.Validator {
	return s.validator
}

func (s *ExportService) Rules() []domain.RuleOption {
	return s.rules.Catalog()
}

func (s *ExportService) Export(req *domain.GenerationRequest) (*ExportResult, error) {
	if err := s.validator.ValidateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	exporter, err := export.ForFormat(req.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	configHash, err := hashing.HashRequest(req)
	if err != nil {
		return nil, fmt.Errorf("%w: hash request: %v", ErrExportFailed, err)
	}

	seed := generateSeed()
	if req.Seed != nil {
		seed = *req.Seed
	}

	started := s.now()
	src := generators.NewLocaleSource(seed, started)

	grid, err := s.builder.Build(src, req.Columns, req.Count)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	data, err := exporter.Export(grid, s.sheetName)
	if err != nil {
		s.logger.Errorw("export.failed", map[string]any{
			"config_name": req.ConfigName,
			"config_hash": configHash,
			"format":      exporter.Extension(),
			"error":       err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	res := &ExportResult{
		Filename:    export.Filename(req.ConfigName, exporter.Extension(), started),
		ContentType: exporter.ContentType(),
		Data:        data,
		ConfigHash:  configHash,
		Seed:        seed,
		Rows:        req.Count,
		Columns:     len(req.Columns),
	}

	s.logger.Infow("export.completed", map[string]any{
		"config_name": req.ConfigName,
		"config_hash": configHash,
		"format":      exporter.Extension(),
		"rows":        res.Rows,
		"columns":     res.Columns,
		"bytes":       len(data),
		"seed":        seed,
		"duration_ms": time.Since(started).Milliseconds(),
	})
	return res, nil
}

func generateSeed() int64 {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return int64(binary.LittleEndian.Uint64(b[:]))
}
