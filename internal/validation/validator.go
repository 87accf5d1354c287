package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mmrzaf/fakesheet/internal/domain"
	"github.com/mmrzaf/fakesheet/internal/export"
	"github.com/mmrzaf/fakesheet/internal/registry"
)

type Validator struct {
	rules   *registry.RuleRegistry
	maxRows int
}

// NewValidator caps row counts at maxRows, or at the sheet limit when
// maxRows is zero or larger than the sheet allows.
func NewValidator(rules *registry.RuleRegistry, maxRows int) *Validator {
	if maxRows <= 0 || maxRows > export.MaxDataRows {
		maxRows = export.MaxDataRows
	}
	return &Validator{rules: rules, maxRows: maxRows}
}

func (v *Validator) MaxRows() int {
	return v.maxRows
}

// ValidateRequest checks what must hold before any row is generated.
// Unknown rule keys are allowed: those columns come out empty.
func (v *Validator) ValidateRequest(req *domain.GenerationRequest) error {
	if req == nil {
		return errors.New("request is required")
	}
	if len(req.Columns) == 0 {
		return errors.New("columns must be a non-empty list")
	}
	if len(req.Columns) > export.MaxColumns {
		return fmt.Errorf("too many columns: %d (max %d)", len(req.Columns), export.MaxColumns)
	}
	if req.Count <= 0 {
		return fmt.Errorf("count must be > 0, got %d", req.Count)
	}
	if req.Count > v.maxRows {
		return fmt.Errorf("count must be <= %d, got %d", v.maxRows, req.Count)
	}
	if !export.IsKnownFormat(req.Format) {
		return fmt.Errorf("unsupported format: %s", req.Format)
	}
	for i, col := range req.Columns {
		if strings.TrimSpace(col.HeaderName) == "" {
			return fmt.Errorf("column %d: header name is required", i+1)
		}
	}
	return nil
}

// ValidateConfig is stricter than ValidateRequest: a saved configuration
// must only use rule keys that resolve.
func (v *Validator) ValidateConfig(cfg *domain.SavedConfig) error {
	if cfg == nil {
		return errors.New("config is required")
	}
	if strings.TrimSpace(cfg.Name) == "" {
		return errors.New("config name is required")
	}
	if len(cfg.Columns) == 0 {
		return errors.New("config must have at least one column")
	}

	ids := make(map[string]bool)
	for i, col := range cfg.Columns {
		if strings.TrimSpace(col.HeaderName) == "" {
			return fmt.Errorf("column %d: header name is required", i+1)
		}
		if col.ID != "" {
			if ids[col.ID] {
				return fmt.Errorf("column %q: duplicate id %s", col.HeaderName, col.ID)
			}
			ids[col.ID] = true
		}
		if col.RuleKey == "" {
			return fmt.Errorf("column %q: rule key is required", col.HeaderName)
		}
		if _, err := v.rules.Get(col.RuleKey); err != nil {
			return fmt.Errorf("column %q: %w", col.HeaderName, err)
		}
		if col.RuleKey == domain.RuleCustomValue && col.CustomValue == nil {
			return fmt.Errorf("column %q: custom value rule needs custom_value", col.HeaderName)
		}
	}
	return nil
}
