package exec

import (
	"errors"
	"fmt"

	"github.com/mmrzaf/fakesheet/internal/domain"
	"github.com/mmrzaf/fakesheet/internal/generators"
	"github.com/mmrzaf/fakesheet/internal/logging"
	"github.com/mmrzaf/fakesheet/internal/registry"
)

var (
	ErrNoColumns       = errors.New("at least one column is required")
	ErrInvalidRowCount = errors.New("row count must be > 0")
)

// Builder turns column schemas into a header row plus generated data rows.
type Builder struct {
	rules  *registry.RuleRegistry
	logger *logging.Logger
}

func NewBuilder(rules *registry.RuleRegistry, logger *logging.Logger) *Builder {
	return &Builder{rules: rules, logger: logger}
}

type columnPlan struct {
	col      domain.Column
	gen      generators.Generator
	failures int
	lastErr  error
}

func (b *Builder) Build(src generators.Source, columns []domain.Column, rowCount int) (*domain.Grid, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}
	if rowCount <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidRowCount, rowCount)
	}

	plans := make([]*columnPlan, len(columns))
	header := make([]interface{}, len(columns))
	for i, col := range columns {
		header[i] = col.HeaderName
		gen, err := b.rules.Resolve(col.RuleKey)
		if err != nil {
			b.logger.Warnw("rule.unresolved", map[string]any{
				"column": col.HeaderName,
				"rule":   col.RuleKey,
				"error":  err.Error(),
			})
		}
		plans[i] = &columnPlan{col: col, gen: gen}
	}

	grid := &domain.Grid{Rows: make([][]interface{}, 0, rowCount+1)}
	grid.Rows = append(grid.Rows, header)

	for rowIdx := 0; rowIdx < rowCount; rowIdx++ {
		row := make([]interface{}, len(plans))
		for colIdx, p := range plans {
			row[colIdx] = generateCell(src, p, rowIdx)
		}
		grid.Rows = append(grid.Rows, row)
	}

	for _, p := range plans {
		if p.failures == 0 {
			continue
		}
		b.logger.Warnw("cell.generation_failed", map[string]any{
			"column":   p.col.HeaderName,
			"rule":     p.col.RuleKey,
			"failures": p.failures,
			"error":    p.lastErr.Error(),
		})
	}

	return grid, nil
}

// Generate produces a single value for col at rowIndex.
func (b *Builder) Generate(src generators.Source, col domain.Column, rowIndex int) interface{} {
	gen, _ := b.rules.Resolve(col.RuleKey)
	return generateCell(src, &columnPlan{col: col, gen: gen}, rowIndex)
}

// generateCell never fails: errors and panics become an empty cell and are
// counted on the plan.
func generateCell(src generators.Source, p *columnPlan, rowIdx int) (val interface{}) {
	defer func() {
		if r := recover(); r != nil {
			p.failures++
			p.lastErr = fmt.Errorf("panic: %v", r)
			val = ""
		}
	}()

	v, err := p.gen.Generate(src, generators.GeneratorContext{RowIndex: rowIdx, Column: p.col})
	if err != nil {
		p.failures++
		p.lastErr = err
		return ""
	}
	if v == nil {
		return ""
	}
	return v
}
