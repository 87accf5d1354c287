package validation

import (
	"errors"
	"testing"

	"github.com/mmrzaf/fakesheet/internal/domain"
	"github.com/mmrzaf/fakesheet/internal/export"
	"github.com/mmrzaf/fakesheet/internal/registry"
)

func validRequest() *domain.GenerationRequest {
	return &domain.GenerationRequest{
		Columns: []domain.Column{
			{HeaderName: "ID", RuleKey: domain.RuleRowIndex},
			{HeaderName: "Nome", RuleKey: "person.fullName"},
		},
		Count:      3,
		ConfigName: "clientes",
	}
}

func TestValidateRequest(t *testing.T) {
	v := NewValidator(registry.DefaultRuleRegistry(), 100)
	if err := v.ValidateRequest(validRequest()); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	cases := map[string]func(r *domain.GenerationRequest){
		"no columns":     func(r *domain.GenerationRequest) { r.Columns = nil },
		"zero count":     func(r *domain.GenerationRequest) { r.Count = 0 },
		"negative count": func(r *domain.GenerationRequest) { r.Count = -4 },
		"too many rows":  func(r *domain.GenerationRequest) { r.Count = 101 },
		"blank header":   func(r *domain.GenerationRequest) { r.Columns[1].HeaderName = "  " },
		"bad format":     func(r *domain.GenerationRequest) { r.Format = "pdf" },
	}
	for name, mutate := range cases {
		req := validRequest()
		mutate(req)
		if err := v.ValidateRequest(req); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestValidateRequest_AllowsUnknownRules(t *testing.T) {
	v := NewValidator(registry.DefaultRuleRegistry(), 100)
	req := validRequest()
	req.Columns[1].RuleKey = "vehicle.model"
	if err := v.ValidateRequest(req); err != nil {
		t.Fatalf("unknown rules should not fail the request, got %v", err)
	}
}

func TestNewValidator_CapsAtSheetLimit(t *testing.T) {
	if got := NewValidator(registry.DefaultRuleRegistry(), 0).MaxRows(); got != export.MaxDataRows {
		t.Fatalf("expected sheet limit, got %d", got)
	}
	if got := NewValidator(registry.DefaultRuleRegistry(), 5_000_000).MaxRows(); got != export.MaxDataRows {
		t.Fatalf("expected sheet limit, got %d", got)
	}
}

func TestValidateConfig(t *testing.T) {
	v := NewValidator(registry.DefaultRuleRegistry(), 0)
	x := "fixo"
	ok := &domain.SavedConfig{
		Name: "clientes",
		Columns: []domain.Column{
			{ID: "a", HeaderName: "ID", RuleKey: domain.RuleRowIndex},
			{ID: "b", HeaderName: "Tipo", RuleKey: domain.RuleCustomValue, CustomValue: &x},
		},
	}
	if err := v.ValidateConfig(ok); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	unknown := &domain.SavedConfig{Name: "x", Columns: []domain.Column{{HeaderName: "A", RuleKey: "person.shoeSize"}}}
	if err := v.ValidateConfig(unknown); !errors.Is(err, registry.ErrUnknownMethod) {
		t.Fatalf("expected unknown method error, got %v", err)
	}

	dup := &domain.SavedConfig{Name: "x", Columns: []domain.Column{
		{ID: "a", HeaderName: "A", RuleKey: domain.RuleEmpty},
		{ID: "a", HeaderName: "B", RuleKey: domain.RuleEmpty},
	}}
	if err := v.ValidateConfig(dup); err == nil {
		t.Fatal("expected duplicate id error")
	}

	noCustom := &domain.SavedConfig{Name: "x", Columns: []domain.Column{{HeaderName: "A", RuleKey: domain.RuleCustomValue}}}
	if err := v.ValidateConfig(noCustom); err == nil {
		t.Fatal("expected missing custom value error")
	}

	randomOpts := &domain.SavedConfig{Name: "x", Columns: []domain.Column{{HeaderName: "A", RuleKey: domain.RuleRandomOptions}}}
	if err := v.ValidateConfig(randomOpts); !errors.Is(err, registry.ErrUnsupportedRule) {
		t.Fatalf("expected unsupported rule error, got %v", err)
	}
}
