package registry

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/mmrzaf/fakesheet/internal/domain"
	"github.com/mmrzaf/fakesheet/internal/generators"
)

var (
	ErrUnknownNamespace = errors.New("unknown rule namespace")
	ErrUnknownMethod    = errors.New("unknown rule method")
	ErrUnsupportedRule  = errors.New("rule not supported")
)

// RuleRegistry maps rule keys to generators and keeps the catalog order
// used by the form.
type RuleRegistry struct {
	mu          sync.RWMutex
	rules       map[string]generators.Generator
	namespaces  map[string]struct{}
	unsupported map[string]struct{}
	catalog     []domain.RuleOption
}

func NewRuleRegistry() *RuleRegistry {
	return &RuleRegistry{
		rules:       make(map[string]generators.Generator),
		namespaces:  make(map[string]struct{}),
		unsupported: make(map[string]struct{}),
	}
}

func (r *RuleRegistry) Register(key, label string, gen generators.Generator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.rules[key]; !exists {
		r.catalog = append(r.catalog, domain.RuleOption{Key: key, Label: label, Supported: true})
	}
	r.rules[key] = gen
	if ns, _, ok := strings.Cut(key, "."); ok {
		r.namespaces[ns] = struct{}{}
	}
}

// RegisterUnsupported lists a key in the catalog without a generator.
func (r *RuleRegistry) RegisterUnsupported(key, label string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unsupported[key] = struct{}{}
	r.catalog = append(r.catalog, domain.RuleOption{Key: key, Label: label})
}

func (r *RuleRegistry) Get(key string) (generators.Generator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if gen, ok := r.rules[key]; ok {
		return gen, nil
	}
	if _, ok := r.unsupported[key]; ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedRule, key)
	}
	namespace, method, _ := strings.Cut(key, ".")
	if _, ok := r.namespaces[namespace]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNamespace, namespace)
	}
	return nil, fmt.Errorf("%w: %q in namespace %q", ErrUnknownMethod, method, namespace)
}

// Resolve always returns a usable generator. Keys that Get rejects resolve
// to one that yields an empty string, alongside the reason.
func (r *RuleRegistry) Resolve(key string) (generators.Generator, error) {
	gen, err := r.Get(key)
	if err != nil {
		return generators.Empty, err
	}
	return gen, nil
}

func (r *RuleRegistry) Catalog() []domain.RuleOption {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.RuleOption, len(r.catalog))
	copy(out, r.catalog)
	return out
}

func DefaultRuleRegistry() *RuleRegistry {
	r := NewRuleRegistry()
	r.Register(domain.RuleRowIndex, "Número da Linha (ID Sequencial)", generators.RowIndex)
	r.Register("string.uuid", "ID Único (UUID)", generators.UUID)
	r.Register("person.fullName", "Pessoa: Nome Completo", generators.FullName)
	r.Register("person.firstName", "Pessoa: Primeiro Nome", generators.FirstName)
	r.Register("person.lastName", "Pessoa: Sobrenome", generators.LastName)
	r.Register("internet.email", "Contato: Email", generators.Email)
	r.Register("phone.number", "Contato: Telefone (Genérico)", generators.PhoneNumber)
	r.Register("custom.phone_pt_BR", "Contato: Telefone (Brasil)", generators.LocalePhone)
	r.Register("custom.cpf", "Documento: CPF (Fictício Formatado)", generators.CPF)
	r.Register("custom.cnpj", "Documento: CNPJ (Fictício Formatado)", generators.CNPJ)
	r.Register("location.city", "Endereço: Cidade", generators.City)
	r.Register("location.state", "Endereço: Estado", generators.State)
	r.Register("location.streetAddress", "Endereço: Rua", generators.StreetAddress)
	r.Register("location.zipCode", "Endereço: CEP", generators.ZipCode)
	r.Register("number.int", "Número: Inteiro", generators.Int)
	r.Register("number.float", "Número: Decimal", generators.Float)
	r.Register("date.past", "Data: Passada", generators.PastDate)
	r.Register("date.future", "Data: Futura", generators.FutureDate)
	r.Register("date.recent", "Data: Recente", generators.RecentDate)
	r.Register("custom.booleanSimNao", "Lógico: Sim/Não", generators.YesNo)
	r.Register("lorem.sentence", "Texto: Frase", generators.Sentence)
	r.Register("lorem.paragraph", "Texto: Parágrafo", generators.Paragraph)
	r.Register("lorem.word", "Texto: Palavra", generators.Word)
	r.Register("company.name", "Empresa: Nome", generators.CompanyName)
	r.Register("internet.userName", "Internet: Usuário", generators.UserName)
	r.Register("internet.url", "Internet: URL", generators.URL)
	r.Register("internet.ipv4", "Internet: Endereço IPv4", generators.IPv4)
	r.Register(domain.RuleEmpty, "Valor: Vazio", generators.Empty)
	r.Register(domain.RuleCustomValue, "Valor Fixo (Personalizado)", generators.CustomValue)
	// TODO: wire a generator once the sampling policy for randomOptions is decided.
	r.RegisterUnsupported(domain.RuleRandomOptions, "Valor Aleatório (Entre Opções)")
	return r
}
