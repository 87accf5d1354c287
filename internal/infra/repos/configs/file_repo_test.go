package configs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmrzaf/fakesheet/internal/domain"
)

const clientesYAML = `name: clientes
columns:
  - header_name: ID
    rule_key: "##ROW_INDEX##"
  - id: fixed-id
    header_name: Nome
    rule_key: person.fullName
  - header_name: Origem
    rule_key: "##CUSTOM_VALUE##"
    custom_value: importado
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestListAndGet(t *testing.T) {
	base := t.TempDir()
	writeFile(t, base, "clientes.yaml", clientesYAML)
	writeFile(t, base, "fornecedores.json", `{"columns":[{"headerName":"CNPJ","fakerMappingKey":"custom.cnpj"}]}`)
	writeFile(t, base, "broken.yaml", "columns: [")
	writeFile(t, base, "notes.txt", "ignored")

	repo := NewFileRepository(base)
	list, err := repo.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 configs, got %d", len(list))
	}
	if list[0].Name != "clientes" || list[1].Name != "fornecedores" {
		t.Fatalf("unexpected order: %q, %q", list[0].Name, list[1].Name)
	}

	cfg, err := repo.Get("clientes")
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(cfg.Columns))
	}
	if cfg.Columns[0].ID == "" || cfg.Columns[1].ID != "fixed-id" {
		t.Fatalf("expected generated and preserved ids, got %q and %q", cfg.Columns[0].ID, cfg.Columns[1].ID)
	}
	if cfg.Columns[0].RuleKey != domain.RuleRowIndex {
		t.Fatalf("unexpected rule key %q", cfg.Columns[0].RuleKey)
	}
	if cfg.Columns[2].CustomValue == nil || *cfg.Columns[2].CustomValue != "importado" {
		t.Fatalf("expected custom value, got %#v", cfg.Columns[2].CustomValue)
	}

	fromJSON, err := repo.Get("fornecedores")
	if err != nil {
		t.Fatal(err)
	}
	if fromJSON.Columns[0].RuleKey != "custom.cnpj" {
		t.Fatalf("expected legacy rule key to decode, got %q", fromJSON.Columns[0].RuleKey)
	}

	if _, err := repo.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGet_MatchesStemOrDeclaredName(t *testing.T) {
	base := t.TempDir()
	writeFile(t, base, "clientes.yaml", "name: Clientes VIP\n"+strings.TrimPrefix(clientesYAML, "name: clientes\n"))
	repo := NewFileRepository(base)

	byStem, err := repo.Get("clientes")
	if err != nil {
		t.Fatalf("expected lookup by file stem, got %v", err)
	}
	if byStem.Name != "Clientes VIP" {
		t.Fatalf("unexpected name %q", byStem.Name)
	}

	byName, err := repo.Get("Clientes VIP")
	if err != nil {
		t.Fatalf("expected lookup by declared name, got %v", err)
	}
	if len(byName.Columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(byName.Columns))
	}
}

func TestGet_BrokenFileIsNotNotFound(t *testing.T) {
	base := t.TempDir()
	writeFile(t, base, "broken.yaml", "columns: [")
	repo := NewFileRepository(base)

	_, err := repo.Get("broken")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("parse failure reported as not found: %v", err)
	}
}

func TestList_MissingDirIsEmpty(t *testing.T) {
	list, err := NewFileRepository(filepath.Join(t.TempDir(), "nope")).List()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no configs, got %d", len(list))
	}
}

func TestGetByPath_RejectsPathTraversal(t *testing.T) {
	base := t.TempDir()
	repo := NewFileRepository(base)
	writeFile(t, base, "ok.yaml", clientesYAML)

	if _, err := repo.GetByPath("ok.yaml"); err != nil {
		t.Fatalf("expected config load inside base dir, got %v", err)
	}
	if _, err := repo.GetByPath(filepath.Join(base, "ok.yaml")); err != nil {
		t.Fatalf("expected absolute path inside base dir to load, got %v", err)
	}

	outside := writeFile(t, t.TempDir(), "outside.yaml", clientesYAML)
	if _, err := repo.GetByPath(outside); err == nil {
		t.Fatal("expected traversal rejection for outside absolute path")
	}
	if _, err := repo.GetByPath("../outside.yaml"); err == nil {
		t.Fatal("expected traversal rejection for relative path escape")
	}
}
