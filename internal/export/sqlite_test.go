package export

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmrzaf/fakesheet/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteExport_WritesAllRows(t *testing.T) {
	grid := sampleGrid()
	e := NewSQLiteExporter()
	e.BatchSize = 1
	data, err := e.Export(grid, "clientes")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.sqlite")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM "clientes"`).Scan(&n))
	assert.Equal(t, 2, n)

	var id int
	var name, created string
	require.NoError(t, db.QueryRow(`SELECT "ID", "Nome completo do cliente responsável", "Criado em" FROM "clientes" ORDER BY "ID" LIMIT 1`).Scan(&id, &name, &created))
	assert.Equal(t, 1, id)
	assert.Equal(t, "Ana Souza", name)
	assert.Equal(t, "2024-05-01T10:30:00Z", created)
}

func TestUniqueColumnNames(t *testing.T) {
	got := uniqueColumnNames([]string{"Nome", "nome", "", "Nome_2"})
	assert.Equal(t, []string{"Nome", "nome_2", "coluna_3", "Nome_2_2"}, got)

	got = uniqueColumnNames([]string{"a_2", "a", "a", "A"})
	assert.Equal(t, []string{"a_2", "a", "a_3", "A_4"}, got)
}

func TestSQLiteExport_SuffixDoesNotCollideWithTypedHeader(t *testing.T) {
	grid := &domain.Grid{Rows: [][]interface{}{
		{"a_2", "a", "a"},
		{"x", "y", "z"},
	}}
	data, err := NewSQLiteExporter().Export(grid, "dados")
	require.NoError(t, err)
	assert.True(t, len(data) > 0)
}

func TestForFormat(t *testing.T) {
	e, err := ForFormat("")
	require.NoError(t, err)
	assert.Equal(t, domain.FormatXLSX, e.Extension())

	e, err = ForFormat("SQLite")
	require.NoError(t, err)
	assert.Equal(t, domain.FormatSQLite, e.Extension())

	_, err = ForFormat("pdf")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.False(t, IsKnownFormat("pdf"))
}
