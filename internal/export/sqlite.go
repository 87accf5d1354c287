package export

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/mmrzaf/fakesheet/internal/domain"
)

const sqliteContentType = "application/vnd.sqlite3"

// SQLiteExporter writes the grid as one table in a standalone SQLite file.
// The sheet label becomes the table name.
type SQLiteExporter struct {
	BatchSize int
}

func NewSQLiteExporter() *SQLiteExporter {
	return &SQLiteExporter{BatchSize: 1000}
}

func (e *SQLiteExporter) ContentType() string { return sqliteContentType }

func (e *SQLiteExporter) Extension() string { return domain.FormatSQLite }

func (e *SQLiteExporter) Export(grid *domain.Grid, sheetLabel string) ([]byte, error) {
	if grid == nil || grid.RowCount() == 0 {
		return nil, fmt.Errorf("empty grid")
	}

	dir, err := os.MkdirTemp("", "fakesheet-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "export.sqlite")

	if err := e.write(path, grid, SheetName(sheetLabel)); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func (e *SQLiteExporter) write(path string, grid *domain.Grid, table string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}
	defer db.Close()

	columns := uniqueColumnNames(headerStrings(grid))
	var firstRow []interface{}
	if rows := grid.DataRows(); len(rows) > 0 {
		firstRow = rows[0]
	}

	defs := make([]string, len(columns))
	for i, name := range columns {
		var sample interface{}
		if i < len(firstRow) {
			sample = firstRow[i]
		}
		defs[i] = fmt.Sprintf("%s %s", quoteIdent(name), sqliteType(sample))
	}
	if _, err := db.Exec(fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(table), strings.Join(defs, ", "))); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	rows := grid.DataRows()
	batch := e.BatchSize
	if batch <= 0 {
		batch = len(rows)
	}
	for start := 0; start < len(rows); start += batch {
		end := min(start+batch, len(rows))
		if err := insertBatch(db, table, columns, rows[start:end]); err != nil {
			return fmt.Errorf("insert rows %d-%d: %w", start+1, end, err)
		}
	}
	return db.Close()
}

func insertBatch(db *sql.DB, table string, columns []string, rows [][]interface{}) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	quoted := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = quoteIdent(c)
		placeholders[i] = "?"
	}
	stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(table), strings.Join(quoted, ", "), strings.Join(placeholders, ", ")))
	if err != nil {
		return err
	}
	defer stmt.Close()

	args := make([]interface{}, len(columns))
	for _, row := range rows {
		for i := range args {
			args[i] = sqliteValue(row[i])
		}
		if _, err := stmt.Exec(args...); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func sqliteType(v interface{}) string {
	switch v.(type) {
	case int, int64, bool:
		return "INTEGER"
	case float64:
		return "REAL"
	default:
		return "TEXT"
	}
}

func sqliteValue(v interface{}) interface{} {
	if t, ok := v.(time.Time); ok {
		return t.Format(time.RFC3339)
	}
	return v
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// uniqueColumnNames fills blank headers and suffixes repeats, since SQLite
// rejects duplicate column names where a spreadsheet does not. Comparison is
// case-insensitive and a generated suffix never reuses a name already taken.
func uniqueColumnNames(headers []string) []string {
	out := make([]string, len(headers))
	used := make(map[string]bool, len(headers))
	for i, h := range headers {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("coluna_%d", i+1)
		}
		candidate := name
		for n := 2; used[strings.ToLower(candidate)]; n++ {
			candidate = fmt.Sprintf("%s_%d", name, n)
		}
		used[strings.ToLower(candidate)] = true
		out[i] = candidate
	}
	return out
}
