package domain

import (
	"bytes"
	"encoding/json"
)

// Rule keys that are handled before namespaced dispatch.
const (
	RuleRowIndex      = "##ROW_INDEX##"
	RuleEmpty         = "##EMPTY##"
	RuleCustomValue   = "##CUSTOM_VALUE##"
	RuleRandomOptions = "##RANDOM_OPTIONS##"
)

// Column is one spreadsheet column: a header and the rule that fills it.
type Column struct {
	ID            string   `json:"id,omitempty" yaml:"id,omitempty"`
	HeaderName    string   `json:"headerName" yaml:"header_name"`
	RuleKey       string   `json:"generationRuleKey" yaml:"rule_key"`
	CustomValue   *string  `json:"customValue,omitempty" yaml:"custom_value,omitempty"`
	RandomOptions []string `json:"randomOptions,omitempty" yaml:"random_options,omitempty"`
}

// UnmarshalJSON accepts the form payload, which names the rule key fakerMappingKey.
func (c *Column) UnmarshalJSON(data []byte) error {
	type plain Column
	var raw struct {
		plain
		FakerMappingKey string `json:"fakerMappingKey,omitempty"`
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	*c = Column(raw.plain)
	if c.RuleKey == "" {
		c.RuleKey = raw.FakerMappingKey
	}
	return nil
}

type GenerationRequest struct {
	Columns    []Column `json:"columns"`
	Count      int      `json:"count"`
	ConfigName string   `json:"configName"`
	Format     string   `json:"format,omitempty"`
	Seed       *int64   `json:"seed,omitempty"`
}

const (
	FormatXLSX   = "xlsx"
	FormatSQLite = "sqlite"
)

// Grid holds the header row followed by the generated data rows.
type Grid struct {
	Rows [][]interface{}
}

func (g *Grid) Headers() []interface{} {
	if len(g.Rows) == 0 {
		return nil
	}
	return g.Rows[0]
}

func (g *Grid) DataRows() [][]interface{} {
	if len(g.Rows) < 2 {
		return nil
	}
	return g.Rows[1:]
}

func (g *Grid) RowCount() int {
	return len(g.Rows)
}

type RuleOption struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Supported bool   `json:"supported"`
}

// SavedConfig is a named column layout stored on disk.
type SavedConfig struct {
	Name    string   `json:"name" yaml:"name"`
	Columns []Column `json:"columns" yaml:"columns"`
}
