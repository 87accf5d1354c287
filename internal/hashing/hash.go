package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/mmrzaf/fakesheet/internal/domain"
)

// HashRequest fingerprints what shapes the output document. Column ids and
// the config name are left out so renamed copies of a layout hash the same.
func HashRequest(req *domain.GenerationRequest) (string, error) {
	data, err := json.Marshal(canonicalizeRequest(req))
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func canonicalizeRequest(req *domain.GenerationRequest) map[string]interface{} {
	columns := make([]map[string]interface{}, len(req.Columns))
	for i, col := range req.Columns {
		c := map[string]interface{}{
			"header": col.HeaderName,
			"rule":   col.RuleKey,
		}
		if col.CustomValue != nil {
			c["custom_value"] = *col.CustomValue
		}
		if len(col.RandomOptions) > 0 {
			c["random_options"] = col.RandomOptions
		}
		columns[i] = c
	}

	format := strings.ToLower(strings.TrimSpace(req.Format))
	if format == "" {
		format = domain.FormatXLSX
	}
	result := map[string]interface{}{
		"columns": columns,
		"count":   req.Count,
		"format":  format,
	}
	if req.Seed != nil {
		result["seed"] = *req.Seed
	}
	return result
}
