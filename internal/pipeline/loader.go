package pipeline

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/credlogic/metro2/internal/model"
)

// LoadAccounts parses a batch of account records from YAML or JSON bytes.
// Accepted shapes: a top-level array of records, or an object with an
// "accounts" array. Each record is canonicalized through the account adapter.
func LoadAccounts(data []byte, format string) ([]*model.Account, error) {
	var doc interface{}

	switch strings.ToLower(format) {
	case "json", ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
	}

	records, err := accountRecords(doc)
	if err != nil {
		return nil, err
	}

	accounts := make([]*model.Account, 0, len(records))
	for _, record := range records {
		accounts = append(accounts, model.AccountFromMap(record))
	}
	return accounts, nil
}

// FormatForPath returns the loader format hint for a file path.
func FormatForPath(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

func accountRecords(doc interface{}) ([]map[string]interface{}, error) {
	switch v := doc.(type) {
	case []interface{}:
		return recordList(v)
	case map[string]interface{}:
		if list, ok := v["accounts"].([]interface{}); ok {
			return recordList(list)
		}
		return nil, fmt.Errorf("account file object must contain an \"accounts\" array")
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("account file must be an array of records, got %T", doc)
	}
}

func recordList(list []interface{}) ([]map[string]interface{}, error) {
	records := make([]map[string]interface{}, 0, len(list))
	for i, entry := range list {
		record, ok := entry.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("account entry %d is not a record, got %T", i, entry)
		}
		records = append(records, record)
	}
	return records, nil
}
