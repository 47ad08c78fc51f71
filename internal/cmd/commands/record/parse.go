package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/quickbase/pkg/quickbase"
)

// splitList splits a comma separated flag value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseFieldID(s string) (quickbase.FieldID, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid field id %q", s)
	}
	return quickbase.FieldID(id), nil
}

// parseFieldIDs parses "3,6,7". An empty string yields nil.
func parseFieldIDs(s string) ([]quickbase.FieldID, error) {
	var ids []quickbase.FieldID
	for _, part := range splitList(s) {
		id, err := parseFieldID(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// splitPair parses "6:ASC".
func splitPair(s string) (quickbase.FieldID, string, error) {
	field, value, ok := strings.Cut(s, ":")
	if !ok {
		return 0, "", fmt.Errorf("expected <field>:<value>, got %q", s)
	}
	id, err := parseFieldID(field)
	if err != nil {
		return 0, "", err
	}
	return id, strings.TrimSpace(value), nil
}

// parseSort parses "6:ASC,7:desc". An empty string yields nil, which the
// client sends as an unset clause.
func parseSort(s string) ([]quickbase.SortField, error) {
	var fields []quickbase.SortField
	for _, part := range splitList(s) {
		id, order, err := splitPair(part)
		if err != nil {
			return nil, fmt.Errorf("invalid sort %q: %w", part, err)
		}
		fields = append(fields, quickbase.SortField{
			FieldID: id,
			Order:   quickbase.SortOrder(strings.ToUpper(order)),
		})
	}
	return fields, nil
}

// parseGroup parses "6:equal-values,7:ASC".
func parseGroup(s string) ([]quickbase.GroupField, error) {
	var fields []quickbase.GroupField
	for _, part := range splitList(s) {
		id, grouping, err := splitPair(part)
		if err != nil {
			return nil, fmt.Errorf("invalid group %q: %w", part, err)
		}
		switch upper := strings.ToUpper(grouping); upper {
		case "ASC", "DESC":
			grouping = upper
		default:
			grouping = strings.ToLower(grouping)
		}
		fields = append(fields, quickbase.GroupField{
			FieldID:  id,
			Grouping: quickbase.Grouping(grouping),
		})
	}
	return fields, nil
}

// loadRecords reads a JSON array of records from path. Keys are field IDs;
// values are either {"value": ...} wrappers or bare values. String values of
// dateFields are normalized with quickbase.DateValue. Every problem in the
// file is reported, not just the first.
func loadRecords(fs afero.Fs, path string, dateFields []quickbase.FieldID) ([]quickbase.Record, error) {
	src, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(src, &raw); err != nil {
		return nil, fmt.Errorf("data file must be a JSON array of objects: %w", err)
	}

	isDate := make(map[quickbase.FieldID]bool, len(dateFields))
	for _, id := range dateFields {
		isDate[id] = true
	}

	var result *multierror.Error
	records := make([]quickbase.Record, 0, len(raw))
	for i, obj := range raw {
		rec := make(quickbase.Record, len(obj))
		for key, msg := range obj {
			id, err := parseFieldID(key)
			if err != nil {
				result = multierror.Append(result, fmt.Errorf("record %d: %w", i, err))
				continue
			}
			v, err := decodeValue(msg)
			if err != nil {
				result = multierror.Append(result, fmt.Errorf("record %d field %d: %w", i, id, err))
				continue
			}
			if s, ok := v.Value.(string); ok && isDate[id] && s != "" {
				if v, err = quickbase.DateValue(s); err != nil {
					result = multierror.Append(result, fmt.Errorf("record %d field %d: %w", i, id, err))
					continue
				}
			}
			rec[id] = v
		}
		records = append(records, rec)
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return records, nil
}

func decodeValue(msg json.RawMessage) (quickbase.FieldValue, error) {
	dec := json.NewDecoder(bytes.NewReader(msg))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return quickbase.FieldValue{}, err
	}
	if m, ok := v.(map[string]interface{}); ok {
		inner, ok := m["value"]
		if !ok || len(m) != 1 {
			return quickbase.FieldValue{}, fmt.Errorf(`object values must look like {"value": ...}`)
		}
		return quickbase.Value(inner), nil
	}
	return quickbase.Value(v), nil
}
