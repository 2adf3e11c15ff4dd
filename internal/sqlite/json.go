package sqlite

import "encoding/json"

// Collection columns (emotions, tags, images, ...) are stored as JSON
// arrays in TEXT columns.

// marshalStrings encodes a string slice for storage. A nil slice is
// stored as an empty array so the column is never NULL.
func marshalStrings(v []string) (string, error) {
	if v == nil {
		v = []string{}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// unmarshalStrings decodes a stored JSON array column. An empty column
// decodes to an empty slice.
func unmarshalStrings(s string) ([]string, error) {
	if s == "" {
		return []string{}, nil
	}
	var v []string
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, err
	}
	if v == nil {
		v = []string{}
	}
	return v, nil
}
