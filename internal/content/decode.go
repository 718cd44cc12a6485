package content

import (
	"encoding/json"
	"fmt"
)

// DecodeDocuments unmarshals each document's data into T. Documents that fail to decode are
// reported through onError (when non-nil) and skipped. The document ID is copied into the
// decoded value's "id" field when the data does not carry one.
func DecodeDocuments[T any](docs []Document, onError func(Document, error)) []T {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		v, err := DecodeDocument[T](doc)
		if err != nil {
			if onError != nil {
				onError(doc, err)
			}
			continue
		}
		out = append(out, v)
	}
	return out
}

// DecodeDocument unmarshals a single document into T
func DecodeDocument[T any](doc Document) (T, error) {
	var v T
	if len(doc.Data) == 0 {
		return v, fmt.Errorf("document %s has no data", doc.ID)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(doc.Data, &fields); err != nil {
		return v, fmt.Errorf("failed to decode document %s: %w", doc.ID, err)
	}
	if _, ok := fields["id"]; !ok && doc.ID != "" {
		id, _ := json.Marshal(doc.ID)
		fields["id"] = id
	}

	data, err := json.Marshal(fields)
	if err != nil {
		return v, fmt.Errorf("failed to encode document %s: %w", doc.ID, err)
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("failed to decode document %s: %w", doc.ID, err)
	}
	return v, nil
}
