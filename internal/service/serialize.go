package service

import (
	"fmt"

	"athletic-store/internal/model"
)

// SerializeDocument returns a copy of doc with "_id" replaced by a string "id".
func SerializeDocument(doc model.Document) model.Document {
	if doc == nil {
		return nil
	}

	out := doc.Clone()
	if id, ok := out["_id"]; ok {
		delete(out, "_id")
		out["id"] = stringifyID(id)
	}
	return out
}

// SerializeDocuments serializes every document, never returning nil.
func SerializeDocuments(docs []model.Document) []model.Document {
	out := make([]model.Document, 0, len(docs))
	for _, doc := range docs {
		out = append(out, SerializeDocument(doc))
	}
	return out
}

func stringifyID(id any) string {
	switch v := id.(type) {
	case string:
		return v
	case interface{ Hex() string }:
		return v.Hex()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
