package model

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalidDocument is returned when a payload does not have the document shape.
var ErrInvalidDocument = errors.New("invalid document")

//go:embed schema/document.schema.json
var documentSchema []byte

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(documentSchema))
	})
	return schema, schemaErr
}

// Validate checks the JSON shape of raw against document.schema.json.
// Only types are checked; every field is optional.
func Validate(raw []byte) error {
	s, err := compiledSchema()
	if err != nil {
		return err
	}
	res, err := s.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
}

// Decode validates raw and unmarshals it over the defaults of New, so absent
// keys keep their initial values. An absent theme color follows the decoded
// template's default; for an unknown template it stays empty and the
// renderer's fallback applies.
func Decode(raw []byte) (Document, error) {
	if err := Validate(raw); err != nil {
		return Document{}, err
	}
	doc := New()
	doc.Meta.ThemeColor = ""
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if doc.Meta.ThemeColor == "" {
		doc.Meta.ThemeColor = doc.Meta.TemplateID.DefaultColor()
	}
	return doc.normalize(), nil
}
