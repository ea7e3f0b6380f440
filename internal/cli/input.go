package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"resume-builder/internal/model"

	"gopkg.in/yaml.v3"
)

// readDocument loads a document from path ("-" reads stdin). Files ending in
// .yaml or .yml are converted to JSON first so both formats go through the
// same shape check.
func readDocument(in io.Reader, path string) (model.Document, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(in)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return model.Document{}, fmt.Errorf("read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if raw, err = yamlToJSON(raw); err != nil {
			return model.Document{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return model.Decode(raw)
}

func yamlToJSON(raw []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	if v == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(v)
}
