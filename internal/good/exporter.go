package good

import (
	"encoding/json"
	"fmt"
	"os"
)

// Format identifiers for the document header. Version tracks the GOOD schema
// revision this tool emits.
const (
	FormatName    = "GOOD"
	FormatVersion = 2
	sourceName    = "goodsync"
)

// Document is the GOOD export payload. Materials is keyed by GOOD material
// key, which makes duplicate entries unrepresentable, and encoding/json
// serializes map keys in sorted order, so the same inventory always produces
// the same bytes.
type Document struct {
	Format    string           `json:"format"`
	Version   int              `json:"version"`
	Source    string           `json:"source"`
	Materials map[string]int64 `json:"materials"`
}

// NewDocument wraps a material map in the GOOD header.
func NewDocument(materials map[string]int64) *Document {
	return &Document{
		Format:    FormatName,
		Version:   FormatVersion,
		Source:    sourceName,
		Materials: materials,
	}
}

// WriteError reports a failure to serialize or persist the export document.
type WriteError struct {
	Path    string
	Message string
	Cause   error
}

func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("write error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("write error for %s: %s", e.Path, e.Message)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

// Write serializes the document as indented JSON at path, overwriting any
// existing file.
func Write(doc *Document, path string) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return &WriteError{Path: path, Message: "failed to encode document", Cause: err}
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &WriteError{Path: path, Message: "failed to write file", Cause: err}
	}
	return nil
}
