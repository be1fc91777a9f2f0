package rewrite

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/teranos/askit/errors"
)

// Param is one (parameter type, parameter name) pair; it marshals as a
// two-element JSON array.
type Param [2]string

// MetadataRecord describes one rewritten Ask/LLM call-form. One line of the
// unit's sidecar file. Define call-forms never produce records.
type MetadataRecord struct {
	Signature string          `json:"signature"`
	Desc      string          `json:"desc"`
	Params    []Param         `json:"params"`
	Name      string          `json:"name"`
	Examples  json.RawMessage `json:"examples"`
}

// Sink receives the metadata records accumulated while transforming a unit.
type Sink interface {
	// Flush writes records for the unit at unitPath. Must be a no-op when
	// records is empty.
	Flush(unitPath string, records []MetadataRecord) error
}

// FileSink writes line-delimited JSON sidecars at
// <dir>/<subdir>/<basename>.jsonl, fully replacing any prior content. Each
// compilation pass's output supersedes the last.
type FileSink struct {
	Subdir string // defaults to "askit"
}

func (s FileSink) Flush(unitPath string, records []MetadataRecord) error {
	if len(records) == 0 {
		return nil
	}

	subdir := s.Subdir
	if subdir == "" {
		subdir = "askit"
	}
	dir := filepath.Join(filepath.Dir(unitPath), subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating metadata directory %s", dir)
	}

	var buf bytes.Buffer
	for _, rec := range records {
		line, err := json.Marshal(rec)
		if err != nil {
			return errors.Wrapf(err, "encoding metadata record %s", rec.Name)
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}

	base := strings.TrimSuffix(filepath.Base(unitPath), filepath.Ext(unitPath))
	path := filepath.Join(dir, base+".jsonl")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "writing metadata sidecar %s", path)
	}
	return nil
}
