// Package dataset loads the static record tables the skill searches.
//
// Records come from the datasets embedded in the binary, from a JSON or YAML
// file shaped as an array of string arrays, or from a DynamoDB table.
package dataset

import (
	"bytes"
	"embed"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/letmevibethatforyou/voicesearch"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a dataset file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

//go:embed data
var embedded embed.FS

// embeddedFiles maps a domain name to its file in the embedded data directory.
var embeddedFiles = map[string]string{
	"restaurants": "data/restaurants.json",
	"nightlife":   "data/nightlife.yaml",
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.Wrapf(voicesearch.ErrDatasetUnavailable, "unknown dataset format for %s", path)
	}
}

// Decode reads an array of records in the given format.
func Decode(r io.Reader, format Format) ([]voicesearch.Record, error) {
	var rows [][]string

	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&rows); err != nil {
			return nil, errors.Wrapf(voicesearch.ErrDatasetUnavailable, "failed to decode JSON dataset: %v", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&rows); err != nil {
			return nil, errors.Wrapf(voicesearch.ErrDatasetUnavailable, "failed to decode YAML dataset: %v", err)
		}
	default:
		return nil, errors.Wrapf(voicesearch.ErrDatasetUnavailable, "unsupported dataset format %q", format)
	}

	records := make([]voicesearch.Record, len(rows))
	for i, row := range rows {
		records[i] = voicesearch.Record(row)
	}
	return records, nil
}

// LoadFile reads a dataset file, choosing the decoder by extension.
func LoadFile(path string) ([]voicesearch.Record, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(voicesearch.ErrDatasetUnavailable, "failed to read %s: %v", path, err)
	}

	return Decode(bytes.NewReader(data), format)
}

// Embedded returns the dataset compiled into the binary for domain.
func Embedded(domain string) ([]voicesearch.Record, error) {
	path, ok := embeddedFiles[domain]
	if !ok {
		return nil, errors.Wrapf(voicesearch.ErrDatasetUnavailable, "no embedded dataset for %q", domain)
	}

	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(voicesearch.ErrDatasetUnavailable, "failed to read embedded %s: %v", path, err)
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	return Decode(bytes.NewReader(data), format)
}

// Validate checks that every record has exactly width fields.
func Validate(records []voicesearch.Record, width int) error {
	for i, r := range records {
		if len(r) != width {
			return errors.Wrapf(voicesearch.ErrDatasetUnavailable, "record %d has %d fields, expected %d", i, len(r), width)
		}
	}
	return nil
}
