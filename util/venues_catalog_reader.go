package util

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"hours-server/models"
)

// ReadVenueCatalog loads a VenueCatalog from disk. Files ending in .json
// are read as JSON, anything else as YAML.
func ReadVenueCatalog(filePath string) (*models.VenueCatalog, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var catalog models.VenueCatalog
	if isJSON(filePath) {
		err = json.Unmarshal(data, &catalog)
	} else {
		err = yaml.Unmarshal(data, &catalog)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal venue catalog %q: %w", filePath, err)
	}
	return &catalog, nil
}

// WriteVenueCatalog writes catalog to filePath, choosing the format the
// same way ReadVenueCatalog does.
func WriteVenueCatalog(filePath string, catalog *models.VenueCatalog) error {
	var (
		data []byte
		err  error
	)
	if isJSON(filePath) {
		data, err = json.MarshalIndent(catalog, "", "  ")
	} else {
		data, err = yaml.Marshal(catalog)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal venue catalog: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %q: %w", filePath, err)
	}
	return nil
}

func isJSON(filePath string) bool {
	return strings.EqualFold(filepath.Ext(filePath), ".json")
}
