// Package services implements the blocked-services dataset: merging
// service records from multiple sources, deriving the category group
// list, and reading/writing the combined services file.
package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Service is one blocked network service record. Identity is ID; Group
// names the category the service belongs to and must be non-empty by
// the time the combined file is assembled.
type Service struct {
	ID      string   `json:"id"`
	Group   string   `json:"group"`
	Name    string   `json:"name,omitempty"`
	Rules   []string `json:"rules,omitempty"`
	IconSVG string   `json:"icon_svg,omitempty"`
}

// Group is a derived service category, unique by ID.
type Group struct {
	ID string `json:"id"`
}

// File is the combined services file shape.
type File struct {
	BlockedServices []Service `json:"blocked_services"`
	Groups          []Group   `json:"groups"`
}

// ReadList reads a service list from path. The file may be either a
// bare JSON array of services or a combined file carrying them under
// blocked_services.
func ReadList(path string) ([]Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var list []Service
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f.BlockedServices, nil
}

// ReadFile reads a combined services file.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &f, nil
}

// WriteFile writes a combined services file with 4-space indentation.
func (f *File) WriteFile(path string) error {
	data, err := json.MarshalIndent(f, "", "    ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
