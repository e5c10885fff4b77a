package models

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest lists input files to extract in one batch run.
type Manifest struct {
	Inputs []Input `yaml:"inputs"`
}

// Input is a single file plus an optional kind override (receipt, sms, csv,
// xls). When Kind is empty the processor falls back to filename detection.
type Input struct {
	Kind     string `yaml:"kind"`
	FilePath string `yaml:"file"`
}

// File returns the path to the input file, expanding ~.
func (in *Input) File() (string, error) {
	if strings.HasPrefix(in.FilePath, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, in.FilePath[2:]), nil
	}
	return in.FilePath, nil
}

// ManifestFromFile reads a manifest from a YAML file.
func ManifestFromFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, err
	}

	return &manifest, nil
}
