package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ulugbek-dev/tanga/pkg/config"
	"github.com/ulugbek-dev/tanga/pkg/csvout"
	"github.com/ulugbek-dev/tanga/pkg/models"
	"github.com/ulugbek-dev/tanga/pkg/parser"
)

// Processor extracts transactions from input files and writes them out as
// canonical CSV.
type Processor struct {
	config *config.Config
	logger *log.Logger
	parser *parser.Parser
}

func NewProcessor(cfg *config.Config, logger *log.Logger) *Processor {
	return &Processor{
		config: cfg,
		logger: logger,
		parser: parser.New(logger),
	}
}

// ProcessDirectory processes every recognizable file in dir. A failing file
// is logged and skipped, it never aborts the batch.
func (p *Processor) ProcessDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("error reading directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if parser.DetectKind(entry.Name()) == "" {
			continue
		}
		if err := p.ProcessFile(filepath.Join(dir, entry.Name())); err != nil {
			p.logger.Error("failed to process file", "file", entry.Name(), "error", err)
		}
	}

	return nil
}

// ProcessFile extracts transactions from one input file, detecting its kind
// from the filename.
func (p *Processor) ProcessFile(path string) error {
	return p.processWithKind(path, parser.DetectKind(filepath.Base(path)))
}

// ProcessManifest processes every input listed in a YAML manifest,
// honouring per-input kind overrides.
func (p *Processor) ProcessManifest(m *models.Manifest) error {
	for _, in := range m.Inputs {
		path, err := in.File()
		if err != nil {
			return err
		}
		kind := parser.Kind(in.Kind)
		if kind == "" {
			kind = parser.DetectKind(filepath.Base(path))
		}
		if err := p.processWithKind(path, kind); err != nil {
			p.logger.Error("failed to process manifest input", "file", path, "error", err)
		}
	}
	return nil
}

func (p *Processor) processWithKind(path string, kind parser.Kind) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	txs, err := p.parser.Process(data, kind)
	if err != nil {
		return fmt.Errorf("error parsing file: %w", err)
	}

	usable := 0
	for _, tx := range txs {
		if tx.HasAmount() {
			usable++
		}
	}

	outPath := p.outputPath(path)
	if err := os.WriteFile(outPath, csvout.Create(txs, nil), 0644); err != nil {
		return fmt.Errorf("error writing output file: %w", err)
	}

	p.logger.Info("processed file", "input", path, "output", outPath, "kind", kind, "transactions", usable)
	return nil
}

func (p *Processor) outputPath(inputPath string) string {
	base := filepath.Base(inputPath)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + "-tanga.csv"
	if p.config.Output != "" {
		return filepath.Join(p.config.Output, name)
	}
	return filepath.Join(filepath.Dir(inputPath), name)
}
