// Package parser turns unstructured financial text (receipt OCR output,
// mobile-banking SMS alerts, bank statement exports) into candidate
// transactions. Extraction is best-effort: individual fields degrade to
// their zero values instead of failing the whole input.
package parser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ulugbek-dev/tanga/pkg/models"
)

// Kind identifies what sort of raw input a file holds.
type Kind string

const (
	KindReceipt      Kind = "receipt"
	KindSMS          Kind = "sms"
	KindCSVStatement Kind = "csv"
	KindXLSStatement Kind = "xls"
)

type Parser struct {
	logger *log.Logger
}

func New(logger *log.Logger) *Parser {
	return &Parser{logger: logger}
}

// ProcessBytes extracts transactions from a raw file, routing by filename.
func (p *Parser) ProcessBytes(data []byte, filename string) ([]*models.Transaction, error) {
	kind := DetectKind(filename)
	p.logger.Debug("detected input kind", "kind", kind, "filename", filename)
	return p.Process(data, kind)
}

// Process extracts transactions from a raw file of a known kind.
func (p *Parser) Process(data []byte, kind Kind) ([]*models.Transaction, error) {
	switch kind {
	case KindCSVStatement:
		return p.ParseCSVStatement(data)
	case KindXLSStatement:
		return p.ParseXLSStatement(data)
	case KindSMS:
		return p.ParseSMSBulk(string(data)), nil
	case KindReceipt:
		return []*models.Transaction{p.ParseReceipt(string(data))}, nil
	default:
		return nil, fmt.Errorf("unknown input kind %q", kind)
	}
}

// DetectKind guesses the input kind from the file name. Statements are
// routed by extension; plain text files carrying "sms" in the name are
// treated as SMS dumps, any other text file as receipt OCR output.
func DetectKind(filename string) Kind {
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".csv"):
		return KindCSVStatement
	case strings.HasSuffix(name, ".xls"):
		return KindXLSStatement
	case strings.Contains(name, "sms"):
		return KindSMS
	case strings.HasSuffix(name, ".txt"):
		return KindReceipt
	}
	return ""
}
