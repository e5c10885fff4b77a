package parser

import (
	"encoding/csv"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/ulugbek-dev/tanga/pkg/category"
	"github.com/ulugbek-dev/tanga/pkg/models"
)

// headerSynonyms maps each canonical column to the header spellings banks
// in the locale use. Matching is exact on the lowercased, trimmed cell;
// unmatched headers are ignored.
var headerSynonyms = map[string][]string{
	"date":        {"date", "дата", "sana", "transaction date", "дата операции"},
	"amount":      {"amount", "сумма", "summa", "miqdor", "sum", "сумма операции"},
	"description": {"description", "описание", "tavsif", "details", "merchant", "назначение", "наименование"},
	"credit":      {"credit", "кредит", "kirim", "приход"},
	"debit":       {"debit", "дебет", "chiqim", "расход"},
	"currency":    {"currency", "валюта", "valyuta"},
}

// ParseCSVStatement parses a bank CSV export with unknown encoding,
// delimiter and column order. Individual malformed rows are skipped
// silently; only an undecodable byte stream is an error. A table without a
// header plus at least one data row yields an empty result.
func (p *Parser) ParseCSVStatement(data []byte) ([]*models.Transaction, error) {
	text, err := decodeStatement(data)
	if err != nil {
		return nil, err
	}

	// Delimiter is sniffed from the header line only.
	comma := ','
	if strings.Contains(firstLine(text), ";") {
		comma = ';'
	}

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	return p.extractStatementRows(rows), nil
}

// decodeStatement tries UTF-8 first and falls back to Windows-1251, the
// encoding common to Cyrillic bank exports. There is no third fallback.
func decodeStatement(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := charmap.Windows1251.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode statement bytes: %w", err)
	}
	return string(decoded), nil
}

func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}

// extractStatementRows maps a header row plus data rows into transactions.
// Shared by the CSV and XLS statement extractors.
func (p *Parser) extractStatementRows(rows [][]string) []*models.Transaction {
	if len(rows) < 2 {
		p.logger.Debug("statement has no data rows", "rows", len(rows))
		return nil
	}

	cols := mapHeader(rows[0])
	if _, ok := cols["amount"]; !ok {
		_, hasCredit := cols["credit"]
		_, hasDebit := cols["debit"]
		if !hasCredit || !hasDebit {
			p.logger.Debug("statement has neither an amount column nor a credit/debit pair")
			return nil
		}
	}

	var txs []*models.Transaction
	for i, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}
		tx := p.statementRow(row, cols)
		if tx == nil {
			p.logger.Debug("statement row yielded no amount, skipping", "row", i+2)
			continue
		}
		txs = append(txs, tx)
	}

	p.logger.Info("statement parsing complete", "total_transactions", len(txs), "total_rows", len(rows))
	return txs
}

// mapHeader resolves each header cell against the synonym dictionary. Later
// duplicates win, matching the behavior statements with repeated columns
// have always had.
func mapHeader(header []string) map[string]int {
	cols := make(map[string]int)
	for i, h := range header {
		cell := strings.ToLower(strings.TrimSpace(h))
		if name, ok := canonicalColumn(cell); ok {
			cols[name] = i
		}
	}
	return cols
}

func canonicalColumn(cell string) (string, bool) {
	for name, synonyms := range headerSynonyms {
		for _, s := range synonyms {
			if cell == s {
				return name, true
			}
		}
	}
	return "", false
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// statementRow turns one data row into a transaction, or nil when the row
// holds no usable amount. The sign of a signed amount column decides the
// type; with separate credit/debit columns whichever cell holds a positive
// number decides it.
func (p *Parser) statementRow(row []string, cols map[string]int) *models.Transaction {
	tx := &models.Transaction{
		Category: category.Other,
		Currency: models.UZS,
		Type:     models.Expense,
		Raw:      strings.Join(row, ";"),
	}

	if idx, ok := cols["amount"]; ok {
		if idx >= len(row) {
			return nil
		}
		v, ok := cleanGroupedAmount(strings.TrimSpace(row[idx]))
		if !ok || v == 0 {
			return nil
		}
		if v > 0 {
			tx.Type = models.Income
		}
		tx.Amount = math.Abs(v)
	} else {
		credit, ok := cellAmount(row, cols["credit"])
		if !ok {
			return nil
		}
		debit, ok := cellAmount(row, cols["debit"])
		if !ok {
			return nil
		}
		switch {
		case credit > 0:
			tx.Type = models.Income
			tx.Amount = credit
		case debit > 0:
			tx.Type = models.Expense
			tx.Amount = debit
		default:
			return nil
		}
	}

	if idx, ok := cols["date"]; ok && idx < len(row) {
		tx.Date = parseCellDate(strings.TrimSpace(row[idx]))
	}

	if idx, ok := cols["description"]; ok && idx < len(row) {
		desc := strings.TrimSpace(row[idx])
		tx.Description = desc
		tx.Merchant = desc
		tx.Category = category.Guess(desc)
	}

	if idx, ok := cols["currency"]; ok && idx < len(row) {
		switch strings.ToUpper(strings.TrimSpace(row[idx])) {
		case string(models.USD):
			tx.Currency = models.USD
		case string(models.UZS):
			tx.Currency = models.UZS
		}
	}

	return tx
}

// cellAmount parses a credit/debit cell. An out-of-range or empty cell is a
// clean zero; a non-empty cell that does not parse poisons the row.
func cellAmount(row []string, idx int) (float64, bool) {
	if idx >= len(row) {
		return 0, true
	}
	cell := strings.TrimSpace(row[idx])
	if cell == "" {
		return 0, true
	}
	return cleanGroupedAmount(cell)
}
