package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ulugbek-dev/tanga/pkg/category"
	"github.com/ulugbek-dev/tanga/pkg/models"
)

var (
	totalRe       = regexp.MustCompile(`(?i)(?:JAMI|ИТОГО|ИТОГ|TOTAL|ЖАМИ|HAMMASI|ВСЕГО)\s*[:=]?\s*([\d\s.,]+)`)
	priceRe       = regexp.MustCompile(`[\d\s]{1,15}[.,]\d{2}`)
	numericLineRe = regexp.MustCompile(`^[\d\s.,:\-/]+$`)
)

// Boilerplate words a merchant line never contains (check/tax-id markers in
// the local languages).
var receiptSkipWords = []string{"chek", "check", "kvitantsiya", "receipt", "inn", "qqs", "stir"}

// ParseReceipt extracts one candidate transaction from OCR receipt text.
// Every field degrades independently: no total keyword falls back to the
// largest price-shaped number in the text, unmatched dates and merchants
// stay empty. The function never fails.
func (p *Parser) ParseReceipt(text string) *models.Transaction {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	tx := &models.Transaction{
		Category: category.Other,
		Currency: models.UZS,
		Type:     models.Expense,
		Raw:      text,
	}

	// Amount: total keyword scanned bottom-up, the grand total sits near
	// the end of a receipt.
	for i := len(lines) - 1; i >= 0; i-- {
		m := totalRe.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}
		if v, ok := normalizeAmount(m[1]); ok {
			tx.Amount = v
			break
		}
	}

	// Fallback: line-item prices are smaller than or equal to the grand
	// total, so the largest decimal-shaped number stands in for it.
	if !tx.HasAmount() {
		for _, line := range lines {
			for _, m := range priceRe.FindAllString(line, -1) {
				if v, ok := normalizeAmount(m); ok && v > tx.Amount {
					tx.Amount = v
				}
			}
		}
	}

	// Date: top-down, first line with a recognizable pattern wins,
	// independent of the amount scan.
	for _, line := range lines {
		if d := findDate(line, receiptDatePatterns); !d.IsZero() {
			tx.Date = d
			break
		}
	}

	// Merchant: first qualifying line among the first five. Qualifying
	// means longer than two characters, not purely numeric/punctuation and
	// free of boilerplate words.
	head := lines
	if len(head) > 5 {
		head = head[:5]
	}
	for _, line := range head {
		cleaned := strings.TrimSpace(line)
		if utf8.RuneCountInString(cleaned) <= 2 || numericLineRe.MatchString(cleaned) {
			continue
		}
		if containsAny(strings.ToLower(cleaned), receiptSkipWords) {
			continue
		}
		tx.Merchant = cleaned
		break
	}

	if tx.Merchant != "" {
		tx.Category = category.Guess(tx.Merchant)
	}

	if strings.Contains(strings.ToUpper(text), "USD") || strings.Contains(text, "$") {
		tx.Currency = models.USD
	}

	return tx
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
