package parser

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ulugbek-dev/tanga/pkg/category"
	"github.com/ulugbek-dev/tanga/pkg/models"
)

// The two issuers format their alerts differently enough that each gets its
// own extractor: Uzcard infers the direction from the sign in front of the
// matched amount, Humo announces it with an action verb anywhere in the
// text, before any amount is read.
var (
	uzcardCardRe   = regexp.MustCompile(`[Kk]arta\s*\*(\d{4})`)
	uzcardAmountRe = regexp.MustCompile(`(?i)[-+]?([\d\s,]+\.\d{2})\s*(?:UZS|сум)`)
	uzcardNoiseRe  = regexp.MustCompile(`(?i)UZS|сум|Karta|Balans|\d{2}[./]\d{2}[./]\d{2,4}`)

	humoCardRe         = regexp.MustCompile(`(?i)HUMO\s*\*(\d{4})`)
	humoIncomeRe       = regexp.MustCompile(`(?i)popolnenie|zachislenie|kirim`)
	humoActionAmountRe = regexp.MustCompile(`(?i)(?:Spisanie|Popolnenie|Zachislenie|Oplata|Chiqim|Kirim)\s+([\d\s,]+(?:\.\d{2})?)\s*(?:UZS|сум)`)
	humoBareAmountRe   = regexp.MustCompile(`(?i)([\d\s,]+(?:\.\d{2})?)\s*(?:UZS|сум)`)
	humoNoiseRe        = regexp.MustCompile(`(?i)UZS|сум|HUMO|Ost|Spisanie|Popolnenie|Zachislenie|Oplata|Chiqim|Kirim|\d{2}[./]\d{2}[./]\d{2,4}`)

	smsDateRe        = regexp.MustCompile(`\d{2}[./]\d{2}[./]\d{4}`)
	segmentSplitRe   = regexp.MustCompile(`[.;]\s*`)
	numericSegmentRe = regexp.MustCompile(`^[\d\s,.:+\-]+$`)
)

// ParseSMSUzcard extracts one candidate transaction from an Uzcard-style
// alert, e.g.
//
//	Karta *1234: -150,000.00 UZS. Korzinka. 12.02.2026 14:30. Balans: 3,500,000.00 UZS
//
// A message with no recognizable amount still returns a structurally valid
// record with a zero amount; the caller decides whether to drop it.
func (p *Parser) ParseSMSUzcard(text string) *models.Transaction {
	tx := &models.Transaction{
		Category: category.Other,
		Currency: models.UZS,
		Type:     models.Expense,
		Raw:      text,
	}

	if m := uzcardCardRe.FindStringSubmatch(text); m != nil {
		tx.Card = "*" + m[1]
	}

	if loc := uzcardAmountRe.FindStringSubmatchIndex(text); loc != nil {
		if v, ok := cleanGroupedAmount(text[loc[2]:loc[3]]); ok {
			tx.Amount = v
			// A plus sign on the amount or a deposit keyword anywhere
			// marks a top-up.
			signed := text[loc[0]:loc[1]]
			lower := strings.ToLower(text)
			if strings.HasPrefix(signed, "+") ||
				strings.Contains(lower, "popolnenie") ||
				strings.Contains(lower, "zachislenie") {
				tx.Type = models.Income
			}
		}
	}

	p.fillSMSCommon(tx, text, uzcardNoiseRe)
	return tx
}

// ParseSMSHumo extracts one candidate transaction from a Humo-style alert,
// e.g.
//
//	HUMO *5678: Spisanie 250,000 UZS. Macro. 12/02/2026. Ost: 1,200,000 UZS
func (p *Parser) ParseSMSHumo(text string) *models.Transaction {
	tx := &models.Transaction{
		Category: category.Other,
		Currency: models.UZS,
		Type:     models.Expense,
		Raw:      text,
	}

	if m := humoCardRe.FindStringSubmatch(text); m != nil {
		tx.Card = "HUMO *" + m[1]
	}

	// Direction is decided from deposit keywords before any amount is read.
	if humoIncomeRe.MatchString(text) {
		tx.Type = models.Income
	}

	// Prefer an action-verb-prefixed amount, fall back to any bare
	// currency-suffixed number.
	m := humoActionAmountRe.FindStringSubmatch(text)
	if m == nil {
		m = humoBareAmountRe.FindStringSubmatch(text)
	}
	if m != nil {
		if v, ok := cleanGroupedAmount(m[1]); ok {
			tx.Amount = v
		}
	}

	p.fillSMSCommon(tx, text, humoNoiseRe)
	return tx
}

// fillSMSCommon applies the strategy both variants share: merchant from the
// first segment that is not issuer noise, date from a dd.mm.yyyy pattern
// anywhere, category from the merchant.
func (p *Parser) fillSMSCommon(tx *models.Transaction, text string, noise *regexp.Regexp) {
	if m := firstMerchantSegment(text, noise); m != "" {
		tx.Merchant = m
		tx.Description = m
		tx.Category = category.Guess(m)
	}

	if m := smsDateRe.FindString(text); m != "" {
		if d, err := time.Parse("02.01.2006", strings.ReplaceAll(m, "/", ".")); err == nil {
			tx.Date = d
		}
	}
}

// firstMerchantSegment splits the message on '.' or ';' and returns the
// first segment that is longer than one character, is not purely
// numeric/punctuation and matches none of the variant's noise vocabulary.
func firstMerchantSegment(text string, noise *regexp.Regexp) string {
	for _, part := range segmentSplitRe.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part == "" || utf8.RuneCountInString(part) < 2 {
			continue
		}
		if noise.MatchString(part) || numericSegmentRe.MatchString(part) {
			continue
		}
		return part
	}
	return ""
}
