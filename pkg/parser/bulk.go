package parser

import (
	"regexp"
	"strings"

	"github.com/ulugbek-dev/tanga/pkg/models"
)

var (
	blankLineRe    = regexp.MustCompile(`\n\s*\n`)
	messageStartRe = regexp.MustCompile(`(?i)(?:Karta|HUMO)\s*\*\d{4}`)
)

// ParseSMSBulk segments a pasted block of SMS messages and runs each chunk
// through the right issuer variant. Blank lines separate messages; when the
// whole block is one chunk it is re-split immediately before each card
// marker instead. Chunks that yield no amount are dropped; input order is
// preserved.
func (p *Parser) ParseSMSBulk(block string) []*models.Transaction {
	block = strings.TrimSpace(block)
	if block == "" {
		return nil
	}

	chunks := blankLineRe.Split(block, -1)
	if len(chunks) == 1 {
		chunks = splitBeforeMarkers(block)
	}

	var results []*models.Transaction
	for _, chunk := range chunks {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}

		lower := strings.ToLower(chunk)
		var tx *models.Transaction
		switch {
		case strings.Contains(lower, "humo"):
			tx = p.ParseSMSHumo(chunk)
		case strings.Contains(lower, "karta"):
			tx = p.ParseSMSUzcard(chunk)
		default:
			// Unknown issuer: the Uzcard variant is the best-effort guess.
			tx = p.ParseSMSUzcard(chunk)
		}

		if !tx.HasAmount() {
			p.logger.Debug("sms chunk yielded no amount, dropping", "chunk", chunk)
			continue
		}
		results = append(results, tx)
	}
	return results
}

// splitBeforeMarkers cuts the block immediately before each issuer card
// marker. Go regexp has no lookahead, so the cut points come from match
// offsets rather than a zero-width split pattern.
func splitBeforeMarkers(block string) []string {
	locs := messageStartRe.FindAllStringIndex(block, -1)
	if len(locs) == 0 {
		return []string{block}
	}

	var chunks []string
	prev := 0
	for _, loc := range locs {
		if loc[0] > prev {
			chunks = append(chunks, block[prev:loc[0]])
		}
		prev = loc[0]
	}
	chunks = append(chunks, block[prev:])
	return chunks
}
