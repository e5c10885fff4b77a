package csvout

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/ulugbek-dev/tanga/pkg/models"
)

// FilterFunc selects which transactions make it into the output.
type FilterFunc func(*models.Transaction) bool

const dateFormat = "2006-01-02"

// Create renders transactions as canonical CSV bytes. Candidates without a
// usable amount are always excluded; filter narrows the set further.
func Create(txs []*models.Transaction, filter FilterFunc) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write([]string{"Date", "Type", "Amount", "Currency", "Merchant", "Category"})
	for _, tx := range txs {
		if !tx.HasAmount() {
			continue
		}
		if filter != nil && !filter(tx) {
			continue
		}

		date := ""
		if tx.HasDate() {
			date = tx.Date.Format(dateFormat)
		}
		_ = w.Write([]string{
			date,
			string(tx.Type),
			fmt.Sprintf("%.2f", tx.Amount),
			string(tx.Currency),
			tx.Merchant,
			tx.Category,
		})
	}

	w.Flush()
	return buf.Bytes()
}
