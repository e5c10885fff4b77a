package csvout

import (
	"strings"
	"testing"
	"time"

	"github.com/ulugbek-dev/tanga/pkg/models"
)

func TestCreate(t *testing.T) {
	txs := []*models.Transaction{
		{
			Amount:   150000,
			Currency: models.UZS,
			Type:     models.Expense,
			Merchant: "Korzinka",
			Category: "Food",
			Date:     time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			// No usable amount: excluded from the output.
			Merchant: "noise",
			Category: "Other",
		},
		{
			Amount:   99.5,
			Currency: models.USD,
			Type:     models.Income,
			Merchant: "Refund",
			Category: "Other",
		},
	}

	out := string(Create(txs, nil))
	lines := strings.Split(strings.TrimSpace(out), "\n")

	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines:\n%s", len(lines), out)
	}
	if lines[0] != "Date,Type,Amount,Currency,Merchant,Category" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[1] != "2026-02-12,expense,150000.00,UZS,Korzinka,Food" {
		t.Errorf("unexpected row: %q", lines[1])
	}
	// A missing date renders as an empty first field.
	if lines[2] != ",income,99.50,USD,Refund,Other" {
		t.Errorf("unexpected row: %q", lines[2])
	}
}

func TestCreateFilter(t *testing.T) {
	txs := []*models.Transaction{
		{Amount: 100, Currency: models.UZS, Type: models.Expense, Category: "Food"},
		{Amount: 200, Currency: models.UZS, Type: models.Income, Category: "Other"},
	}

	onlyExpenses := func(tx *models.Transaction) bool { return tx.Type == models.Expense }
	out := string(Create(txs, onlyExpenses))

	if strings.Contains(out, "income") {
		t.Errorf("filter did not exclude income rows:\n%s", out)
	}
	if !strings.Contains(out, "expense") {
		t.Errorf("expected the expense row to survive:\n%s", out)
	}
}

func TestCreateEmpty(t *testing.T) {
	out := string(Create(nil, nil))
	if strings.TrimSpace(out) != "Date,Type,Amount,Currency,Merchant,Category" {
		t.Errorf("expected header only, got %q", out)
	}
}
