package parser

import (
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ulugbek-dev/tanga/pkg/models"
)

func TestParseSMSUzcardExpense(t *testing.T) {
	text := "Karta *1234: -150,000.00 UZS. Korzinka. 12.02.2026 14:30. Balans: 3,500,000.00 UZS"

	tx := New(log.Default()).ParseSMSUzcard(text)

	if tx.Amount != 150000.00 {
		t.Errorf("expected amount 150000.00, got %v", tx.Amount)
	}
	if tx.Type != models.Expense {
		t.Errorf("expected type expense, got %s", tx.Type)
	}
	if tx.Card != "*1234" {
		t.Errorf("expected card *1234, got %q", tx.Card)
	}
	if tx.Merchant != "Korzinka" {
		t.Errorf("expected merchant Korzinka, got %q", tx.Merchant)
	}
	if tx.Category != "Food" {
		t.Errorf("expected category Food, got %s", tx.Category)
	}
	want := time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC)
	if !tx.Date.Equal(want) {
		t.Errorf("expected date %v, got %v", want, tx.Date)
	}
}

func TestParseSMSUzcardIncome(t *testing.T) {
	text := "Karta *9876: +2,500,000.00 UZS. Zachislenie zarplata. 01.03.2026 09:00. Balans: 6,000,000.00 UZS"

	tx := New(log.Default()).ParseSMSUzcard(text)

	if tx.Type != models.Income {
		t.Errorf("expected type income, got %s", tx.Type)
	}
	if tx.Amount != 2500000.00 {
		t.Errorf("expected amount 2500000.00, got %v", tx.Amount)
	}
}

func TestParseSMSUzcardNoAmount(t *testing.T) {
	tx := New(log.Default()).ParseSMSUzcard("Karta *1234: Bildirishnoma. Xizmat vaqtincha ishlamaydi.")

	if tx.HasAmount() {
		t.Errorf("expected no amount, got %v", tx.Amount)
	}
	if tx.Card != "*1234" {
		t.Errorf("expected card to still be extracted, got %q", tx.Card)
	}
}

func TestParseSMSHumoExpense(t *testing.T) {
	text := "HUMO *5678: Spisanie 250,000 UZS. Macro. 12/02/2026. Ost: 1,200,000 UZS"

	tx := New(log.Default()).ParseSMSHumo(text)

	if tx.Amount != 250000 {
		t.Errorf("expected amount 250000, got %v", tx.Amount)
	}
	if tx.Type != models.Expense {
		t.Errorf("expected type expense, got %s", tx.Type)
	}
	if tx.Card != "HUMO *5678" {
		t.Errorf("expected card HUMO *5678, got %q", tx.Card)
	}
	if tx.Merchant != "Macro" {
		t.Errorf("expected merchant Macro, got %q", tx.Merchant)
	}
	if tx.Category != "Food" {
		t.Errorf("expected category Food, got %s", tx.Category)
	}
	want := time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC)
	if !tx.Date.Equal(want) {
		t.Errorf("expected date %v, got %v", want, tx.Date)
	}
}

func TestParseSMSHumoIncomeKeywordBeforeAmount(t *testing.T) {
	text := "HUMO *5678: Popolnenie 1,000,000.00 UZS. 05.03.2026. Ost: 2,200,000.00 UZS"

	tx := New(log.Default()).ParseSMSHumo(text)

	if tx.Type != models.Income {
		t.Errorf("expected type income, got %s", tx.Type)
	}
	if tx.Amount != 1000000.00 {
		t.Errorf("expected amount 1000000.00, got %v", tx.Amount)
	}
}

func TestParseSMSHumoBareAmountFallback(t *testing.T) {
	// No action keyword ahead of the number: the bare currency-suffixed
	// amount is used instead.
	text := "HUMO *5678: 75,000 UZS. Apteka Tashkent. 20.02.2026"

	tx := New(log.Default()).ParseSMSHumo(text)

	if tx.Amount != 75000 {
		t.Errorf("expected amount 75000, got %v", tx.Amount)
	}
	if tx.Merchant != "Apteka Tashkent" {
		t.Errorf("expected merchant Apteka Tashkent, got %q", tx.Merchant)
	}
	if tx.Category != "Health" {
		t.Errorf("expected category Health, got %s", tx.Category)
	}
}

func TestParseSMSBulkBlankLines(t *testing.T) {
	block := "Karta *1234: -150,000.00 UZS. Korzinka. 12.02.2026 14:30. Balans: 3,500,000.00 UZS\n\nHUMO *5678: Spisanie 250,000 UZS. Macro. 13/02/2026. Ost: 1,200,000 UZS"

	txs := New(log.Default()).ParseSMSBulk(block)

	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}
	if txs[0].Merchant != "Korzinka" || txs[1].Merchant != "Macro" {
		t.Errorf("expected input order preserved, got %q then %q", txs[0].Merchant, txs[1].Merchant)
	}
}

func TestParseSMSBulkMarkerSplit(t *testing.T) {
	// No blank lines: the block is re-split before each card marker.
	block := "Karta *1234: -10,000.00 UZS. Evos. 12.02.2026. Karta *1234: -20,000.00 UZS. Makro. 13.02.2026."

	txs := New(log.Default()).ParseSMSBulk(block)

	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}
	if txs[0].Amount != 10000 || txs[1].Amount != 20000 {
		t.Errorf("expected amounts 10000 and 20000, got %v and %v", txs[0].Amount, txs[1].Amount)
	}
}

func TestParseSMSBulkDropsAmountless(t *testing.T) {
	block := "Karta *1234: Bildirishnoma. Xizmat ishlamaydi.\n\nKarta *1234: -30,000.00 UZS. Havas. 14.02.2026."

	txs := New(log.Default()).ParseSMSBulk(block)

	if len(txs) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txs))
	}
	if txs[0].Amount != 30000 {
		t.Errorf("expected amount 30000, got %v", txs[0].Amount)
	}
}

func TestParseSMSBulkEmpty(t *testing.T) {
	if txs := New(log.Default()).ParseSMSBulk("  \n "); txs != nil {
		t.Errorf("expected nil for blank input, got %v", txs)
	}
}
