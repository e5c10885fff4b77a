package parser

import (
	"testing"

	"github.com/charmbracelet/log"
)

func TestDetectKind(t *testing.T) {
	cases := []struct {
		filename string
		want     Kind
	}{
		{"statement.csv", KindCSVStatement},
		{"Vypiska.CSV", KindCSVStatement},
		{"statement.xls", KindXLSStatement},
		{"sms-export.txt", KindSMS},
		{"SMS_2026.txt", KindSMS},
		{"receipt-001.txt", KindReceipt},
		{"chek.txt", KindReceipt},
		{"report.pdf", ""},
	}

	for _, c := range cases {
		if got := DetectKind(c.filename); got != c.want {
			t.Errorf("DetectKind(%q) = %q, want %q", c.filename, got, c.want)
		}
	}
}

func TestProcessBytesRoutesByFilename(t *testing.T) {
	p := New(log.Default())

	txs, err := p.ProcessBytes([]byte("Karta *1234: -10,000.00 UZS. Evos. 12.02.2026."), "sms-dump.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txs) != 1 || txs[0].Card != "*1234" {
		t.Errorf("expected one sms transaction for card *1234, got %v", txs)
	}

	txs, err = p.ProcessBytes([]byte("EVOS\nJAMI: 45.000"), "receipt.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txs) != 1 || txs[0].Amount != 45000 {
		t.Errorf("expected one receipt transaction of 45000, got %v", txs)
	}
}

func TestProcessUnknownKind(t *testing.T) {
	if _, err := New(log.Default()).Process([]byte("x"), ""); err == nil {
		t.Error("expected an error for an unknown kind")
	}
}
