package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestAmountCoercion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want decimal.Decimal
	}{
		{"number", `{"debit": 50000}`, decimal.NewFromInt(50000)},
		{"numeric string", `{"debit": "1500.50"}`, decimal.RequireFromString("1500.50")},
		{"malformed string coerces to zero", `{"debit": "lima ribu"}`, decimal.Zero},
		{"bool coerces to zero", `{"debit": true}`, decimal.Zero},
		{"object coerces to zero", `{"debit": {}}`, decimal.Zero},
		{"missing defaults to zero", `{}`, decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req EntryRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("decode must never fail on amount cells: %v", err)
			}
			if !req.Debit.Equal(tt.want) {
				t.Fatalf("expected %s, got %s", tt.want, req.Debit.Decimal)
			}
		})
	}
}

func TestEntryRequestToUseCaseInput(t *testing.T) {
	t.Parallel()

	body := `{"date":"01-03-2025","description":"Setoran","ref":"1-1","account":"Kas","debit":100,"kredit":0}`
	var req EntryRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatal(err)
	}

	input := req.ToUseCaseInput()
	if input.Date != "01-03-2025" || input.Ref != "1-1" || input.Account != "Kas" {
		t.Fatalf("unexpected input: %+v", input)
	}
	if !input.Debit.Equal(decimal.NewFromInt(100)) || !input.Kredit.IsZero() {
		t.Fatalf("unexpected amounts: %s / %s", input.Debit, input.Kredit)
	}
}
