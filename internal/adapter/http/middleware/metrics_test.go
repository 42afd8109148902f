package middleware

import "testing"

func TestNormalizePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"/api/v1/entries", "/api/v1/entries"},
		{"/api/v1/entries/01HX2", "/api/v1/entries/:id"},
		{"/api/v1/ledger/1-1", "/api/v1/ledger/:id"},
		{"/api/v1/trial-balance/rows/3-1", "/api/v1/trial-balance/rows/:id"},
		{"/api/v1/trial-balance/sync", "/api/v1/trial-balance/sync"},
		{"/api/v1/statements/expense/items", "/api/v1/statements/:section/items"},
		{"/api/v1/statements/expense/items/Beban Air", "/api/v1/statements/:section/items"},
		{"/api/v1/statements/income", "/api/v1/statements/income"},
		{"/health", "/health"},
	}

	for _, tt := range tests {
		if got := normalizePath(tt.in); got != tt.want {
			t.Fatalf("normalizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
