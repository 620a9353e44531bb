package cli

import "testing"

func TestSuggestPlan(t *testing.T) {
	plans := []string{"Silent", "Balanced", "Turbo"}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Case only", "turbo", "Turbo"},
		{"One typo", "Balancd", "Balanced"},
		{"Transposition", "Slient", "Silent"},
		{"Nothing close", "Performance", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := suggestPlan(tt.input, plans); got != tt.want {
				t.Errorf("suggestPlan(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
