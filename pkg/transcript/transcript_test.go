package transcript

import (
	"strings"
	"testing"
)

func TestMerge(t *testing.T) {
	t.Run("first fragment stored as-is", func(t *testing.T) {
		got := Merge("", "[AGENT]: Hello")
		if got != "[AGENT]: Hello" {
			t.Errorf("Merge = %q", got)
		}
	})

	t.Run("append keeps prior content and order", func(t *testing.T) {
		merged := Merge("A", "B")
		idxA := strings.Index(merged, "A")
		idxB := strings.Index(merged, "B")
		if idxA == -1 || idxB == -1 {
			t.Fatalf("merged transcript lost a fragment: %q", merged)
		}
		if idxA > idxB {
			t.Errorf("fragments out of submission order: %q", merged)
		}
		if !strings.Contains(merged, "Conversation Resumed") {
			t.Errorf("missing resume banner: %q", merged)
		}
	})

	t.Run("empty fragment leaves transcript untouched", func(t *testing.T) {
		if got := Merge("existing", "   "); got != "existing" {
			t.Errorf("Merge = %q, want %q", got, "existing")
		}
	})

	t.Run("whitespace-only existing treated as empty", func(t *testing.T) {
		if got := Merge("  \n", "fresh"); got != "fresh" {
			t.Errorf("Merge = %q, want %q", got, "fresh")
		}
	})
}

func TestLooksComplete(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		want       bool
	}{
		{"empty", "", false},
		{"whitespace only", "  \n ", false},
		{"short incomplete exchange", "[AGENT]: Hi\n[USER]: Hello", false},
		{"closing phrase", "[AGENT]: That concludes our interview.", true},
		{"case-insensitive indicator", "[AGENT]: Thanks, HAVE A GREAT DAY!", true},
		{"thanks for feedback", "[AGENT]: Thanks for the valuable feedback.", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LooksComplete(tt.transcript); got != tt.want {
				t.Errorf("LooksComplete = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLooksCompleteExchangeThreshold(t *testing.T) {
	var b strings.Builder
	for i := 0; i < completeExchangeThreshold; i++ {
		b.WriteString("[AGENT]: question\n[USER]: answer\n")
	}

	if !LooksComplete(b.String()) {
		t.Errorf("a transcript with %d exchanges on both sides should look complete", completeExchangeThreshold)
	}
}
