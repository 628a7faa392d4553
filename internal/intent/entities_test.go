package intent

import (
	"strings"
	"testing"
)

func TestExtractOrderID(t *testing.T) {
	tests := []struct {
		query  string
		want   int
		wantOK bool
	}{
		{"Where is my order #12345?", 12345, true},
		{"order 777 status", 777, true},
		{"# 42", 42, true},
		{"my order number 9001 please", 9001, true},
		{"tracking number 555", 555, true},
		{"ORDER #8", 8, true},
		{"hello", 0, false},
		{"I ordered something", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ExtractOrderID(tt.query)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ExtractOrderID(%q) = (%d, %v), want (%d, %v)", tt.query, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestExtractProductNamePatterns(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"Do you have stock for wireless mouse?", "wireless mouse"},
		{"availability of gaming laptop.", "gaming laptop"},
		{"do you have mechanical keyboards?", "mechanical keyboards"},
	}

	for _, tt := range tests {
		got, ok := ExtractProductName(tt.query)
		if !ok {
			t.Errorf("ExtractProductName(%q) found nothing", tt.query)
			continue
		}
		if got != tt.want {
			t.Errorf("ExtractProductName(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestExtractProductNameInStock(t *testing.T) {
	got, ok := ExtractProductName("Is the iPhone in stock?")
	if !ok {
		t.Fatal("expected a product name")
	}
	if !strings.Contains(got, "iPhone") {
		t.Errorf("expected capture containing iPhone, got %q", got)
	}
}

func TestExtractProductNameFallback(t *testing.T) {
	// No pattern matches; falls back to the last three words.
	got, ok := ExtractProductName("tell me about the blue widget")
	if !ok {
		t.Fatal("expected fallback to fire")
	}
	if got != "the blue widget" {
		t.Errorf("fallback = %q, want %q", got, "the blue widget")
	}

	// Two-word query: fallback still fires with all words.
	got, ok = ExtractProductName("blue widget")
	if !ok || got != "blue widget" {
		t.Errorf("two-word fallback = (%q, %v)", got, ok)
	}
}

func TestExtractProductNameSingleWord(t *testing.T) {
	if _, ok := ExtractProductName("hello"); ok {
		t.Error("single-word query should yield no product name")
	}
	if _, ok := ExtractProductName(""); ok {
		t.Error("empty query should yield no product name")
	}
}
