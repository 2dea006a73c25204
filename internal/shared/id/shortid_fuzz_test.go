package id

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzGenerate tests the Generate function
func FuzzGenerate(f *testing.F) {
	lengths := []int{0, 1, 2, 5, 10, 12, 20, 50, 100}
	for _, l := range lengths {
		f.Add(l)
	}

	f.Fuzz(func(t *testing.T, length int) {
		if length > 10000 {
			return
		}

		result, err := Generate(length)
		if err != nil {
			t.Errorf("Generate(%d) returned error: %v", length, err)
			return
		}

		// If length <= 0, should use default length
		expectedLen := length
		if expectedLen <= 0 {
			expectedLen = DefaultLength
		}

		if len(result) != expectedLen {
			t.Errorf("Generate(%d) returned string of length %d, expected %d", length, len(result), expectedLen)
		}

		for _, c := range result {
			if !strings.ContainsRune(alphabet, c) {
				t.Errorf("Generate(%d) returned invalid character %q", length, c)
			}
		}
	})
}

// FuzzStripPrefix tests prefix round-tripping
func FuzzStripPrefix(f *testing.F) {
	seeds := []struct {
		prefix  string
		shortID string
	}{
		{"inq", "abc123"},
		{"usr", "xK9mP2vL3nQw"},
		{"", "abc"},
		{"inq", ""},
		{"中文", "测试"},
	}
	for _, seed := range seeds {
		f.Add(seed.prefix, seed.shortID)
	}

	f.Fuzz(func(t *testing.T, prefix, shortID string) {
		if !utf8.ValidString(prefix) || !utf8.ValidString(shortID) {
			return
		}

		sid := prefix + "_" + shortID
		if !HasPrefix(prefix, sid) {
			t.Errorf("HasPrefix(%q, %q) = false, expected true", prefix, sid)
		}
		if got := StripPrefix(prefix, sid); got != shortID {
			t.Errorf("StripPrefix(%q, %q) = %q, expected %q", prefix, sid, got, shortID)
		}
	})
}

// TestGenerateUniqueness tests that generated IDs are unique
func TestGenerateUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	iterations := 10000

	for i := 0; i < iterations; i++ {
		id, err := Generate(DefaultLength)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		if seen[id] {
			t.Errorf("Generate produced duplicate ID: %s", id)
		}
		seen[id] = true
	}
}

func TestGenerateWithPrefixFormat(t *testing.T) {
	sid := MustGenerateWithPrefix(PrefixInquiry, DefaultLength)
	if !strings.HasPrefix(sid, "inq_") {
		t.Errorf("generated ID %q doesn't have expected prefix inq_", sid)
	}
	if len(StripPrefix(PrefixInquiry, sid)) != DefaultLength {
		t.Errorf("short ID length %d doesn't match default %d", len(sid)-4, DefaultLength)
	}
}
