package classifier

import (
	"regexp"
	"testing"
)

func TestHyperscanEngine_ExtractsSSN(t *testing.T) {
	engine := NewHyperscanEngine([]HyperscanRecognizer{
		{ID: 1, Name: "US_SSN", Pattern: regexp.MustCompile(DefaultPatterns["US_SSN"])},
	})

	matches := engine.Extract("the employee record lists ssn 123-45-6789 on file")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d: %+v", len(matches), matches)
	}
	if matches[0].Value != "123-45-6789" {
		t.Errorf("unexpected match value %q", matches[0].Value)
	}
}

func TestHyperscanEngine_LongestMatchWinsPerStartOffset(t *testing.T) {
	engine := NewHyperscanEngine([]HyperscanRecognizer{
		{ID: 1, Name: "SHORT", Pattern: regexp.MustCompile(`foo`)},
		{ID: 1, Name: "LONG", Pattern: regexp.MustCompile(`foobar`)},
	})

	matches := engine.Extract("foobar")
	if len(matches) != 1 {
		t.Fatalf("expected the two overlapping matches to dedup to 1, got %d", len(matches))
	}
	if matches[0].Value != "foobar" {
		t.Errorf("expected the longer match to win, got %q", matches[0].Value)
	}
}

func TestHyperscanEngine_CredentialExcludedWhenValueIsFunctionCall(t *testing.T) {
	engine := NewHyperscanEngine([]HyperscanRecognizer{
		{ID: 1, Name: "FAKE_SECRET", Category: string(categoryCredential), Pattern: regexp.MustCompile(`secret=\S+`)},
	})

	matches := engine.Extract("secret=get_secret()")
	if len(matches) != 0 {
		t.Fatalf("expected credential match resolving to a function call to be excluded, got %+v", matches)
	}
}

func TestHyperscanEngine_CredentialKeptWhenLiteral(t *testing.T) {
	engine := NewHyperscanEngine([]HyperscanRecognizer{
		{ID: 1, Name: "FAKE_SECRET", Category: string(categoryCredential), Pattern: regexp.MustCompile(`secret=\S+`)},
	})

	matches := engine.Extract("secret=abc123literalvalue")
	if len(matches) != 1 {
		t.Fatalf("expected literal credential match to be kept, got %d", len(matches))
	}
}
