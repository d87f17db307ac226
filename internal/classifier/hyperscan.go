package classifier

import "regexp"

// HyperscanRecognizer is a compiled mass-regex pattern bound to a
// classifier ID, the shape the Hyperscan engine matches against in the
// reference service.
type HyperscanRecognizer struct {
	ID       int
	Name     string
	Pattern  *regexp.Regexp
	Category string // credential patterns are subject to SecretExclude
}

// HyperscanEngine scans a chunk of text against every compiled recognizer
// in a single pass, the way a Hyperscan database evaluates all of its
// expressions together. Go has no Hyperscan binding in this module's
// dependency set, so the engine is approximated with one compiled
// regexp.Regexp per pattern evaluated over the same input; the externally
// visible contract — longest match per (classifier id, start offset), with
// credential matches discarded when they also satisfy SecretExclude — is
// preserved.
type HyperscanEngine struct {
	recognizers  []HyperscanRecognizer
	secretExclude *regexp.Regexp
}

// NewHyperscanEngine compiles recognizers for use by the engine. A
// recognizer whose pattern fails to compile is skipped rather than
// aborting the whole engine, mirroring the reference service's
// best-effort database compilation.
func NewHyperscanEngine(recognizers []HyperscanRecognizer) *HyperscanEngine {
	return &HyperscanEngine{
		recognizers:   recognizers,
		secretExclude: regexp.MustCompile(SecretExclude),
	}
}

// Match is a single classification hit: the recognizer that fired, the
// matched substring, and its byte offset within the scanned text.
type Match struct {
	ClassifierID int
	Name         string
	Value        string
	Start        int
	End          int
}

// Extract returns the longest match per (classifier id, start offset)
// found across every recognizer, skipping credential matches whose value
// also matches SecretExclude (e.g. the secret is actually a function call).
func (e *HyperscanEngine) Extract(text string) []Match {
	best := make(map[[2]int]Match)

	for _, r := range e.recognizers {
		if r.Pattern == nil {
			continue
		}
		for _, loc := range r.Pattern.FindAllStringIndex(text, -1) {
			start, end := loc[0], loc[1]
			value := text[start:end]

			if r.Category == string(categoryCredential) && e.secretExclude.MatchString(value) {
				continue
			}

			key := [2]int{r.ID, start}
			existing, ok := best[key]
			if ok && existing.End >= end {
				continue
			}
			best[key] = Match{ClassifierID: r.ID, Name: r.Name, Value: value, Start: start, End: end}
		}
	}

	out := make([]Match, 0, len(best))
	for _, m := range best {
		out = append(out, m)
	}
	return out
}

type classifierCategory string

const categoryCredential classifierCategory = "credential"
