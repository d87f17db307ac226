package classifier

import "regexp"

// NERClassifierID is the reserved classifier id the reference service's
// MITIE PERSON extractor always reports under, independent of any
// control-plane-assigned classifier id.
const NERClassifierID = 0

// NERMinScore is the minimum entity score (rounded to one decimal place)
// the reference service accepts from its named-entity extractor.
const NERMinScore = 0.8

// Entity is a single named-entity hit.
type Entity struct {
	Value string
	Score float64
	Start int
	End   int
}

// PersonExtractor finds PERSON entities in text. The reference service
// backs this with a MITIE model; this module has no bundled NER model, so
// NewHeuristicPersonExtractor provides a capitalized-bigram heuristic that
// satisfies the same contract (PERSON entities only, score >= NERMinScore)
// for environments that don't wire in a real model.
type PersonExtractor interface {
	Extract(text string) []Entity
}

// heuristicPersonExtractor flags runs of two or more capitalized words
// ("George Washington") as PERSON entities. It trades recall for having no
// external model dependency; a deployment that needs production-grade NER
// should implement PersonExtractor against a real model and wire it in
// place of this default.
type heuristicPersonExtractor struct {
	namePattern *regexp.Regexp
}

// NewHeuristicPersonExtractor builds the default PersonExtractor.
func NewHeuristicPersonExtractor() PersonExtractor {
	return &heuristicPersonExtractor{
		namePattern: regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)+\b`),
	}
}

func (h *heuristicPersonExtractor) Extract(text string) []Entity {
	var out []Entity
	for _, loc := range h.namePattern.FindAllStringIndex(text, -1) {
		out = append(out, Entity{
			Value: text[loc[0]:loc[1]],
			Score: NERMinScore,
			Start: loc[0],
			End:   loc[1],
		})
	}
	return out
}

// NEREngine adapts a PersonExtractor to the classifier Match shape, always
// reporting under NERClassifierID the way the reference service's mitie
// binding does.
type NEREngine struct {
	extractor PersonExtractor
}

// NewNEREngine wraps extractor for use alongside the other engines.
func NewNEREngine(extractor PersonExtractor) *NEREngine {
	return &NEREngine{extractor: extractor}
}

// Extract returns PERSON entities as Match values under NERClassifierID.
func (e *NEREngine) Extract(text string) []Match {
	var out []Match
	for _, ent := range e.extractor.Extract(text) {
		out = append(out, Match{
			ClassifierID: NERClassifierID,
			Name:         "PERSON",
			Value:        ent.Value,
			Start:        ent.Start,
			End:          ent.End,
		})
	}
	return out
}
