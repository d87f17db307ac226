package classifier

import "regexp"

// RE2Recognizer is a single compiled pattern evaluated independently of the
// others, in pattern order, the way the reference service's re2 binding
// runs one pattern at a time rather than compiling a shared database.
type RE2Recognizer struct {
	ID      int
	Name    string
	Pattern *regexp.Regexp
}

// RE2Engine runs each recognizer's pattern over the text in turn with
// linear-time matching (Go's regexp package is itself RE2-derived, so this
// engine needs no external binding, unlike the reference service's
// google/re2 wrapper).
type RE2Engine struct {
	recognizers []RE2Recognizer
}

// NewRE2Engine constructs an engine from already-compiled recognizers.
func NewRE2Engine(recognizers []RE2Recognizer) *RE2Engine {
	return &RE2Engine{recognizers: recognizers}
}

// Extract returns every non-overlapping match for every recognizer, in
// recognizer order.
func (e *RE2Engine) Extract(text string) []Match {
	var out []Match
	for _, r := range e.recognizers {
		if r.Pattern == nil {
			continue
		}
		for _, loc := range r.Pattern.FindAllStringIndex(text, -1) {
			out = append(out, Match{
				ClassifierID: r.ID,
				Name:         r.Name,
				Value:        text[loc[0]:loc[1]],
				Start:        loc[0],
				End:          loc[1],
			})
		}
	}
	return out
}

// CompilePatterns compiles a classifier's pattern list, returning the first
// one that compiles (the reference service's recognizers always carry a
// single pattern per classifier; a classifier with an invalid pattern is
// dropped rather than failing the whole recognizer set).
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(pattern)
}
