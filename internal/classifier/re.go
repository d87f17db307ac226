package classifier

import "github.com/dlclark/regexp2"

// RERecognizer is a single backtracking pattern, used for recognizers that
// need lookbehind/lookahead assertions RE2 cannot express — the
// reference service's standalone-credential patterns are the motivating
// case (a bare secret that is NOT already captured by a key=value
// credential match).
type RERecognizer struct {
	ID      int
	Name    string
	Pattern *regexp2.Regexp
}

// REEngine runs each recognizer's pattern over the text with a
// backtracking engine, one pattern at a time, in recognizer order —
// slower than RE2Engine but able to express the lookbehind assertions the
// standalone-credential catalog depends on.
type REEngine struct {
	recognizers []RERecognizer
}

// NewREEngine constructs an engine from already-compiled recognizers.
func NewREEngine(recognizers []RERecognizer) *REEngine {
	return &REEngine{recognizers: recognizers}
}

// Extract returns every match for every recognizer, in recognizer order.
func (e *REEngine) Extract(text string) []Match {
	var out []Match
	for _, r := range e.recognizers {
		if r.Pattern == nil {
			continue
		}
		m, err := r.Pattern.FindStringMatch(text)
		for err == nil && m != nil {
			out = append(out, Match{
				ClassifierID: r.ID,
				Name:         r.Name,
				Value:        m.String(),
				Start:        m.Index,
				End:          m.Index + m.Length,
			})
			m, err = r.Pattern.FindNextMatch(m)
		}
	}
	return out
}

// CompileBacktracking compiles a pattern with regexp2 in case-insensitive,
// singleline-off mode matching the reference service's re.compile default.
func CompileBacktracking(pattern string) (*regexp2.Regexp, error) {
	return regexp2.Compile(pattern, regexp2.None)
}
