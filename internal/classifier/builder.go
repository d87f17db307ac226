package classifier

import (
	"regexp"

	"github.com/dlclark/regexp2"

	"github.com/catherinevee/sensiscan/pkg/models"
)

// standaloneClassifierOffset keeps standalone-credential recognizer IDs
// distinct from the regular catalog's, since both are merged into the
// same REEngine.
const standaloneClassifierOffset = 100_000

// BuildAnalyzer compiles the built-in catalog plus any customer-defined
// classifiers fetched from the control plane into a ready-to-use Analyzer.
// A classifier whose pattern fails to compile is skipped rather than
// aborting the whole build, mirroring NewHyperscanEngine's best-effort
// compilation; personExtraction enables the NER stage (disabled by
// rescan_by_data_type jobs, which call WithoutNER instead).
func BuildAnalyzer(custom []models.Classifier, personExtraction bool) *Analyzer {
	all := append(BuiltinClassifiers(), custom...)

	var hyperRecognizers []HyperscanRecognizer
	var re2Recognizers []RE2Recognizer
	var reRecognizers []RERecognizer

	for _, c := range all {
		for _, pattern := range c.Patterns {
			switch c.Engine {
			case models.EngineHyperscan:
				if re, err := regexp.Compile(pattern); err == nil {
					hyperRecognizers = append(hyperRecognizers, HyperscanRecognizer{
						ID: c.ID, Name: c.Name, Pattern: re, Category: string(c.Category),
					})
				}
			case models.EngineRE2:
				if re, err := regexp.Compile(pattern); err == nil {
					re2Recognizers = append(re2Recognizers, RE2Recognizer{ID: c.ID, Name: c.Name, Pattern: re})
				}
			case models.EngineRE:
				if re, err := regexp2.Compile(pattern, regexp2.None); err == nil {
					reRecognizers = append(reRecognizers, RERecognizer{ID: c.ID, Name: c.Name, Pattern: re})
				}
			}
		}
	}

	for i, pattern := range StandaloneCredentialPatterns {
		if re, err := regexp2.Compile(pattern, regexp2.None); err == nil {
			reRecognizers = append(reRecognizers, RERecognizer{
				ID:      standaloneClassifierOffset + i,
				Name:    "STANDALONE_CREDENTIAL",
				Pattern: re,
			})
		}
	}

	var ner *NEREngine
	if personExtraction {
		ner = NewNEREngine(NewHeuristicPersonExtractor())
	}

	return NewAnalyzer(
		ner,
		NewHyperscanEngine(hyperRecognizers),
		NewRE2Engine(re2Recognizers),
		NewREEngine(reRecognizers),
	)
}
