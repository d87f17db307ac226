package classifier

import "strings"

// Region derives the reporting region for a classifier name: US_*
// classifiers are scoped to "USA", IN_* classifiers to "India", and
// everything else is reported globally as "All".
func Region(classifierName string) string {
	switch {
	case strings.HasPrefix(classifierName, "US_"):
		return "USA"
	case strings.HasPrefix(classifierName, "IN_"):
		return "India"
	default:
		return "All"
	}
}
