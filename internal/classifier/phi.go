package classifier

import "regexp"

// phiPattern flags filenames and file content that look health-related even
// when no individual classifier matched, so the scan pipeline can raise a
// PHI signal independent of the regular finding set.
var phiPattern = regexp.MustCompile(`(?i)(\b|_)(health)(\b|_)|medical|immun|pharmacy|disease|patient|insura|(\b|_)(Rh)(\b|_)|MRN|(\b|_)(phi)(\b|_)`)

// IsPHI reports whether either the object's name or a sample of its content
// matches the PHI keyword pattern.
func IsPHI(name, data string) bool {
	return phiPattern.MatchString(name) || phiPattern.MatchString(data)
}
