package classifier

import "strings"

// MaskValue redacts a matched value for storage/reporting, revealing only
// enough of it for a human reviewer to recognize the finding without
// exposing the sensitive value itself. The reveal rules vary by classifier
// name, mirroring the reference service's mask_data:
//
//   - EMAIL_ADDRESS keeps the first character of the local part and the
//     domain's top-level label, masking everything else
//     ("[email protected]" -> "a*****@*****.com").
//   - Any other EMAIL_* classifier keeps the first two characters of the
//     local part plus the full domain.
//   - US_SSN and PERSON are tiered by length: 4 or fewer characters keep one
//     leading character; 5-6 characters keep two leading characters; more
//     than 6 characters keep two leading and two trailing characters.
//   - Everything else has every letter and digit replaced with '*',
//     preserving punctuation and spacing so the shape of the value is still
//     visible.
func MaskValue(classifierName, value string) string {
	switch {
	case classifierName == "EMAIL_ADDRESS":
		return maskEmail(value, 1, true)
	case strings.HasPrefix(classifierName, "EMAIL"):
		return maskEmail(value, 2, false)
	case classifierName == "US_SSN" || classifierName == "PERSON":
		return maskTiered(value)
	default:
		return maskAllAlnum(value)
	}
}

// maskEmail keeps the first keep characters of the local part, masking the
// rest with '*'. When maskDomain is set, the domain name itself is also
// masked down to its top-level label ("example.com" -> "*****.com");
// otherwise the full domain is left readable.
func maskEmail(value string, keep int, maskDomain bool) string {
	at := strings.IndexByte(value, '@')
	if at < 0 {
		return maskAllAlnum(value)
	}
	local := maskLeading(value[:at], keep)
	domain := value[at+1:]
	if maskDomain {
		domain = maskDomainKeepTLD(domain)
	}
	return local + "@" + domain
}

// maskLeading keeps the first keep runes of s, replacing the rest with '*'.
func maskLeading(s string, keep int) string {
	runes := []rune(s)
	if keep > len(runes) {
		keep = len(runes)
	}
	masked := make([]rune, len(runes))
	for i, r := range runes {
		if i < keep {
			masked[i] = r
		} else {
			masked[i] = '*'
		}
	}
	return string(masked)
}

// maskDomainKeepTLD masks every alphanumeric rune of a domain name up to
// (but not including) its final ".label", which is left readable.
func maskDomainKeepTLD(domain string) string {
	lastDot := strings.LastIndexByte(domain, '.')
	if lastDot < 0 {
		return maskAllAlnum(domain)
	}
	return maskAllAlnum(domain[:lastDot]) + domain[lastDot:]
}

// maskTiered applies the US_SSN/PERSON length-tiered reveal rule.
func maskTiered(value string) string {
	runes := []rune(value)
	n := len(runes)

	var leadKeep, trailKeep int
	switch {
	case n <= 4:
		leadKeep = 1
	case n <= 6:
		leadKeep = 2
	default:
		leadKeep = 2
		trailKeep = 2
	}

	masked := make([]rune, n)
	for i, r := range runes {
		switch {
		case i < leadKeep:
			masked[i] = r
		case trailKeep > 0 && i >= n-trailKeep:
			masked[i] = r
		case isAlnum(r):
			masked[i] = '*'
		default:
			masked[i] = r
		}
	}
	return string(masked)
}

// maskAllAlnum replaces every letter and digit with '*', leaving any other
// punctuation or whitespace in place so the value's shape stays visible.
func maskAllAlnum(value string) string {
	runes := []rune(value)
	masked := make([]rune, len(runes))
	for i, r := range runes {
		if isAlnum(r) {
			masked[i] = '*'
		} else {
			masked[i] = r
		}
	}
	return string(masked)
}

func isAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
