// Package classifier implements the mass-regex, linear-regex,
// backtracking-regex, and named-entity recognition engines used to scan a
// chunk of text for sensitive data, along with the built-in credential and
// PII recognizer catalog, masking rules, region derivation, and PHI
// detection that sit alongside them.
package classifier

import "github.com/catherinevee/sensiscan/pkg/models"

// SecretExclude matches credential-looking values that are actually
// function calls or parenthesized expressions rather than literal secrets
// (e.g. `aws_secret_access_key = get_secret()`); a hit suppresses the
// surrounding credential match.
const SecretExclude = `(?i)(\(.*\))|(=\s*get)`

// DefaultPatterns is the built-in PII recognizer catalog: free-standing
// data shapes with no surrounding key=value context.
var DefaultPatterns = map[string]string{
	"IN_PAN":            `(?i)[A-Z]{3}[ABCFGHLJPTF]{1}[A-Z]{1}[0-9]{4}[A-Z]{1}`,
	"IN_AADHAR":         `[0-9]{4}[ -]?[0-9]{4}[ -]?[0-9]{4}`,
	"CREDIT_CARD":       `\b((4\d{3})|(5[0-5]\d{2})|(6\d{3})|(1\d{3})|(3\d{3}))[- ]?(\d{3,4})[- ]?(\d{3,4})[- ]?(\d{3,5})\b`,
	"EMAIL_ADDRESS":     `(?i)\b((([!#$%&*+\-/=?^_` + "`" + `{|}~\w][!#$%&'*+\-/=?^_` + "`" + `{|}~\.\w]{0,}[!#$%&'*+\-/=?^_` + "`" + `{|}~\w]))[@]\w+([-.]\w+)*\.\w+([-.]\w+)*)\b`,
	"IBAN_CODE":         `(?i)\b([A-Z]{2}[ \-]?[0-9]{2})((?:[ \-]?[A-Z0-9]{3,5}){2,6})([ \-]?[A-Z0-9]{1,3})?\b`,
	"CRYPTO":            `(?i)\b[13][a-km-zA-HJ-NP-Z1-9]{26,33}\b`,
	"US_SSN":            `\b([0-9]{3})[-.]?([0-9]{2})[-.]?([0-9]{4})\b`,
	"UK_NHS":            `\b([0-9]{3})[- ]?([0-9]{3})[- ]?([0-9]{4})\b`,
	"US_ITIN":           `\b9\d{2}[- ]?(5\d|6[0-5]|7\d|8[0-8]|9([0-2]|[4-9]))[- ]?\d{4}\b`,
	"US_PASSPORT":       `(\b[0-9]{9}\b)|(?i)(\b[A-Z][0-9]{8}\b)`,
	"US_BANK_NUMBER":    `\b[0-9]{8,17}\b`,
	"MEDICAL_LICENSE":   `(?i)[abcdefghjklmprstuxABCDEFGHJKLMPRSTUX]{1}[a-zA-Z]{1}\d{7}|[abcdefghjklmprstuxABCDEFGHJKLMPRSTUX]{1}9\d{7}`,
	"IP_ADDRESS":        `\b(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\b`,
	"US_DRIVER_LICENSE": `\b([A-Z][A-Z0-9*]{11})\b`,
}

// CredentialPatterns is the built-in key=value credential catalog. Each
// pattern is anchored on a recognizable variable name so a match also
// captures the assigned secret; callers discard a match whose value also
// matches SecretExclude.
var CredentialPatterns = map[string]string{
	"AWS_CREDENTIALS":       `(?i)((\s*(aws|aws(_?)secret(_?)access(_?)key(?:(_?)id)?|sha)\s*=\s*)([0-9a-zA-Z/+]{40})(\s*|$))|((\s*(aws|aws(_?)access(?:(_?)key|(_?)key(_?)id))\s*=\s*)(AKIA[0-9A-Z]{16})(\s*|$))`,
	"AZURE_CREDENTIALS":     `(?i)((\s*(azure(_?)storage(_?)account(_?)key)\s*=\s*)([A-Za-z0-9+/]{86}==|[A-Za-z0-9+/]{87}=|[A-Za-z0-9+/]{88})(\s*|$))|((\s*(azure(_?)client(_?)id)\s*=\s*)([0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12})(\s*|$))`,
	"GITHUB_CREDENTIALS":    `(?i)(\s*(github(_?)token|github(_?)access(_?)token|github(_?)personal(_?)access(_?)token|github(_?)sha)\s*=\s*)([0-9a-zA-Z/+]{40})(\s*|$)`,
	"STRIPE_CREDENTIALS":    `(?i)((\s*stripe(_?)secret\s*=\s*)([a-zA-Z0-9]{24}\.[a-zA-Z0-9]{32})(\s*|$))|((\s*stripe(_?)public(_?)key\s*=\s*)(pk_test_[a-zA-Z0-9]{24})(\s*|$))`,
	"SSH_KEYS":              `(?i)(\s*(ssh(-?)rsa|ssh(-?)dsa|ssh(-?)ecdsa|ssh(-?)ed25519|ecdsa(-?)sha2(-?)nistp[0-9]{3})\s*=?\s*)((?:AAAA[0-9A-Za-z+/]+[=]{0,3})(?: [^@\s]+@[^@\s]+)?)(\s*|$)`,
	"TWILIO_CREDENTIALS":    `(?i)\s*(twilio_?account_?sid|twilio_?auth_?token)\s*=\s*([a-zA-Z0-9]{32})\s*`,
	"CELERY_CREDENTIALS":    `(?i)(\s*(celery(_?)broker(_?)url)\s*=\s*)(amqp[s]?://[a-zA-Z0-9_]+:[a-zA-Z0-9_]+@[a-zA-Z0-9_.]+:[0-9]+/[a-zA-Z0-9_]+)(\s*|$)`,
	"SENDGRID_CREDENTIALS":  `(?i)(\s*(send(_?)grid(_?)key|send(_?)grid(_?)pass(?:word))\s*=\s*)(SG\.[a-zA-Z0-9_]{22}\.[a-zA-Z0-9_]{43})(\s*|$)`,
	"GCP_CREDENTIALS":       `(?i)(\s*((google|gcp).{0,20}?)\s*=\s*)(AIza[a-zA-Z0-9]{35})(\s*|$)`,
	"AUTH0_CREDENTIALS":     `(?i)(\s*(auth0.{0,20}?)\s*=\s*)([0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12})(\s*|$)`,
	"SNOWFLAKE_CREDENTIALS": `(?i)(\s*(snowflake.{0,20}?)\s*=\s*)\S{3,}(\s*|$)`,
	"OPENAI_KEY":            `(?i)(\s*(open_ai|open_?ai_?key|open_?ai_?api_?key)\s*=?\s*)([a-zA-Z0-9]{32})(\s*|$)`,
	"INSURANCE_INFORMATION": `(?i)(\s*(blue(?:_?shield)?(?:_?member)?(?:_?id)?|member_?id)\s*=?\s*)(([A-Z]{3}(\d|[A-Z]){8,12})|(R(\d|[A-Z]){8,12}))(\s*|$)`,
}

// StandaloneCredentialPatterns carries lookbehind-qualified variants of the
// credential catalog that only fire when the value is NOT preceded by its
// usual key=value assignment (i.e. the secret appears bare in the text).
// RE2 cannot express lookbehind, so these are routed to the backtracking
// (RE) engine exclusively.
var StandaloneCredentialPatterns = []string{
	`(?<!(aws|aws_secret_access_key(?:_id)?|sha)\s*=\s*)(?<!\w)[0-9a-zA-Z/+]{40}(?!\w)`,
	`(?<!(aws|aws_access(?:_key|_key_id))\s*=\s*)(?<!\w)AKIA[0-9A-Z]{16}(?!\w)`,
	`(?<!auth0_client_id\s*=\s*)(?<!\w)[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}(?!\w)`,
	`(?<!stripe_secret\s*=\s*)(?<!\w)[a-zA-Z0-9]{24}\.[a-zA-Z0-9]{32}(?!\w)`,
	`(?<!twilio_account_sid\s*=\s*)(?<!\w)AC[a-zA-Z0-9]{32}(?!\w)`,
}

// SystemClassifierNames is the full set of built-in recognizer names, used
// to flag a finding as is_custom_regex == false.
func SystemClassifierNames() map[string]struct{} {
	out := make(map[string]struct{}, len(DefaultPatterns)+len(CredentialPatterns))
	for name := range DefaultPatterns {
		out[name] = struct{}{}
	}
	for name := range CredentialPatterns {
		out[name] = struct{}{}
	}
	return out
}

// IsSystemClassifier reports whether name refers to a built-in recognizer
// rather than one configured by a customer through the control plane.
func IsSystemClassifier(name string) bool {
	_, ok := DefaultPatterns[name]
	if ok {
		return true
	}
	_, ok = CredentialPatterns[name]
	return ok
}

// BuiltinClassifiers returns the full built-in catalog as models.Classifier
// values, partitioned across the HYPERSCAN-style engine (PII shapes) and
// the RE2 engine (credential key=value patterns), mirroring the reference
// service's default configuration before any customer-defined recognizer is
// merged in.
func BuiltinClassifiers() []models.Classifier {
	classifiers := make([]models.Classifier, 0, len(DefaultPatterns)+len(CredentialPatterns))
	id := 1
	for name, pattern := range DefaultPatterns {
		classifiers = append(classifiers, models.Classifier{
			ID:       id,
			Name:     name,
			Engine:   models.EngineHyperscan,
			Patterns: []string{pattern},
			Category: models.CategoryInclude,
			Kind:     models.KindData,
		})
		id++
	}
	for name, pattern := range CredentialPatterns {
		classifiers = append(classifiers, models.Classifier{
			ID:       id,
			Name:     name,
			Engine:   models.EngineRE2,
			Patterns: []string{pattern},
			Category: models.CategoryInclude,
			Kind:     models.KindData,
		})
		id++
	}
	return classifiers
}
