package rules

import (
	"regexp"

	"github.com/leakgate/leakgate/internal/types"
)

// Rule is a named, pre-compiled detection pattern. Name is unique within
// the registry and appears verbatim in reports.
type Rule struct {
	Name     string
	Pattern  *regexp.Regexp
	Severity types.Severity
}

// registry is evaluated in order; broad catch-all rules (Generic Token,
// Auth0 Secret Pattern) deliberately overlap narrower ones and must stay
// late in the list so they only claim lines nothing more specific matched.
// Do not reorder.
var registry = []Rule{
	{"AWS Key", regexp.MustCompile(`AKIA[0-9A-Z]{16}`), types.SevHigh},
	// RE2 has no lookarounds; the boundary classes exclude base64 characters
	// and the '-' of lockfile integrity prefixes (sha512-...), and reject
	// runs longer than 40 chars or followed by '=' padding.
	{"AWS Secret", regexp.MustCompile(`(^|[^A-Za-z0-9/+=-])[A-Za-z0-9/+]{40}([^A-Za-z0-9/+=]|$)`), types.SevHigh},
	{"Private Key", regexp.MustCompile(`-----BEGIN (RSA|DSA|EC|OPENSSH) PRIVATE KEY-----`), types.SevHigh},
	{"SSH Key", regexp.MustCompile(`ssh-rsa\s+[A-Za-z0-9/+=]{40,}`), types.SevHigh},
	{"GitHub Token", regexp.MustCompile(`(?i)github[ _-]?token['"]?\s*[:=]?\s*['"]?[A-Za-z0-9]{35,40}`), types.SevHigh},
	{"API Key", regexp.MustCompile(`(?i)api[ _-]?key['"]?\s*[:=]?\s*['"]?[A-Za-z0-9]{16,45}`), types.SevMed},
	{"Generic Secret", regexp.MustCompile(`(?i)secret['"]?\s*[:=]?\s*['"]?[A-Za-z0-9]{16,45}`), types.SevMed},
	{"Password Assignment", regexp.MustCompile(`(?i)(password|passwd|pwd)\s*[:=]+\s*\S+`), types.SevMed},
	{"Authorization Header", regexp.MustCompile(`(?i)authorization['"]?\s*[:=]\s*['"]?bearer\s+\S+`), types.SevHigh},
	{"Connection String", regexp.MustCompile(`[A-Za-z][A-Za-z0-9+.-]*://[^\s:@/]{3,20}:[^\s:@/]{3,20}@[^\s@]+`), types.SevHigh},
	{"Generic Token", regexp.MustCompile(`\b[a-z0-9]{32,64}\b`), types.SevLow},
	{"Auth0 Client Secret", regexp.MustCompile(`(?i)client[ _-]?secret['"]?\s*[:=]\s*['"]?[A-Za-z0-9_]{64}`), types.SevHigh},
	{"Auth0 Secret Pattern", regexp.MustCompile(`\b[A-Za-z0-9_]{64}\b`), types.SevLow},
	{"Stripe Live Key", regexp.MustCompile(`sk_live_[A-Za-z0-9]{10,}`), types.SevHigh},
}

// Registry returns the shared ordered rule list. Callers must not mutate it.
func Registry() []Rule {
	return registry
}

// Names returns rule names in registration order.
func Names() []string {
	out := make([]string, len(registry))
	for i, r := range registry {
		out[i] = r.Name
	}
	return out
}

// ByName returns the rule with the given name, if registered.
func ByName(name string) (Rule, bool) {
	for _, r := range registry {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}
