// =============================================================================
// EA Modeler - Mermaid Sanitizer Module
// =============================================================================
//
// This module maps arbitrary model text (entity names, attribute names,
// domain names, data type values) to tokens that are safe inside Mermaid
// diagram syntax. Mermaid identifiers may only contain ASCII letters, digits
// and underscores; stray characters break downstream diagram rendering.
//
// All functions here are total: they never fail and never return a token
// that would corrupt the surrounding diagram line.
//
// =============================================================================

package sanitize

import "strings"

// FallbackToken is the canonical token substituted for missing or
// unrepresentable values. "string" is a valid Mermaid data type and a safe
// identifier, so it can stand in anywhere a token is required.
const FallbackToken = "string"

// ArrayToken is the canonical token for multi-valued data types.
const ArrayToken = "array"

// missingTokens are the case-insensitive spellings of "no value" that
// tabular exports commonly emit in place of an empty cell.
var missingTokens = map[string]bool{
	"":     true,
	"nan":  true,
	"null": true,
	"none": true,
}

// multivaluedTokens are the case-insensitive synonyms for a multi-valued
// (collection) data type found in canonical model exports.
var multivaluedTokens = map[string]bool{
	"multivalued": true,
	"multivalue":  true,
	"multiocc":    true,
}

// Identifier sanitizes text for use as a Mermaid identifier or data type
// token.
//
// RULES (applied in order):
//  1. Recognized missing/null spellings ("", "nan", "null", "none",
//     case-insensitive after trimming) become FallbackToken.
//  2. Recognized multi-valued synonyms ("multivalued", "multivalue",
//     "multiocc", case-insensitive) become ArrayToken.
//  3. Every character outside [A-Za-z0-9_] becomes an underscore, runs of
//     underscores collapse to one, and leading/trailing underscores are
//     stripped.
//  4. If nothing survives (the input was all separators), the result is
//     FallbackToken.
//
// Identifier is idempotent: Identifier(Identifier(x)) == Identifier(x).
func Identifier(text string) string {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	if missingTokens[lower] {
		return FallbackToken
	}
	if multivaluedTokens[lower] {
		return ArrayToken
	}

	cleaned := collapseUnsafe(trimmed)
	if cleaned == "" || cleaned == "_" {
		return FallbackToken
	}

	// Cleaning can expose a missing/multivalued spelling (e.g. "Nan_"
	// collapses to "Nan"); re-check so repeated sanitization is stable.
	if missingTokens[strings.ToLower(cleaned)] {
		return FallbackToken
	}
	if multivaluedTokens[strings.ToLower(cleaned)] {
		return ArrayToken
	}
	return cleaned
}

// Filename builds a file-name fragment by sanitizing each part and joining
// them with underscores. Parts that sanitize to nothing are kept as the
// fallback token so the joined name always reflects the number of parts.
func Filename(parts ...string) string {
	sanitized := make([]string, len(parts))
	for i, part := range parts {
		sanitized[i] = Identifier(part)
	}
	return strings.Join(sanitized, "_")
}

// Label sanitizes free text for use inside a quoted Mermaid label, such as
// a relationship verb phrase or a node caption. Quote characters are
// replaced with Mermaid entity escapes so the quoted string can never be
// terminated early; all other characters pass through verbatim.
func Label(text string) string {
	text = strings.ReplaceAll(text, `"`, "#quot;")
	text = strings.ReplaceAll(text, "'", "#39;")
	return text
}

// collapseUnsafe replaces every character outside [A-Za-z0-9_] with an
// underscore, collapses consecutive underscores and strips them from both
// ends.
func collapseUnsafe(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	lastUnderscore := false
	for _, r := range text {
		safe := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if safe {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}

	return strings.Trim(b.String(), "_")
}
