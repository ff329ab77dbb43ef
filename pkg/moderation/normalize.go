package moderation

import (
	"strings"

	"golang.org/x/text/width"
)

// NormalizeName folds a candidate name into the form the duplicate guard
// compares on: surrounding whitespace trimmed, inner runs of whitespace
// collapsed, full-width characters folded to half-width, lower-cased.
// "ＩＰＡ", " ipa" and "IPA" all normalize to "ipa".
func NormalizeName(name string) string {
	folded := width.Fold.String(name)
	fields := strings.Fields(folded)

	return strings.ToLower(strings.Join(fields, " "))
}

// Slugify derives the URL slug for a style from its name. Normalized form
// with every run of non-alphanumeric characters replaced by a single hyphen.
func Slugify(name string) string {
	normalized := NormalizeName(name)

	var builder strings.Builder

	lastHyphen := true // suppress a leading hyphen

	for _, r := range normalized {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			builder.WriteRune(r)

			lastHyphen = false
		default:
			if !lastHyphen {
				builder.WriteRune('-')

				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(builder.String(), "-")
}
