package classify

import (
	"strings"

	"swinglab/pkg/contracts/domain"
)

// maxDebugHeaders caps the raw headers surfaced for operator diagnosis of
// unknown files.
const maxDebugHeaders = 10

// requiredWeight ranks required-token hits above optional hits when scoring
// a signature match.
const requiredWeight = 2

type candidate struct {
	sig           signature
	requiredFound int
	optionalFound int
}

func (c candidate) score() int {
	return requiredWeight*c.requiredFound + c.optionalFound
}

// Classify decides which known schema the header row matches. It never
// returns an error: a file that matches nothing comes back as SchemaUnknown
// with low confidence and a sample of its headers.
//
// The filename hint is a secondary signal only, consulted when more than one
// signature's required set is satisfied.
func Classify(headers []string, filenameHint string) domain.DetectionResult {
	normalized := make([]string, 0, len(headers))
	originals := make([]string, 0, len(headers))
	for _, h := range headers {
		n := normalizeHeader(h)
		if n == "" {
			continue
		}
		normalized = append(normalized, n)
		originals = append(originals, strings.TrimSpace(h))
	}

	var full []candidate
	for _, sig := range signatures {
		c := candidate{sig: sig}
		for _, tok := range sig.required {
			if headerIndex(normalized, tok) >= 0 {
				c.requiredFound++
			}
		}
		for _, tok := range sig.optional {
			if headerIndex(normalized, tok) >= 0 {
				c.optionalFound++
			}
		}
		if len(sig.required) > 0 && c.requiredFound == len(sig.required) {
			full = append(full, c)
		}
	}

	if len(full) == 0 {
		return unknownResult(headers)
	}

	winner := full[0]
	confidence := domain.ConfidenceHigh

	if len(full) > 1 {
		confidence = domain.ConfidenceMedium
		if hinted, ok := resolveByFilename(full, filenameHint); ok {
			winner = hinted
		} else {
			// No disambiguating hint: prefer the richer optional match,
			// falling back to table order for determinism.
			for _, c := range full[1:] {
				if c.optionalFound > winner.optionalFound {
					winner = c
				}
			}
		}
	}

	return domain.DetectionResult{
		SchemaKind: winner.sig.kind,
		Brand:      winner.sig.brand,
		Confidence: confidence,
		ColumnMap:  buildColumnMap(winner.sig, normalized, originals),
	}
}

// resolveByFilename returns the single full match whose filename tokens
// appear in the hint, if exactly one does.
func resolveByFilename(full []candidate, hint string) (candidate, bool) {
	if hint == "" {
		return candidate{}, false
	}
	lower := strings.ToLower(hint)

	var hit candidate
	hits := 0
	for _, c := range full {
		for _, tok := range c.sig.filenameTokens {
			if strings.Contains(lower, tok) {
				hit = c
				hits++
				break
			}
		}
	}
	if hits == 1 {
		return hit, true
	}
	return candidate{}, false
}

func unknownResult(headers []string) domain.DetectionResult {
	debug := make([]string, 0, maxDebugHeaders)
	for _, h := range headers {
		if len(debug) == maxDebugHeaders {
			break
		}
		debug = append(debug, strings.TrimSpace(h))
	}
	return domain.DetectionResult{
		SchemaKind:   domain.SchemaUnknown,
		Confidence:   domain.ConfidenceLow,
		DebugHeaders: debug,
	}
}

// buildColumnMap resolves each canonical field of the winning signature to
// the original header it was found under.
func buildColumnMap(sig signature, normalized, originals []string) map[string]string {
	columnMap := make(map[string]string, len(sig.fields))
	for field, tokens := range sig.fields {
		for _, tok := range tokens {
			if idx := headerIndex(normalized, tok); idx >= 0 {
				columnMap[field] = originals[idx]
				break
			}
		}
	}
	return columnMap
}

// headerIndex finds the first normalized header matching the token.
// '='-prefixed tokens require a whole-header match; all others match as
// substrings.
func headerIndex(normalized []string, token string) int {
	if exact, ok := strings.CutPrefix(token, "="); ok {
		for i, h := range normalized {
			if h == exact {
				return i
			}
		}
		return -1
	}
	for i, h := range normalized {
		if strings.Contains(h, token) {
			return i
		}
	}
	return -1
}

// normalizeHeader lowercases a header and strips units and separators so
// vendor spellings like "Exit Velo (mph)", "exit_velo", and "ExitVelo" all
// normalize identically.
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))

	// Drop a parenthesized unit suffix.
	if open := strings.Index(h, "("); open >= 0 {
		if end := strings.Index(h[open:], ")"); end >= 0 {
			h = h[:open] + h[open+end+1:]
		} else {
			h = h[:open]
		}
	}

	var b strings.Builder
	for _, r := range h {
		switch r {
		case ' ', '\t', '_', '-', '.', '/':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
