package llm

import "strings"

// CleanJSONBlock normalizes a model response down to its JSON payload. Models
// decorate JSON three ways even when told not to: markdown code fences,
// conversational preamble before the payload, and trailing commentary after
// it. The first balanced JSON object or array found wins; if none is found
// the trimmed input is returned as-is and left for the JSON parser to reject.
func CleanJSONBlock(text string) string {
	text = stripCodeFence(strings.TrimSpace(text))

	objStart := strings.IndexByte(text, '{')
	arrStart := strings.IndexByte(text, '[')

	start := objStart
	extract := extractJSONObject
	if objStart < 0 || (arrStart >= 0 && arrStart < objStart) {
		start = arrStart
		extract = extractJSONArray
	}
	if start < 0 {
		return text
	}

	if payload := extract(text[start:]); payload != "" {
		return payload
	}
	return text
}

// stripCodeFence removes a surrounding markdown code fence, including a
// leading language tag line such as "json" or "javascript".
func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}

	body := strings.TrimPrefix(text, "```")
	if idx := strings.IndexByte(body, '\n'); idx >= 0 {
		if isLanguageTag(body[:idx]) {
			body = body[idx+1:]
		}
	}
	if idx := strings.LastIndex(body, "```"); idx >= 0 {
		body = body[:idx]
	}
	return strings.TrimSpace(body)
}

// isLanguageTag reports whether a fence's first line is a language marker
// rather than payload: short, no spaces, and not already JSON.
func isLanguageTag(line string) bool {
	return len(line) < 20 && !strings.ContainsAny(line, " {")
}

// extractJSONObject returns the balanced JSON object at the start of text, or
// "" when text does not begin with one.
func extractJSONObject(text string) string {
	return extractBalanced(text, '{', '}')
}

// extractJSONArray returns the balanced JSON array at the start of text, or
// "" when text does not begin with one.
func extractJSONArray(text string) string {
	return extractBalanced(text, '[', ']')
}

// extractBalanced scans for the closing delimiter matching the opener at
// position zero. Delimiters inside string literals do not count toward the
// balance, and backslash escapes inside strings are honored.
func extractBalanced(text string, opener, closer byte) string {
	if len(text) == 0 || text[0] != opener {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case escaped:
			escaped = false
		case ch == '\\':
			escaped = true
		case ch == '"':
			inString = !inString
		case inString:
		case ch == opener:
			depth++
		case ch == closer:
			depth--
			if depth == 0 {
				return text[:i+1]
			}
		}
	}
	return ""
}
