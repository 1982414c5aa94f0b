package utils

import "strings"

// ExtractJSONDocument pulls the outermost JSON object or array out of a raw
// model response, tolerating code fences and surrounding prose. Returns ""
// when no balanced document is found.
func ExtractJSONDocument(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	objStart := strings.Index(response, "{")
	arrStart := strings.Index(response, "[")

	if objStart != -1 && (arrStart == -1 || objStart < arrStart) {
		if end := findMatching(response, objStart, '{', '}'); end != -1 {
			return strings.TrimSpace(response[objStart : end+1])
		}
	} else if arrStart != -1 {
		if end := findMatching(response, arrStart, '[', ']'); end != -1 {
			return strings.TrimSpace(response[arrStart : end+1])
		}
	}

	return ""
}

// findMatching scans for the closing delimiter matching the opener at start,
// skipping string literals and escapes.
func findMatching(s string, start int, open, close byte) int {
	if start >= len(s) || s[start] != open {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}

		if char == '\\' && inString {
			escaped = true
			continue
		}

		if char == '"' {
			inString = !inString
			continue
		}

		if inString {
			continue
		}

		switch char {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
