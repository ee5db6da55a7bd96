package services

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

// codeFence matches a ``` marker, optionally tagged with a language such as
// json, that opens or closes a line. Backticks inside a line are left alone.
var codeFence = regexp.MustCompile("(?m)^[ \\t]*```[A-Za-z0-9_+-]*|```[A-Za-z0-9_+-]*[ \\t]*$")

// ExtractJSON decodes model output into T. It tries the whole text with code
// fences removed, then every balanced top-level {...} or [...] span in order,
// and returns fallback when nothing decodes. It never fails.
func ExtractJSON[T any](raw string, fallback T) T {
	cleaned := stripCodeFences(raw)
	if cleaned == "" {
		return fallback
	}

	if value, ok := decodeJSON[T](cleaned); ok {
		return value
	}

	for _, span := range balancedSpans(cleaned) {
		if value, ok := decodeJSON[T](span); ok {
			return value
		}
	}

	return fallback
}

func stripCodeFences(text string) string {
	return strings.TrimSpace(codeFence.ReplaceAllString(strings.TrimSpace(text), ""))
}

func decodeJSON[T any](text string) (T, bool) {
	var value T
	data := []byte(text)
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return value, false
	}
	if err := json.Unmarshal(data, &value); err != nil {
		var zero T
		return zero, false
	}
	return value, true
}

// balancedSpans returns each top-level object or array in text, skipping
// openers that are never closed.
func balancedSpans(text string) []string {
	var spans []string
	for i := 0; i < len(text); {
		if text[i] != '{' && text[i] != '[' {
			i++
			continue
		}

		end := matchingClose(text, i)
		if end < 0 {
			i++
			continue
		}

		spans = append(spans, text[i:end+1])
		i = end + 1
	}
	return spans
}

// matchingClose returns the index closing the bracket at start, or -1.
// Brackets inside JSON strings are ignored.
func matchingClose(text string, start int) int {
	var stack []byte
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		ch := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			stack = append(stack, '}')
		case '[':
			stack = append(stack, ']')
		case '}', ']':
			if len(stack) == 0 || stack[len(stack)-1] != ch {
				return -1
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return i
			}
		}
	}

	return -1
}
