package llm

import "strings"

// CleanJSONBlock strips markdown code fences and any text before the first
// JSON object or array.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// drop a language tag such as "json" on the fence line
		if idx := strings.IndexByte(text, '\n'); idx >= 0 {
			if tag := text[:idx]; !strings.ContainsAny(tag, " {[") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	if start := strings.IndexAny(text, "{["); start > 0 {
		text = text[start:]
	}
	return text
}
