package comment

import "strings"

// ExtractDocsBeforeLine collects the documentation block that ends directly
// above defLine (0-indexed row of the definition). Scanning runs backwards
// and accepts line comments, block comment bodies and their delimiters;
// blank lines are skipped until the first comment line is seen and terminate
// the block afterwards. Returns "" when no docs precede the line.
func ExtractDocsBeforeLine(source string, defLine uint) string {
	if defLine == 0 {
		return ""
	}

	lines := splitLines(source)
	var docLines []string
	inBlock := false

scan:
	for i := int(defLine) - 1; i >= 0; i-- {
		if i >= len(lines) {
			return ""
		}
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		switch {
		case inBlock:
			docLines = append(docLines, line)
			if strings.Contains(trimmed, "/*") {
				inBlock = false
			}
		case strings.HasSuffix(trimmed, "*/"):
			// Reading backwards, the closer comes first.
			inBlock = true
			docLines = append(docLines, line)
		case strings.HasPrefix(trimmed, "//"):
			docLines = append(docLines, line)
		case strings.HasPrefix(trimmed, "*") && !strings.HasPrefix(trimmed, "*/"):
			// Interior line of a JSDoc-style block.
			docLines = append(docLines, line)
		case trimmed == "":
			if len(docLines) > 0 {
				break scan
			}
		default:
			break scan
		}
	}

	if len(docLines) == 0 {
		return ""
	}
	for i, j := 0, len(docLines)-1; i < j; i, j = i+1, j-1 {
		docLines[i], docLines[j] = docLines[j], docLines[i]
	}
	return strings.Join(docLines, "\n")
}
