package yaml

import "strings"

// NormalizeYAMLIndentation strips the indentation which is common to every
// non-blank line of the given YAML, so that YAML embedded in indented Go raw
// string literals can be parsed.
func NormalizeYAMLIndentation(rawContent string) string {
	lines := strings.Split(rawContent, "\n")

	commonIndent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if commonIndent == -1 || indent < commonIndent {
			commonIndent = indent
		}
	}

	var normalized []string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		// Tabs are not valid YAML indentation; nested levels use two spaces.
		line = line[commonIndent:]
		trimmed := strings.TrimLeft(line, "\t")
		tabs := len(line) - len(trimmed)
		normalized = append(normalized, strings.Repeat("  ", tabs)+trimmed)
	}

	return strings.Join(normalized, "\n")
}
