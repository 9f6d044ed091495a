package stringsutil

import "strings"

func RemoveEmptyStrings(slice []string) []string {
	var result []string

	for _, s := range slice {
		if s = strings.TrimSpace(s); s != "" {
			result = append(result, s)
		}
	}

	return result
}

// CollapseSpace replaces every run of whitespace, line breaks included, with
// a single space and trims both ends.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// SingleLine replaces line breaks with spaces so the value fits on one line.
func SingleLine(s string) string {
	return lineBreaks.Replace(s)
}
