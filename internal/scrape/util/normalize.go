package util

import "strings"

func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

var corporateSuffixes = map[string]bool{
	"inc": true, "inc.": true,
	"corp": true, "corp.": true,
	"ltd": true, "ltd.": true,
	"llc": true,
}

// DomainSlug turns a company name into a bare domain label:
// "DataDrive Inc" -> "datadrive".
func DomainSlug(company string) string {
	var b strings.Builder
	for _, w := range strings.Fields(strings.ToLower(CleanText(company))) {
		if corporateSuffixes[w] {
			continue
		}
		for _, r := range w {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// PersonSlug joins lower-cased name parts with sep: ("John", "Smith", ".") -> "john.smith".
func PersonSlug(first, last, sep string) string {
	return strings.ToLower(CleanText(first)) + sep + strings.ToLower(CleanText(last))
}
