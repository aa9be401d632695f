package chat

import (
	"regexp"
	"strconv"
	"strings"

	"webrag-api/internal/domain/entity"
)

var citationPattern = regexp.MustCompile(`KULLANILAN BÖLÜMLER:\s*([0-9,\s]+)`)

// extractCitations pulls the "used sections" footer out of a raw model
// answer and resolves the section numbers back to source labels. A missing
// or malformed footer is never an error: the answer comes back unchanged
// with no sources. Unknown section numbers are dropped, duplicates keep
// their first position.
func extractCitations(rawAnswer string, sections entity.SectionMap) (string, []string) {
	sources := []string{}

	groups := citationPattern.FindStringSubmatch(rawAnswer)
	if groups == nil {
		return rawAnswer, sources
	}

	parsed := false
	seen := map[string]bool{}
	for _, token := range strings.Split(groups[1], ",") {
		number, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil {
			continue
		}
		parsed = true
		// de-dup on the resolved label: distinct sections often share one
		// source when several chunks of a page are retained
		label, ok := sections[number]
		if !ok || seen[label] {
			continue
		}
		seen[label] = true
		sources = append(sources, label)
	}

	// a footer with no parseable numbers is left in place
	if !parsed {
		return rawAnswer, sources
	}

	clean := rawAnswer
	if idx := strings.Index(rawAnswer, "\n\n"+citationMarker); idx > -1 {
		clean = rawAnswer[:idx]
	} else if idx := strings.Index(rawAnswer, citationMarker); idx > -1 {
		clean = rawAnswer[:idx]
	}

	return strings.TrimSpace(clean), sources
}
