package chat

import (
	"fmt"
	"strings"

	"webrag-api/internal/domain/entity"
)

const sectionSeparator = "\n\n---\n\n"

// assembleContext filters the score-sorted matches down to the ones worth
// showing the model and renders them as numbered sections. Returns the
// empty string and an empty map when nothing clears the threshold.
func (uc *ChatUsecase) assembleContext(matches []entity.Match) (string, entity.SectionMap) {
	sections := entity.SectionMap{}

	var retained []entity.Match
	for _, match := range matches {
		if match.Score > uc.threshold {
			retained = append(retained, match)
		}
		if len(retained) == uc.maxSections {
			break
		}
	}

	if len(retained) == 0 {
		return "", sections
	}

	parts := make([]string, 0, len(retained))
	for i, match := range retained {
		content := match.Metadata.Content
		if content == "" {
			content = "İçerik bulunamadı"
		}

		number := i + 1
		parts = append(parts, fmt.Sprintf("BÖLÜM %d:\n%s", number, content))
		sections[number] = sourceLabel(match)
	}

	return strings.Join(parts, sectionSeparator), sections
}

// sourceLabel builds a human-readable label for a match. Total: every
// match yields a label, whatever its metadata looks like.
func sourceLabel(match entity.Match) string {
	meta := match.Metadata
	if meta.URL != "" {
		title := meta.Title
		if title == "" {
			title = "Web Sitesi"
		}
		return fmt.Sprintf("%s (%s)", title, meta.URL)
	}
	if meta.FileName != "" {
		if meta.FileType != "" {
			return fmt.Sprintf("%s (%s)", meta.FileName, strings.ToUpper(meta.FileType))
		}
		return meta.FileName
	}

	id := match.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("Web Sitesi (%s...)", id)
}
