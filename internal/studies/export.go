package studies

import (
	"strconv"
	"strings"

	"github.com/mrlokans/devotional/internal/content"
	"github.com/mrlokans/devotional/internal/entities"
)

const (
	exportHeading    = "GOSPEL-CENTERED BIBLE STUDY"
	exportSignature  = "Shared from GCBS Leader App"
	exportTagline    = `"The gospel changes everything."`
	noNotesText      = "[No notes yet]"
	exportRuleLength = 40

	// ExportDateLayout matches a US short date, e.g. 3/1/2024.
	ExportDateLayout = "1/2/2006"
)

// ExportStudy renders the study as shareable plain text, or "" if the id is
// unknown.
func (s *Store) ExportStudy(id string) string {
	study, ok := s.GetStudy(id)
	if !ok {
		return ""
	}
	return FormatStudy(study)
}

// FormatStudy renders a study: a title block, one section per catalog step
// in step order, and a closing signature.
func FormatStudy(study entities.Study) string {
	heavy := strings.Repeat("=", exportRuleLength)
	light := strings.Repeat("─", exportRuleLength)

	var b strings.Builder
	b.WriteString(exportHeading + "\n")
	b.WriteString(heavy + "\n\n")
	b.WriteString("📖 " + study.DisplayTitle() + "\n")
	b.WriteString("Created: " + study.CreatedAt.Local().Format(ExportDateLayout) + "\n\n")

	for _, step := range content.Steps() {
		data, _ := study.Step(step.ID)

		b.WriteString(light + "\n")
		b.WriteString("STEP " + strconv.Itoa(step.ID) + ": " + strings.ToUpper(step.Name) + "\n")
		b.WriteString(step.Description + "\n\n")
		if data.Notes != "" {
			b.WriteString(data.Notes + "\n\n")
		} else {
			b.WriteString(noNotesText + "\n\n")
		}
	}

	b.WriteString(heavy + "\n")
	b.WriteString(exportSignature + "\n")
	b.WriteString(exportTagline)
	return b.String()
}
