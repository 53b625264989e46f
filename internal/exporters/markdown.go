package exporters

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mrlokans/devotional/internal/content"
	"github.com/mrlokans/devotional/internal/entities"
	"github.com/mrlokans/devotional/internal/utils"
)

const (
	DefaultExportSubdir = "Devotional"
	bookmarksSubdir     = "Bookmarks"
	studiesSubdir       = "Studies"

	// studyTitleRunes leaves room for the id suffix within the filename limit.
	studyTitleRunes = 180
)

// MarkdownExporter writes bookmarks and studies as Obsidian-friendly
// markdown notes under ExportDir/Subdir.
type MarkdownExporter struct {
	ExportDir string
	Subdir    string
}

func NewMarkdownExporter(exportDir string) *MarkdownExporter {
	return &MarkdownExporter{
		ExportDir: exportDir,
		Subdir:    DefaultExportSubdir,
	}
}

// ensureDirs checks that the export directory exists and creates the
// bookmark and study folders inside it.
func (e *MarkdownExporter) ensureDirs() (string, error) {
	if e.ExportDir == "" {
		return "", fmt.Errorf("export directory is not configured")
	}
	if _, err := os.Stat(e.ExportDir); err != nil {
		return "", fmt.Errorf("export directory unavailable: %w", err)
	}

	root := filepath.Join(e.ExportDir, e.Subdir)
	for _, dir := range []string{bookmarksSubdir, studiesSubdir} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			return "", fmt.Errorf("failed to create export directory: %w", err)
		}
	}
	return root, nil
}

// BookmarkFilename is "<date> <Slot> Prayer.md".
func BookmarkFilename(b entities.BookmarkedPrayer) string {
	return utils.SanitizeFilename(b.Date+" "+b.TimeOfDay.Label()+" Prayer") + ".md"
}

// StudyFilename is the display title plus a short id suffix, since titles
// are not unique.
func StudyFilename(s entities.Study) string {
	title := utils.SanitizeFilename(s.DisplayTitle())
	if runes := []rune(title); len(runes) > studyTitleRunes {
		title = strings.TrimSpace(string(runes[:studyTitleRunes]))
	}
	return fmt.Sprintf("%s (%s).md", title, utils.ShortID(s.ID, 8))
}

func yamlQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

func blockquote(s string) string {
	return "> " + strings.ReplaceAll(s, "\n", "\n> ")
}

// GenerateBookmarkMarkdown renders a bookmarked prayer.
func GenerateBookmarkMarkdown(b entities.BookmarkedPrayer) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "---\n")
	fmt.Fprintf(&builder, "content_type: prayer_bookmark\n")
	fmt.Fprintf(&builder, "date: %s\n", b.Date)
	fmt.Fprintf(&builder, "time_of_day: %s\n", b.TimeOfDay)
	fmt.Fprintf(&builder, "scripture: %s\n", yamlQuote(b.Scripture.Reference))
	fmt.Fprintf(&builder, "bookmarked_at: %s\n", b.BookmarkedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&builder, "tags: [prayer, %s]\n", b.TimeOfDay)
	fmt.Fprintf(&builder, "---\n\n")

	fmt.Fprintf(&builder, "# %s Prayer\n\n", b.TimeOfDay.Label())
	fmt.Fprintf(&builder, "*%s*\n\n", b.Call)
	fmt.Fprintf(&builder, "## Scripture\n\n")
	fmt.Fprintf(&builder, "%s\n>\n> — %s\n\n", blockquote(b.Scripture.Text), b.Scripture.Reference)
	fmt.Fprintf(&builder, "## Reflection\n\n%s\n\n", b.Reflection)
	fmt.Fprintf(&builder, "## Pray\n\n")
	for _, p := range b.Prompts {
		fmt.Fprintf(&builder, "- %s\n", p)
	}
	fmt.Fprintf(&builder, "\n## Benediction\n\n%s\n", b.Benediction)

	return builder.String()
}

// GenerateStudyMarkdown renders a study with one section per catalog step.
func GenerateStudyMarkdown(s entities.Study) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "---\n")
	fmt.Fprintf(&builder, "content_type: bible_study\n")
	fmt.Fprintf(&builder, "study_id: %s\n", s.ID)
	fmt.Fprintf(&builder, "title: %s\n", yamlQuote(s.DisplayTitle()))
	fmt.Fprintf(&builder, "passage: %s\n", yamlQuote(s.PassageReference))
	fmt.Fprintf(&builder, "created_at: %s\n", s.CreatedAt.Format("2006-01-02"))
	fmt.Fprintf(&builder, "updated_at: %s\n", s.UpdatedAt.Format("2006-01-02"))
	fmt.Fprintf(&builder, "progress: %d%%\n", s.ProgressPercent())
	fmt.Fprintf(&builder, "tags: [bible-study]\n")
	fmt.Fprintf(&builder, "---\n\n")

	fmt.Fprintf(&builder, "# %s\n\n", s.DisplayTitle())

	for _, step := range content.Steps() {
		data, _ := s.Step(step.ID)
		check := " "
		if data.Completed {
			check = "x"
		}
		fmt.Fprintf(&builder, "## Step %d: %s\n\n", step.ID, step.Name)
		fmt.Fprintf(&builder, "- [%s] %s\n\n", check, step.Description)
		if data.Notes != "" {
			fmt.Fprintf(&builder, "%s\n\n", data.Notes)
		} else {
			fmt.Fprintf(&builder, "_No notes yet_\n\n")
		}
	}

	return builder.String()
}

func writeNote(path, body string) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(body), 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// ExportStudy writes a single study note and returns its path.
func (e *MarkdownExporter) ExportStudy(study entities.Study) (string, error) {
	root, err := e.ensureDirs()
	if err != nil {
		return "", err
	}
	path := filepath.Join(root, studiesSubdir, StudyFilename(study))
	if err := writeNote(path, GenerateStudyMarkdown(study)); err != nil {
		return "", fmt.Errorf("failed to write study %s: %w", study.ID, err)
	}
	return path, nil
}

// Export writes every bookmark and study. A failed note is logged and
// counted; the run continues with the rest. Notes left over from removed
// bookmarks and deleted or renamed studies are removed afterwards.
func (e *MarkdownExporter) Export(bookmarks []entities.BookmarkedPrayer, studies []entities.Study) (ExportResult, error) {
	root, err := e.ensureDirs()
	if err != nil {
		return ExportResult{}, err
	}
	result := ExportResult{OutputDir: root}
	keepBookmarks := make(map[string]bool, len(bookmarks))
	keepStudies := make(map[string]bool, len(studies))

	for _, b := range bookmarks {
		name := BookmarkFilename(b)
		keepBookmarks[name] = true
		path := filepath.Join(root, bookmarksSubdir, name)
		if err := writeNote(path, GenerateBookmarkMarkdown(b)); err != nil {
			log.Printf("Failed to export bookmark %s: %v", b.ID, err)
			result.BookmarksFailed++
			continue
		}
		result.BookmarksProcessed++
	}

	for _, s := range studies {
		name := StudyFilename(s)
		keepStudies[name] = true
		path := filepath.Join(root, studiesSubdir, name)
		if err := writeNote(path, GenerateStudyMarkdown(s)); err != nil {
			log.Printf("Failed to export study %s: %v", s.ID, err)
			result.StudiesFailed++
			continue
		}
		result.StudiesProcessed++
	}

	result.NotesRemoved = removeStaleNotes(filepath.Join(root, bookmarksSubdir), keepBookmarks) +
		removeStaleNotes(filepath.Join(root, studiesSubdir), keepStudies)

	log.Printf("Export completed to %s: bookmarks %d ok/%d failed, studies %d ok/%d failed, %d stale notes removed",
		root, result.BookmarksProcessed, result.BookmarksFailed, result.StudiesProcessed, result.StudiesFailed, result.NotesRemoved)

	return result, nil
}

// removeStaleNotes deletes markdown notes in dir that are not in keep and
// returns how many were removed. Other files are left alone.
func removeStaleNotes(dir string, keep map[string]bool) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("Failed to list %s: %v", dir, err)
		return 0
	}
	removed := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".md" || keep[name] {
			continue
		}
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			log.Printf("Failed to remove stale note %s: %v", name, err)
			continue
		}
		removed++
	}
	return removed
}

var _ Exporter = (*MarkdownExporter)(nil)
