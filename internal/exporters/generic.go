package exporters

import "github.com/mrlokans/devotional/internal/entities"

type Exporter interface {
	Export(bookmarks []entities.BookmarkedPrayer, studies []entities.Study) (ExportResult, error)
}

type ExportResult struct {
	OutputDir          string `json:"output_dir"`
	BookmarksProcessed int    `json:"bookmarks_processed"`
	StudiesProcessed   int    `json:"studies_processed"`
	BookmarksFailed    int    `json:"bookmarks_failed"`
	StudiesFailed      int    `json:"studies_failed"`
	NotesRemoved       int    `json:"notes_removed"`
}
