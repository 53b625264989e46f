package exporters

import (
	"fmt"

	"github.com/mrlokans/devotional/internal/entities"
)

type BookmarkLister interface {
	List() []entities.BookmarkedPrayer
}

type StudyReader interface {
	List() []entities.Study
	GetStudy(id string) (entities.Study, bool)
}

// DirResolver returns the current export directory, which may change at
// runtime through settings.
type DirResolver func() string

// StoreExporter exports straight from the bookmark and study stores.
type StoreExporter struct {
	bookmarks BookmarkLister
	studies   StudyReader
	dir       DirResolver
}

func NewStoreExporter(bookmarks BookmarkLister, studies StudyReader, dir DirResolver) *StoreExporter {
	return &StoreExporter{
		bookmarks: bookmarks,
		studies:   studies,
		dir:       dir,
	}
}

// ExportAll writes every bookmark and study to the current export directory.
func (e *StoreExporter) ExportAll() (ExportResult, error) {
	return NewMarkdownExporter(e.dir()).Export(e.bookmarks.List(), e.studies.List())
}

// ExportStudy writes one study and returns the note path.
func (e *StoreExporter) ExportStudy(id string) (string, error) {
	study, ok := e.studies.GetStudy(id)
	if !ok {
		return "", fmt.Errorf("study %s not found", id)
	}
	return NewMarkdownExporter(e.dir()).ExportStudy(study)
}
