package googlebooks

import (
	"strconv"
	"strings"
	"time"

	bookModel "github.com/guipadovan/library-manager/internals/features/library/books/model"

	"gorm.io/datatypes"
)

type volumesResponse struct {
	TotalItems int          `json:"totalItems"`
	Items      []volumeItem `json:"items"`
}

type volumeItem struct {
	ID         string     `json:"id"`
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type industryIdentifier struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

type volumeInfo struct {
	Title               string               `json:"title"`
	Authors             []string             `json:"authors"`
	IndustryIdentifiers []industryIdentifier `json:"industryIdentifiers"`
	PublishedDate       string               `json:"publishedDate"`
	Categories          []string             `json:"categories"`
}

// mapVolumes keeps only volumes with title, first author, an identifier,
// a parseable published date and a first category.
func mapVolumes(items []volumeItem) []bookModel.BookModel {
	out := make([]bookModel.BookModel, 0, len(items))
	for _, it := range items {
		b, ok := mapVolume(it.VolumeInfo)
		if !ok {
			continue
		}
		out = append(out, b)
	}
	return out
}

func mapVolume(v volumeInfo) (bookModel.BookModel, bool) {
	title := strings.TrimSpace(v.Title)
	author := firstNonBlank(v.Authors)
	category := firstNonBlank(v.Categories)
	isbn := pickIdentifier(v.IndustryIdentifiers)
	published, ok := ParsePublishedDate(v.PublishedDate)

	if title == "" || author == "" || isbn == "" || category == "" || !ok {
		return bookModel.BookModel{}, false
	}
	return bookModel.BookModel{
		BooksTitle:           title,
		BooksAuthor:          author,
		BooksISBN:            isbn,
		BooksPublicationDate: datatypes.Date(published),
		BooksCategory:        category,
	}, true
}

func firstNonBlank(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return strings.TrimSpace(list[0])
}

// pickIdentifier prefers ISBN_13 and otherwise takes the first identifier.
func pickIdentifier(ids []industryIdentifier) string {
	for _, id := range ids {
		if id.Type == "ISBN_13" && strings.TrimSpace(id.Identifier) != "" {
			return strings.TrimSpace(id.Identifier)
		}
	}
	if len(ids) == 0 {
		return ""
	}
	return strings.TrimSpace(ids[0].Identifier)
}

// ParsePublishedDate accepts "YYYY-MM-DD", "YYYY-MM" (day 1) and "YYYY" (January 1).
// Anything else is reported as absent.
func ParsePublishedDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01-02", "2006-01"} {
		if len(s) != len(layout) {
			continue
		}
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if len(s) == 4 {
		if y, err := strconv.Atoi(s); err == nil && y > 0 {
			return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
