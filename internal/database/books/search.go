package books

import (
	"fmt"
	"strings"

	"github.com/mrlokans/librarian/internal/database"
	"github.com/mrlokans/librarian/internal/entities"
)

const likeEscape = '!'

// SearchByAuthorName retrieves every book whose author's name contains text.
// Case sensitivity follows WithCaseSensitiveSearch on every dialect, and LIKE
// wildcards in text are matched literally. The boolean is false when nothing
// matched.
func (r *Repository) SearchByAuthorName(text string) ([]entities.Book, bool, error) {
	clause, arg := r.authorNameContains(text)

	var rows []Row
	err := r.db.Model(&Row{}).
		Select("books.*").
		Joins("INNER JOIN authors ON authors.id_author = books.author_id").
		Where(clause, arg).
		Order("books.id_book").
		Find(&rows).Error
	if err != nil {
		return nil, false, fmt.Errorf("failed to search books by author name: %w", err)
	}

	return r.classify(rows)
}

// GetBetweenYears retrieves every book published in the inclusive range
// between y1 and y2, ordered by year. Reversed bounds match nothing. The
// boolean is false when nothing matched.
func (r *Repository) GetBetweenYears(y1, y2 int) ([]entities.Book, bool, error) {
	var rows []Row
	err := r.db.Where("publish_year BETWEEN ? AND ?", y1, y2).
		Order("publish_year, id_book").
		Find(&rows).Error
	if err != nil {
		return nil, false, fmt.Errorf("failed to get books between %d and %d: %w", y1, y2, err)
	}

	return r.classify(rows)
}

// classify hydrates the complete result set before deciding between
// "no results" and a non-empty answer.
func (r *Repository) classify(rows []Row) ([]entities.Book, bool, error) {
	books, err := r.hydrate(rows)
	if err != nil {
		return nil, false, err
	}
	return books, len(books) > 0, nil
}

// authorNameContains builds a substring predicate on authors.name. text is
// always passed as a bound parameter. The case-insensitive form is the same
// on every dialect: both sides are folded by the database's LOWER, so a name
// always matches its own exact spelling even where LOWER only folds ASCII
// (SQLite without ICU). The case-sensitive form depends on the dialect.
func (r *Repository) authorNameContains(text string) (string, any) {
	if !r.caseSensitive {
		pattern := "%" + escapeLike(text) + "%"
		return "LOWER(authors.name) LIKE LOWER(?) ESCAPE '!'", pattern
	}

	switch r.db.Dialector.Name() {
	case database.DriverPostgres:
		return "strpos(authors.name, ?) > 0", text
	case database.DriverMySQL:
		return "INSTR(CAST(authors.name AS BINARY), ?) > 0", text
	default:
		// SQLite's instr compares bytes, so it is case-sensitive
		return "instr(authors.name, ?) > 0", text
	}
}

func escapeLike(s string) string {
	var b strings.Builder
	for _, c := range s {
		switch c {
		case likeEscape, '%', '_':
			b.WriteRune(likeEscape)
		}
		b.WriteRune(c)
	}
	return b.String()
}
