// Package render prints authors and books as plain-text tables.
package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mrlokans/librarian/internal/entities"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.Debug)
}

// Authors writes one row per author. Nothing is written for an empty slice.
func Authors(w io.Writer, authors []entities.Author) error {
	if len(authors) == 0 {
		return nil
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tBIRTH YEAR")
	for _, a := range authors {
		fmt.Fprintf(tw, "%d\t%s\t%d\n", a.ID.Int64(), a.Name, a.BirthYear)
	}
	return tw.Flush()
}

func Author(w io.Writer, author entities.Author) error {
	return Authors(w, []entities.Author{author})
}

// Books writes one row per book with its author's name. Nothing is written
// for an empty slice.
func Books(w io.Writer, books []entities.Book) error {
	if len(books) == 0 {
		return nil
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTITLE\tPUBLISH YEAR\tPAGES COUNT\tAUTHOR")
	for _, b := range books {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\n",
			b.ID.Int64(), b.Title, b.PublishYear, b.PagesCount, b.Author.Name)
	}
	return tw.Flush()
}

func Book(w io.Writer, book entities.Book) error {
	return Books(w, []entities.Book{book})
}
