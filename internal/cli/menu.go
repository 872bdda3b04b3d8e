package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mrlokans/librarian/internal/database"
	"github.com/mrlokans/librarian/internal/entities"
	"github.com/mrlokans/librarian/internal/render"
	"github.com/mrlokans/librarian/internal/services"
)

var (
	errEndOfInput   = errors.New("end of input")
	errInvalidInput = errors.New("invalid input")
)

type menuAction struct {
	key   string
	label string
	run   func() error
}

// Menu is the interactive console loop over the author and book stores.
type Menu struct {
	in      *bufio.Scanner
	out     io.Writer
	authors services.AuthorStore
	books   services.BookStore
	policy  database.DeletePolicy
	actions []menuAction
}

func NewMenu(in io.Reader, out io.Writer, authors services.AuthorStore, books services.BookStore, policy database.DeletePolicy) *Menu {
	m := &Menu{
		in:      bufio.NewScanner(in),
		out:     out,
		authors: authors,
		books:   books,
		policy:  policy,
	}
	m.actions = []menuAction{
		{"1", "Add a new author", m.addAuthor},
		{"2", "Add a new book", m.addBook},
		{"3", "List all authors", m.listAuthors},
		{"4", "List all books", m.listBooks},
		{"5", "Show an author by id", m.showAuthor},
		{"6", "Show a book by id", m.showBook},
		{"7", "Delete a book by id", m.deleteBook},
		{"8", "Delete an author by id", m.deleteAuthor},
		{"9", "Search books by author name", m.searchByAuthor},
		{"10", "Find books published between two years", m.booksBetweenYears},
		{"11", "Drop the books table", m.dropBooks},
		{"12", "Drop the authors table", m.dropAuthors},
	}
	return m
}

// Run initializes both tables and serves menu actions until the user quits
// or input ends. Errors of a single action are printed and the loop goes on.
func (m *Menu) Run() error {
	// Initialization failures are already logged; operations fail on their own.
	_ = m.authors.Initialize()
	_ = m.books.Initialize()

	for {
		m.printMenu()
		choice, err := m.ask("")
		if errors.Is(err, errEndOfInput) {
			return nil
		}
		if err != nil {
			return err
		}

		if strings.EqualFold(choice, "q") {
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		}

		action, ok := m.lookup(choice)
		if !ok {
			fmt.Fprintln(m.out, "Unknown menu item, please choose again.")
			continue
		}

		err = action.run()
		switch {
		case err == nil:
		case errors.Is(err, errEndOfInput):
			return nil
		case errors.Is(err, errInvalidInput):
			fmt.Fprintf(m.out, "%v. Please try again.\n", err)
		default:
			log.Error().Err(err).Str("action", action.label).Msg("Menu action failed")
			fmt.Fprintf(m.out, "Error: %v\n", err)
		}
	}
}

func (m *Menu) lookup(key string) (menuAction, bool) {
	for _, a := range m.actions {
		if a.key == key {
			return a, true
		}
	}
	return menuAction{}, false
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	for _, a := range m.actions {
		fmt.Fprintf(m.out, "%2s. %s\n", a.key, a.label)
	}
	fmt.Fprintln(m.out, " q. Quit")
}

// ask prints prompt (if any) and reads one trimmed line.
func (m *Menu) ask(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprintln(m.out, prompt)
	}
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", errEndOfInput
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) askInt(prompt string) (int, error) {
	s, err := m.ask(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", errInvalidInput, s)
	}
	return n, nil
}

func (m *Menu) askID(prompt string) (int64, error) {
	n, err := m.askInt(prompt)
	return int64(n), err
}

func (m *Menu) readAuthor() (entities.Author, error) {
	name, err := m.ask("Enter the author's name (2 to 200 characters):")
	if err != nil {
		return entities.Author{}, err
	}
	birthYear, err := m.askInt("Enter the author's birth year:")
	if err != nil {
		return entities.Author{}, err
	}

	author := entities.NewAuthor(name, birthYear)
	if err := author.Validate(); err != nil {
		return entities.Author{}, fmt.Errorf("%w: %v", errInvalidInput, err)
	}
	return author, nil
}

func (m *Menu) addAuthor() error {
	author, err := m.readAuthor()
	if err != nil {
		return err
	}
	if err := m.authors.Save(&author); err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Author saved with id %s.\n", author.ID)
	return nil
}

func (m *Menu) addBook() error {
	title, err := m.ask("Enter the book's title (2 to 200 characters):")
	if err != nil {
		return err
	}
	publishYear, err := m.askInt("Enter the publish year:")
	if err != nil {
		return err
	}
	pagesCount, err := m.askInt("Enter the pages count:")
	if err != nil {
		return err
	}

	author, err := m.chooseAuthor()
	if err != nil {
		return err
	}

	book := entities.NewBook(title, publishYear, pagesCount, author)
	if err := book.Validate(); err != nil {
		return fmt.Errorf("%w: %v", errInvalidInput, err)
	}
	if err := m.books.Save(&book); err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Book saved with id %s (author id %s).\n", book.ID, book.Author.ID)
	return nil
}

// chooseAuthor picks an existing author by id, or reads a new one when the
// answer is empty.
func (m *Menu) chooseAuthor() (entities.Author, error) {
	answer, err := m.ask("Enter an existing author id, or leave empty to add a new author:")
	if err != nil {
		return entities.Author{}, err
	}
	if answer == "" {
		return m.readAuthor()
	}

	id, err := strconv.ParseInt(answer, 10, 64)
	if err != nil {
		return entities.Author{}, fmt.Errorf("%w: %q is not a number", errInvalidInput, answer)
	}
	author, found, err := m.authors.GetByID(id)
	if err != nil {
		return entities.Author{}, err
	}
	if !found {
		return entities.Author{}, fmt.Errorf("%w: no author with id %d", errInvalidInput, id)
	}
	return author, nil
}

func (m *Menu) listAuthors() error {
	authors, err := m.authors.GetAll()
	if err != nil {
		return err
	}
	if len(authors) == 0 {
		fmt.Fprintln(m.out, "No authors yet.")
		return nil
	}
	return render.Authors(m.out, authors)
}

func (m *Menu) listBooks() error {
	books, err := m.books.GetAll()
	if err != nil {
		return err
	}
	if len(books) == 0 {
		fmt.Fprintln(m.out, "No books yet.")
		return nil
	}
	return render.Books(m.out, books)
}

func (m *Menu) showAuthor() error {
	id, err := m.askID("Enter the author id:")
	if err != nil {
		return err
	}
	author, found, err := m.authors.GetByID(id)
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintln(m.out, "There is no author with this id.")
		return nil
	}
	return render.Author(m.out, author)
}

func (m *Menu) showBook() error {
	id, err := m.askID("Enter the book id:")
	if err != nil {
		return err
	}
	book, found, err := m.books.GetByID(id)
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintln(m.out, "There is no book with this id.")
		return nil
	}
	return render.Book(m.out, book)
}

func (m *Menu) deleteBook() error {
	id, err := m.askID("Enter the id of the book to delete:")
	if err != nil {
		return err
	}
	result, err := m.books.DeleteByID(id)
	if err != nil {
		return err
	}
	switch result.Status {
	case database.DeleteStatusNotFound:
		fmt.Fprintln(m.out, "There is no book with this id.")
	default:
		fmt.Fprintln(m.out, "Book deleted.")
	}
	return nil
}

func (m *Menu) deleteAuthor() error {
	id, err := m.askID("Enter the id of the author to delete:")
	if err != nil {
		return err
	}
	result, err := m.books.DeleteAuthor(id, m.policy)
	if err != nil {
		return err
	}
	switch result.Status {
	case database.DeleteStatusNotFound:
		fmt.Fprintln(m.out, "There is no author with this id.")
	case database.DeleteStatusBlocked:
		fmt.Fprintf(m.out, "The author still has %d book(s); delete them first.\n", result.Dependents)
	default:
		if result.Dependents > 0 {
			fmt.Fprintf(m.out, "Author deleted together with %d book(s).\n", result.Dependents)
		} else {
			fmt.Fprintln(m.out, "Author deleted.")
		}
	}
	return nil
}

func (m *Menu) searchByAuthor() error {
	text, err := m.ask("Enter part of the author's name:")
	if err != nil {
		return err
	}
	books, found, err := m.books.SearchByAuthorName(text)
	if err != nil {
		return err
	}
	return m.printFound(books, found)
}

func (m *Menu) booksBetweenYears() error {
	from, err := m.askInt("Enter the first year of the period:")
	if err != nil {
		return err
	}
	to, err := m.askInt("Enter the last year of the period:")
	if err != nil {
		return err
	}
	books, found, err := m.books.GetBetweenYears(from, to)
	if err != nil {
		return err
	}
	return m.printFound(books, found)
}

func (m *Menu) printFound(books []entities.Book, found bool) error {
	if !found {
		fmt.Fprintln(m.out, "No books match the search.")
		return nil
	}
	fmt.Fprintln(m.out, "Books found:")
	return render.Books(m.out, books)
}

func (m *Menu) dropBooks() error {
	if err := m.books.DeleteTable(); err != nil {
		fmt.Fprintln(m.out, "Could not drop the books table.")
		return nil
	}
	fmt.Fprintln(m.out, "Books table dropped.")
	return nil
}

func (m *Menu) dropAuthors() error {
	if err := m.authors.DeleteTable(); err != nil {
		fmt.Fprintln(m.out, "Could not drop the authors table.")
		return nil
	}
	fmt.Fprintln(m.out, "Authors table dropped.")
	return nil
}
