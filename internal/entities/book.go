package entities

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Book owns exactly one Author. After any read or save the Author is fully
// hydrated and persisted.
type Book struct {
	ID          ID     `json:"id"`
	Title       string `json:"title"`
	PublishYear int    `json:"publish_year"`
	PagesCount  int    `json:"pages_count"`
	Author      Author `json:"author"`
}

// NewBook returns an unpersisted book owned by author.
func NewBook(title string, publishYear, pagesCount int, author Author) Book {
	return Book{
		Title:       title,
		PublishYear: publishYear,
		PagesCount:  pagesCount,
		Author:      author,
	}
}

func (b Book) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Title,
			validation.Required.Error("title is required"),
			validation.RuneLength(MinNameLength, MaxNameLength).Error("title must be 2-200 characters"),
		),
		validation.Field(&b.PagesCount, validation.Min(0).Error("pages count must not be negative")),
		validation.Field(&b.Author),
	)
}
