package entities

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MinNameLength = 2
	MaxNameLength = 200
)

type Author struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	BirthYear int    `json:"birth_year"`
}

// NewAuthor returns an unpersisted author.
func NewAuthor(name string, birthYear int) Author {
	return Author{Name: name, BirthYear: birthYear}
}

func (a Author) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Name,
			validation.Required.Error("name is required"),
			validation.RuneLength(MinNameLength, MaxNameLength).Error("name must be 2-200 characters"),
		),
	)
}
