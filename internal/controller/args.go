package controller

import (
	"bytes"
	"encoding/json"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	expandAuthor = "author"
	expandBooks  = "books"
)

// Argument sets mirror the operation signatures of the API. Pointers tell
// an argument that was left out apart from its zero value.
type (
	bookListArgs struct {
		Expand []string `json:"expand"`
	}

	authorListArgs struct {
		Expand []string `json:"expand"`
	}

	bookArgs struct {
		ID     *string  `json:"id"`
		Expand []string `json:"expand"`
	}

	authorArgs struct {
		ID     *string  `json:"id"`
		Expand []string `json:"expand"`
	}

	addBookArgs struct {
		Title         *string  `json:"title"`
		Author        *string  `json:"author"`
		PublishedYear *int     `json:"publishedYear"`
		Expand        []string `json:"expand"`
	}

	updateBookArgs struct {
		ID            *string  `json:"id"`
		Title         *string  `json:"title"`
		Author        *string  `json:"author"`
		PublishedYear *int     `json:"publishedYear"`
		Expand        []string `json:"expand"`
	}

	deleteBookArgs struct {
		ID *string `json:"id"`
	}
)

func expandRule(allowed ...any) validation.Rule {
	return validation.Each(validation.In(allowed...).Error("unknown relationship field"))
}

func (a bookListArgs) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Expand, expandRule(expandAuthor)),
	)
}

func (a authorListArgs) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Expand, expandRule(expandBooks)),
	)
}

func (a bookArgs) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.ID, validation.NotNil.Error("id is required")),
		validation.Field(&a.Expand, expandRule(expandAuthor)),
	)
}

func (a authorArgs) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.ID, validation.NotNil.Error("id is required")),
		validation.Field(&a.Expand, expandRule(expandBooks)),
	)
}

func (a addBookArgs) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Title, validation.NotNil.Error("title is required")),
		validation.Field(&a.Author, validation.NotNil.Error("author is required")),
		validation.Field(&a.PublishedYear, validation.NotNil.Error("publishedYear is required")),
		validation.Field(&a.Expand, expandRule(expandAuthor)),
	)
}

func (a updateBookArgs) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.ID, validation.NotNil.Error("id is required")),
		validation.Field(&a.Expand, expandRule(expandAuthor)),
	)
}

func (a deleteBookArgs) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.ID, validation.NotNil.Error("id is required")),
	)
}

// decodeArgs maps a request Struct onto one of the argument sets above.
// Unknown arguments and type mismatches (a fractional publishedYear, a
// numeric id) are rejected before validation runs.
func decodeArgs(request *structpb.Struct, args validation.Validatable) error {
	raw, err := json.Marshal(request.AsMap())

	if err != nil {
		return fmt.Errorf("can not encode arguments: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	if err = dec.Decode(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}

	return args.Validate()
}
