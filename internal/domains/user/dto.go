package user

import (
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateUserRequest — POST /rest/user
type CreateUserRequest struct {
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
	Gender     string `json:"gender"`
}

// Validate checks the payload in a fixed precedence: missing fields, then
// name length, then gender enum. Only the first failing class is surfaced.
// The payload is not mutated here — normalization is a separate, explicit
// step that runs only after validation passes.
func (r CreateUserRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.GivenName, validation.Required),
		validation.Field(&r.FamilyName, validation.Required),
		validation.Field(&r.Gender, validation.Required),
	); err != nil {
		return ErrMissingFields
	}

	// Length is checked on the raw input, before title-casing.
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.GivenName, validation.RuneLength(3, 0)),
		validation.Field(&r.FamilyName, validation.RuneLength(3, 0)),
	); err != nil {
		return ErrNameTooShort
	}

	if err := validation.Validate(strings.ToLower(r.Gender),
		validation.In(GenderMale, GenderFemale, GenderTransgender),
	); err != nil {
		return ErrInvalidGender
	}

	return nil
}

// Normalize rewrites the payload into canonical stored form: names become
// title-case, gender lowercase. Downstream components observe only the
// normalized values.
func (r *CreateUserRequest) Normalize() {
	r.GivenName = titleCase(r.GivenName)
	r.FamilyName = titleCase(r.FamilyName)
	r.Gender = strings.ToLower(r.Gender)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
}

// UpdateUserRequest — PATCH /rest/user/:id
// All fields optional; an empty string means "not provided". Values are
// applied as given, without normalization.
type UpdateUserRequest struct {
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
	Gender     string `json:"gender"`
}

// HasUpdates reports whether at least one field was provided.
func (r UpdateUserRequest) HasUpdates() bool {
	return r.GivenName != "" || r.FamilyName != "" || r.Gender != ""
}

// MatchesCurrent reports whether the request would leave u unchanged, i.e.
// every candidate value equals the stored one. Such a request is an
// idempotent re-update and succeeds without writing.
func (r UpdateUserRequest) MatchesCurrent(u *User) bool {
	return u.FirstName == r.GivenName &&
		u.LastName == r.FamilyName &&
		u.Gender == r.Gender
}

// Fields returns the partial-update set containing only provided fields.
func (r UpdateUserRequest) Fields() UpdateFields {
	var f UpdateFields
	if r.GivenName != "" {
		f.FirstName = &r.GivenName
	}
	if r.FamilyName != "" {
		f.LastName = &r.FamilyName
	}
	if r.Gender != "" {
		f.Gender = &r.Gender
	}
	return f
}

// UpdateFields is the repository-level partial update: nil means untouched.
type UpdateFields struct {
	FirstName *string
	LastName  *string
	Gender    *string
}

// ListUsersQuery — GET /rest/user query parameters.
type ListUsersQuery struct {
	Gender string `form:"gender"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

func (q *ListUsersQuery) SetDefaults() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
}

// Offset is the offset-based pagination: (page-1)*limit.
func (q ListUsersQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
