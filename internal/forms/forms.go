// Package forms validates user-submitted fields. Validation is total: every
// field is checked and all errors are collected, never fail-fast.
package forms

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// RegisterForm carries a registration submission.
type RegisterForm struct {
	Name     string `form:"name" json:"name"`
	Username string `form:"username" json:"username"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
	Confirm  string `form:"confirm" json:"confirm"`
}

// Validate checks all fields and returns a validation.Errors map on failure.
func (f RegisterForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name,
			validation.Required.Error("name is required"),
			validation.Length(8, 30).Error("name must be between 8 and 30 characters"),
		),
		validation.Field(&f.Username,
			validation.Required.Error("username is required"),
			validation.Length(3, 15).Error("username must be between 3 and 15 characters"),
		),
		validation.Field(&f.Email,
			validation.Required.Error("email is required"),
			is.EmailFormat.Error("this is not a valid email address"),
		),
		validation.Field(&f.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 30).Error("password must be between 8 and 30 characters"),
		),
		validation.Field(&f.Confirm,
			validation.By(equals(f.Password, "passwords do not match")),
		),
	)
}

// LoginForm carries a login submission. Mirroring the registration form's
// bounds here would lock out users who registered under older rules, so only
// presence is checked.
type LoginForm struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// Validate checks that a username was submitted.
func (f LoginForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Username,
			validation.Required.Error("username is required"),
		),
	)
}

// ArticleForm carries an article create/edit submission.
type ArticleForm struct {
	Title   string `form:"title" json:"title"`
	Content string `form:"content" json:"content"`
}

// Validate checks title and content bounds.
func (f ArticleForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title,
			validation.Required.Error("title is required"),
			validation.Length(2, 100).Error("title must be between 2 and 100 characters"),
		),
		validation.Field(&f.Content,
			validation.Required.Error("content is required"),
			validation.Length(30, 0).Error("content must be at least 30 characters"),
		),
	)
}

// SearchForm carries a search submission.
type SearchForm struct {
	Keyword string `form:"keyword" json:"keyword"`
}

// equals builds a cross-field equality rule.
func equals(expected, message string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s != expected {
			return errors.New(message)
		}
		return nil
	}
}

// FieldErrors flattens a validation error into a field→message map for form
// re-rendering. A nil error yields nil; a non-validation error is reported
// under the empty field name.
func FieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	var ve validation.Errors
	if errors.As(err, &ve) {
		for field, fieldErr := range ve {
			fields[field] = fieldErr.Error()
		}
		return fields
	}

	fields[""] = err.Error()
	return fields
}
