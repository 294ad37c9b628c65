// Package model holds the domain entities shared by the in-memory and
// database-backed stores, together with their request validation rules.
package model

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// User represents an account in the system
type User struct {
	ID        int    `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"not null" validate:"required,min=2"`
	BirthDate Date   `json:"birthDate" gorm:"not null" validate:"pastdate"`
	Posts     []Post `json:"posts,omitempty" gorm:"foreignKey:UserID"`
}

// Post represents a message published by a user
type Post struct {
	ID          int    `json:"id" gorm:"primaryKey"`
	Description string `json:"description" gorm:"not null" validate:"required,min=2"`
	UserID      int    `json:"-" gorm:"index;not null"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields under their wire names, not Go names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	// pastdate: a non-zero date strictly before today.
	_ = v.RegisterValidation("pastdate", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(Date)
		if !ok || d.IsZero() {
			return false
		}
		return d.Before(Today().Time)
	})
	return v
}

// Validate checks the user's writable fields against their constraints.
// The returned error is a validator.ValidationErrors when constraints fail.
func (u *User) Validate() error {
	return validate.Struct(u)
}

// Validate checks the post's writable fields against their constraints.
func (p *Post) Validate() error {
	return validate.Struct(p)
}
