package coerce

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Valid keeps the held value if it passes every ozzo-validation rule,
// otherwise it becomes nil. [Missing] is validated as nil.
//
//	email := coerce.Wrap(form["email"]).ToString().Valid(validation.Required, is.EmailFormat).Get()
func (c Value) Valid(rules ...validation.Rule) Value {
	v := c.v
	if isMissing(v) {
		v = nil
	}
	err := guard(func() error {
		return validation.Validate(v, rules...)
	})
	if err != nil {
		c.emitRuleFailed("valid", err)
		return c.with(nil)
	}
	return c
}

// Satisfies reports whether the held value passes a go-playground/validator
// tag expression such as "required,email" or "min=1,max=10". An invalid tag
// reports false.
func (c Value) Satisfies(tag string) Value {
	v := c.v
	if isMissing(v) {
		v = nil
	}
	err := guard(func() error {
		return validate.Var(v, tag)
	})
	if err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			c.emitRuleFailed("satisfies", err)
		}
		return c.with(false)
	}
	return c.with(true)
}

// ToUUID parses the text form as a UUID and returns its canonical lowercase
// form, or nil. Braced, URN and unhyphenated forms are accepted.
func (c Value) ToUUID() Value {
	s := strings.TrimSpace(text(c.v))
	if s == "" {
		return c.with(nil)
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return c.with(nil)
	}
	return c.with(id.String())
}
