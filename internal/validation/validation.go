/*
 * Copyright 2024 The Forms Manager Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package validation wraps go-playground/validator with the rules and the
// English messages used by the request types of the forms manager.
package validation

import (
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

const (
	formIDRegexString   = `^[a-z0-9-]+$`
	pagePathRegexString = `^/[^\s]*$`
)

var (
	formIDRegex   = regexp.MustCompile(formIDRegexString)
	pagePathRegex = regexp.MustCompile(pagePathRegexString)
)

var (
	// defaultValidator is shared by every caller of this package. Custom rules
	// are registered on it in init.
	defaultValidator = validator.New()
	defaultEn        = en.New()
	uni              = ut.New(defaultEn, defaultEn)

	// trans is the translator for the 'en' locale.
	trans, _ = uni.GetTranslator(defaultEn.Locale())
)

// FieldLevel is the field level interface.
type FieldLevel = validator.FieldLevel

// Violation is the error returned by the validation of a single value.
type Violation struct {
	Tag         string
	Field       string
	Namespace   string
	Err         error
	Description string
}

// Error returns the error message.
func (e Violation) Error() string {
	return e.Err.Error()
}

// StructError is the error returned by the validation of a struct.
type StructError struct {
	Violations []Violation
}

// Error returns the translated descriptions of all violations.
func (s StructError) Error() string {
	sb := strings.Builder{}

	for _, v := range s.Violations {
		sb.WriteString(v.Description)
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String())
}

// RegisterValidation registers a custom rule with the given tag.
func RegisterValidation(tag string, fn validator.Func) error {
	if err := defaultValidator.RegisterValidation(tag, fn); err != nil {
		return fmt.Errorf("register validation: %w", err)
	}
	return nil
}

// RegisterTranslation registers the message of the given tag.
func RegisterTranslation(tag, msg string) error {
	if err := defaultValidator.RegisterTranslation(
		tag,
		trans,
		func(ut ut.Translator) error {
			if err := ut.Add(tag, msg, true); err != nil {
				return fmt.Errorf("register translation: %w", err)
			}
			return nil
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fe.Field())
			return t
		},
	); err != nil {
		return fmt.Errorf("register translation: %w", err)
	}
	return nil
}

// ValidateValue validates the value with the tag.
func ValidateValue(v interface{}, tag string) error {
	if err := defaultValidator.Var(v, tag); err != nil {
		for _, e := range err.(validator.ValidationErrors) {
			return Violation{
				Tag:         e.Tag(),
				Err:         e,
				Description: e.Translate(trans),
			}
		}
	}
	return nil
}

// ValidateStruct validates the struct. Nested structs and slices marked with
// `dive` are validated too; the namespace of each violation locates the field.
func ValidateStruct(s interface{}) error {
	if err := defaultValidator.Struct(s); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return fmt.Errorf("validate struct: %w", err)
		}

		structError := &StructError{}
		for _, e := range validationErrors {
			structError.Violations = append(structError.Violations, Violation{
				Tag:         e.Tag(),
				Field:       e.Field(),
				Namespace:   e.Namespace(),
				Err:         e,
				Description: e.Translate(trans),
			})
		}
		return structError
	}

	return nil
}

func init() {
	if err := entranslations.RegisterDefaultTranslations(defaultValidator, trans); err != nil {
		fmt.Fprintf(os.Stderr, "validation register default translations: %v\n", err)
		os.Exit(1)
	}

	// Use the json names of the fields in messages, as callers only see those.
	defaultValidator.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	if err := RegisterValidation("form_id", func(level validator.FieldLevel) bool {
		return formIDRegex.MatchString(level.Field().String())
	}); err != nil {
		fmt.Fprintf(os.Stderr, "validation form_id: %v\n", err)
		os.Exit(1)
	}
	if err := RegisterTranslation(
		"form_id",
		"{0} must only contain lowercase letters, numbers, and hyphens",
	); err != nil {
		fmt.Fprintf(os.Stderr, "validation form_id: %v\n", err)
		os.Exit(1)
	}

	if err := RegisterValidation("page_path", func(level validator.FieldLevel) bool {
		return pagePathRegex.MatchString(level.Field().String())
	}); err != nil {
		fmt.Fprintf(os.Stderr, "validation page_path: %v\n", err)
		os.Exit(1)
	}
	if err := RegisterTranslation(
		"page_path",
		"{0} must start with a slash and contain no whitespace",
	); err != nil {
		fmt.Fprintf(os.Stderr, "validation page_path: %v\n", err)
		os.Exit(1)
	}
}
