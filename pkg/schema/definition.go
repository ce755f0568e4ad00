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

package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/defra-forms/forms-manager/api/types"
	"github.com/defra-forms/forms-manager/internal/validation"
)

// DefinitionRules are the type constraints on the top level of a definition.
var DefinitionRules = []Rule{
	{Path: "$.name", Type: "string"},
	{Path: "$.startPage", Type: "string"},
	{Path: "$.pages", Type: "array"},
	{Path: "$.conditions", Type: "array"},
	{Path: "$.sections", Type: "array"},
	{Path: "$.lists", Type: "array"},
}

// definition is the part of a form definition checked by the validator.
// Everything else in the document is left as is.
type definition struct {
	Name       string    `json:"name"`
	StartPage  string    `json:"startPage" validate:"required"`
	Pages      []page    `json:"pages" validate:"required,min=1,unique=Path,dive"`
	Conditions []any     `json:"conditions" validate:"required"`
	Sections   []section `json:"sections" validate:"required,unique=Name,dive"`
	Lists      []list    `json:"lists" validate:"required,unique=Name,dive"`
}

type page struct {
	Path       string      `json:"path" validate:"required,page_path"`
	Title      string      `json:"title" validate:"required"`
	Components []component `json:"components" validate:"required,unique=Name,dive"`
}

type component struct {
	Type string `json:"type" validate:"required"`
	Name string `json:"name" validate:"required"`
}

type section struct {
	Name string `json:"name" validate:"required"`
}

type list struct {
	Name string `json:"name" validate:"required"`
}

// Validate checks the structure of the given form definition. The checks
// are a gate before persistence, not a full model of the form language:
// top-level types first, then the shape of pages, components, sections and
// lists, then that the start page names one of the pages.
func Validate(doc types.FormDefinition) ValidationResult {
	if doc == nil {
		return invalid("$", "expected object at path $")
	}

	if result := ValidateRules(doc, DefinitionRules); !result.Valid {
		return result
	}

	bytes, err := json.Marshal(doc)
	if err != nil {
		return invalid("$", err.Error())
	}

	def := &definition{}
	if err := json.Unmarshal(bytes, def); err != nil {
		typeErr := &json.UnmarshalTypeError{}
		if errors.As(err, &typeErr) {
			path := "$." + typeErr.Field
			return invalid(path, fmt.Sprintf("expected %s at path %s", typeErr.Type, path))
		}
		return invalid("$", err.Error())
	}

	if err := validation.ValidateStruct(def); err != nil {
		structErr := &validation.StructError{}
		if !errors.As(err, &structErr) {
			return invalid("$", err.Error())
		}

		var errs []ValidationError
		for _, v := range structErr.Violations {
			errs = append(errs, ValidationError{
				Path:    toPath(v.Namespace),
				Message: v.Description,
			})
		}
		return ValidationResult{Valid: false, Errors: errs}
	}

	for _, p := range def.Pages {
		if p.Path == def.StartPage {
			return ValidationResult{Valid: true}
		}
	}

	return invalid(
		"$.startPage",
		fmt.Sprintf("startPage %q does not match the path of any page", def.StartPage),
	)
}

// toPath converts a validator namespace such as "definition.pages[0].path"
// into "$.pages[0].path".
func toPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return "$" + namespace[i:]
	}
	return "$"
}

func invalid(path, message string) ValidationResult {
	return ValidationResult{
		Valid:  false,
		Errors: []ValidationError{{Path: path, Message: message}},
	}
}
