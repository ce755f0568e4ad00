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

// Package schema provides the structural validator of form definitions.
package schema

import (
	"fmt"
	"strings"
)

// ValidationResult represents the result of validation
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// ValidationError represents a validation error
type ValidationError struct {
	Path    string
	Message string
}

// Error returns the message of the validation error prefixed by its path.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// String joins the messages of all errors of the result.
func (r ValidationResult) String() string {
	messages := make([]string, 0, len(r.Errors))
	for _, err := range r.Errors {
		messages = append(messages, err.Message)
	}
	return strings.Join(messages, "; ")
}

// Rule is a type constraint on the value at a path of a document. Path uses
// the "$.a.b" notation, where "$" is the root object.
type Rule struct {
	Path string
	Type string
}

// ValidateRules validates the given document against the rules.
func ValidateRules(data map[string]any, rules []Rule) ValidationResult {
	var errors []ValidationError
	for _, rule := range rules {
		value := getValueByPath(data, rule.Path)
		result := validateValue(value, rule)
		if !result.Valid {
			errors = append(errors, result.Errors...)
		}
	}

	return ValidationResult{
		Valid:  len(errors) == 0,
		Errors: errors,
	}
}

// getValueByPath gets a value from the given object using the given path.
// It returns nil if any segment of the path is missing.
func getValueByPath(obj map[string]any, path string) any {
	if !strings.HasPrefix(path, "$") {
		panic(fmt.Sprintf("Path must start with $, got %s", path))
	}

	keys := strings.Split(path, ".")
	var current any = obj

	for i := 1; i < len(keys); i++ {
		object, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = object[keys[i]]
	}

	return current
}

// validateValue validates a value against a rule.
func validateValue(value any, rule Rule) ValidationResult {
	ok := false
	switch rule.Type {
	case "string":
		_, ok = value.(string)
	case "number":
		_, ok = value.(float64)
	case "boolean":
		_, ok = value.(bool)
	case "object":
		_, ok = value.(map[string]any)
	case "array":
		_, ok = value.([]any)
	default:
		panic(fmt.Sprintf("Unknown rule type: %s", rule.Type))
	}

	if ok {
		return ValidationResult{Valid: true}
	}

	return ValidationResult{
		Valid: false,
		Errors: []ValidationError{{
			Path:    rule.Path,
			Message: fmt.Sprintf("expected %s at path %s", rule.Type, rule.Path),
		}},
	}
}
