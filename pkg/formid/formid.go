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

// Package formid derives the identifier of a form from its title.
package formid

import (
	"regexp"
	"strings"
)

var (
	disallowedRegex = regexp.MustCompile(`[^a-z0-9 ]`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// Derive returns the identifier of the form with the given title, e.g.
// "Hello - world" becomes "hello-world". The title is lower-cased, every
// character outside [a-z0-9 ] is removed, runs of whitespace collapse to a
// single space and spaces become hyphens.
//
// Any title gives an identifier, possibly an empty one; rejecting empty or
// duplicated identifiers is left to the caller.
func Derive(title string) string {
	id := strings.ToLower(title)
	id = disallowedRegex.ReplaceAllString(id, "")
	id = whitespaceRegex.ReplaceAllString(id, " ")
	return strings.ReplaceAll(id, " ", "-")
}
