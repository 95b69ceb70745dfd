// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tpl

import (
	"html"
	"regexp"
)

var placeholderRegexp = regexp.MustCompile(`\$\{([A-Za-z][A-Za-z0-9_]*)\}`)

// Render substitutes ${name} placeholders in template with HTML escaped values
// Fails closed: every placeholder must have a value, unresolved ones are returned in a TemplateRenderError
func Render(template string, values map[string]string) (rendered string, err error) {
	var unresolvedPlaceholders []string
	seen := map[string]bool{}
	rendered = placeholderRegexp.ReplaceAllStringFunc(template, func(token string) string {
		name := placeholderRegexp.FindStringSubmatch(token)[1]
		value, found := values[name]
		if !found {
			if !seen[name] {
				seen[name] = true
				unresolvedPlaceholders = append(unresolvedPlaceholders, name)
			}
			return token
		}
		return html.EscapeString(value)
	})
	if len(unresolvedPlaceholders) > 0 {
		return "", &TemplateRenderError{UnresolvedPlaceholders: unresolvedPlaceholders}
	}
	return rendered, nil
}
