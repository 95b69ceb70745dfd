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

package req

import "fmt"

// InvalidFormatError reports a line that does not match the `key: value` shape, or a field that fails email syntax validation
type InvalidFormatError struct {
	LineNumber  int
	Line        string
	Description string
}

// Error implements the error interface
func (e *InvalidFormatError) Error() string {
	if e.LineNumber > 0 {
		return fmt.Sprintf("invalid format line %d %q: %s", e.LineNumber, e.Line, e.Description)
	}
	return fmt.Sprintf("invalid format: %s", e.Description)
}
