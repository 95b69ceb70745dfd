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

import (
	"fmt"

	"github.com/tempgit6969/BulkGoogleGen/utilities/ffo"
)

// ParseRequestFile reads a request file from disk and parses it
func ParseRequestFile(path string) (userRequest UserRequest, err error) {
	content, err := ffo.ReadTextFile(path)
	if err != nil {
		return userRequest, fmt.Errorf("ffo.ReadTextFile %s %v", path, err)
	}
	return ParseRequest(content)
}
