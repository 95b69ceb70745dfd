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

package pwd

import (
	"fmt"

	"github.com/sethvargo/go-password/password"
)

// DefaultPasswordLength Google Workspace requires at least 8 characters
const DefaultPasswordLength = 12

const minPasswordLength = 8

// GeneratePassword generates a random initial password with letters, digits and symbols
func GeneratePassword(length int) (generated string, err error) {
	if length == 0 {
		length = DefaultPasswordLength
	}
	if length < minPasswordLength {
		return "", fmt.Errorf("password length %d below minimum %d", length, minPasswordLength)
	}
	numDigits := length / 4
	numSymbols := length / 6
	generated, err = password.Generate(length, numDigits, numSymbols, false, true)
	if err != nil {
		return "", fmt.Errorf("password.Generate %v", err)
	}
	return generated, nil
}
