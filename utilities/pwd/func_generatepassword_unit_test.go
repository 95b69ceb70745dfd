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
	"testing"
)

func TestUnitGeneratePassword(t *testing.T) {
	var tests = []struct {
		length     int
		wantLength int
		wantErr    bool
	}{
		{0, DefaultPasswordLength, false},
		{8, 8, false},
		{12, 12, false},
		{24, 24, false},
		{4, 0, true},
	}

	for _, test := range tests {
		test := test
		t.Run(fmt.Sprintf("length%d", test.length), func(t *testing.T) {
			generated, err := GeneratePassword(test.length)
			if test.wantErr {
				if err == nil {
					t.Errorf("want error for length %d, got none", test.length)
				}
				return
			}
			if err != nil {
				t.Fatalf("want no error, got %v", err)
			}
			if len(generated) != test.wantLength {
				t.Errorf("got length %d, want %d", len(generated), test.wantLength)
			}
		})
	}
}

func TestUnitGeneratePasswordIsRandom(t *testing.T) {
	first, err := GeneratePassword(DefaultPasswordLength)
	if err != nil {
		t.Fatal(err)
	}
	second, err := GeneratePassword(DefaultPasswordLength)
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Errorf("two generated passwords are identical: %q", first)
	}
}
