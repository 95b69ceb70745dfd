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

package glo

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestUnitEntryString(t *testing.T) {
	var tests = []struct {
		name         string
		entry        Entry
		wantSeverity string
		wantContains []string
	}{
		{
			name:         "severityDefaultsToInfo",
			entry:        Entry{Message: "start"},
			wantSeverity: "INFO",
			wantContains: []string{`"message":"start"`},
		},
		{
			name:         "criticalKept",
			entry:        Entry{Severity: "CRITICAL", Message: "create_failed", Description: "409 already exists"},
			wantSeverity: "CRITICAL",
			wantContains: []string{`"message":"create_failed"`, "already exists"},
		},
		{
			name:         "userCreatedFlagSerialized",
			entry:        Entry{Message: "user_created_email_not_sent", UserCreated: true},
			wantSeverity: "INFO",
			wantContains: []string{`"user_created":true`},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			rendered := test.entry.String()
			var decoded map[string]interface{}
			if err := json.Unmarshal([]byte(rendered), &decoded); err != nil {
				t.Fatalf("entry is not valid JSON: %v", err)
			}
			if decoded["severity"] != test.wantSeverity {
				t.Errorf("got severity %v, want %s", decoded["severity"], test.wantSeverity)
			}
			for _, want := range test.wantContains {
				if !strings.Contains(rendered, want) {
					t.Errorf("got %q, want it to contain %q", rendered, want)
				}
			}
		})
	}
}
