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

package solution

import "testing"

func TestUnitLoadSecrets(t *testing.T) {
	t.Setenv("TOKEN_JSON", `{"type":"authorized_user"}`)
	t.Setenv("EMAIL_SMTP_USER", "noreply@example.com")
	t.Setenv("EMAIL_SMTP_PASS", "app-password")

	secrets, err := LoadSecrets()
	if err != nil {
		t.Fatalf("want no error, got %v", err)
	}
	if secrets.TokenJSON != `{"type":"authorized_user"}` {
		t.Errorf("got TokenJSON %q", secrets.TokenJSON)
	}
	if secrets.SMTPUser != "noreply@example.com" {
		t.Errorf("got SMTPUser %q", secrets.SMTPUser)
	}
	if secrets.SMTPPass != "app-password" {
		t.Errorf("got SMTPPass %q", secrets.SMTPPass)
	}
}

func TestUnitLoadSecretsEmptyEnvironment(t *testing.T) {
	t.Setenv("TOKEN_JSON", "")
	t.Setenv("EMAIL_SMTP_USER", "")
	t.Setenv("EMAIL_SMTP_PASS", "")

	secrets, err := LoadSecrets()
	if err != nil {
		t.Fatalf("want no error, got %v", err)
	}
	if secrets.TokenJSON != "" || secrets.SMTPUser != "" || secrets.SMTPPass != "" {
		t.Errorf("want empty secrets, got %+v", secrets)
	}
}
