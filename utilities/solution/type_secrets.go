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

// Secrets is the process wide secret configuration, read once at start, immutable for the run
// Provisioning and rotation of these values belongs to the CI secret store, not to this tool
type Secrets struct {
	TokenJSON string `env:"TOKEN_JSON"`
	SMTPUser  string `env:"EMAIL_SMTP_USER"`
	SMTPPass  string `env:"EMAIL_SMTP_PASS"`
}
