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

/*
Package createuser creates one Google Workspace user from one request file and emails the credentials

Triggered by

The CI pipeline, once per new request file, the file path as the only argument.

Flow

Linear, no branching loops: Start, Parsed, UserCreated, Rendered, Sent, Done. Any step failure aborts the remaining steps.

Ordering

The directory creation call always precedes the mail send, never the reverse and never concurrently: the email depends on the account existing and on the generated password being known after creation. A failed send after a successful creation is a partial success, reported distinctly because it needs manual follow up, unlike a parse failure where nothing happened.

Cardinality

one-one: one request file, one user, one credential email, one process exit code.

Domain Wide Delegation

When a service account key is used instead of an authorized user token, the service account must have domain wide delegation and the following Oauth scope:

- https://www.googleapis.com/auth/admin.directory.user

Automatic retrying

No. Retry policy, if any, belongs to the triggering pipeline re invoking with the same file.
*/
package createuser
