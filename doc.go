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
Package bulkgooglegen BulkGoogleGen Google Workspace bulk user creation

## What

Create Google Workspace user accounts from flat text request files committed to a requests folder, then email the generated credentials to a recipient named in the file. A CI pipeline invokes the tool once per new request file, passing the file path as the only argument.

### Flow

1. Parse and validate the request file
2. Create the user through the Admin SDK Directory API
3. Render the credential email from an HTML template
4. Send the email over authenticated SMTP

## Why

- Onboarding at scale: one commit per joiner, reviewed like any other change
- The pipeline run fails visibly when a step fails, so nothing is silently lost
- A run where the account exists but the email failed is reported distinctly, as that one needs manual follow up
*/
package bulkgooglegen
