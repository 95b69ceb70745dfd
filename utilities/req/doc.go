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
Package req parses user creation request files

A request file is UTF-8 flat text, one field per line in `key: value` form. Blank lines and lines starting with # are skipped. Keys are case sensitive, unknown keys are ignored, and when a key repeats the last occurrence wins.

Required fields: primaryEmail, givenName, EmailToSendCred. Optional fields: familyName, recoveryEmail, recoveryPhone, orgUnitPath (defaults to "/").

Parsing is a pure transform from text to a UserRequest or a typed error, so validation failures are caught before any external call is made.
*/
package req
