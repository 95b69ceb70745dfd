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
Package gci creates Google Cloud Identity directory users through the Admin SDK

The Admin SDK call is modelled as the narrow UserInserter capability so the orchestration can be tested with fakes simulating each error kind without network access. Failures are mapped to DirectoryServiceError with a stable Reason.
*/
package gci
