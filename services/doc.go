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
Package services structure

All service packages share a consistent structure

## Two functions and one type

### `Initialize` function

- Goal
  - Separate one time setup from per request work
- Implementation
  - Is executed once per process as a cold start
  - Builds objects expensive to create, like API clients
  - Reads settings once, from the settings file and the environment
  - Built objects and settings are exposed in one variable named `global`

### `Global` type

- A `struct` carrying the objects and settings built by the `Initialize` function and used by the `EntryPoint` function

### `EntryPoint` function

- Goal
  - Execute the operations to be performed for one request file
- Implementation
  - Is executed once per invocation, on the file path the pipeline passes
  - Uses the objects and settings prepared by the `Initialize` function and carried by a variable of type `Global`
  - Performs the task a given service is targetted to do that is described before the `package` key word

*/
package services
