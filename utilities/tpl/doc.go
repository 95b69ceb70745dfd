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
Package tpl renders the credential email from a minimal named placeholder template

Placeholders use the ${name} form. Rendering fails closed: a placeholder with no value is an error naming it, so literal placeholder text never leaks into a credential email. Values are HTML escaped before substitution. Same inputs, same output: no randomness lives here.
*/
package tpl
