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

package gci

import "fmt"

// DirectoryServiceError reasons
const (
	ReasonAlreadyExists    = "alreadyExists"
	ReasonInvalidInput     = "invalidInput"
	ReasonAuthFailed       = "authFailed"
	ReasonPermissionDenied = "permissionDenied"
	ReasonRateLimited      = "rateLimited"
	ReasonTransient        = "transient"
	ReasonUnknown          = "unknown"
)

// DirectoryServiceError reports a failed directory user creation call with a stable reason
// Not retried here: retry policy, if any, belongs to the triggering pipeline
type DirectoryServiceError struct {
	Reason string
	Code   int
	Err    error
}

// Error implements the error interface
func (e *DirectoryServiceError) Error() string {
	return fmt.Sprintf("directory service error, reason %s, code %d: %v", e.Reason, e.Code, e.Err)
}

// Unwrap exposes the underlying API error
func (e *DirectoryServiceError) Unwrap() error {
	return e.Err
}
