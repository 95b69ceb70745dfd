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

import (
	"errors"

	"google.golang.org/api/googleapi"
)

var rateLimitReasons = []string{"quotaExceeded", "rateLimitExceeded", "userRateLimitExceeded"}

// classifyAPIError maps an Admin SDK failure to a DirectoryServiceError reason
func classifyAPIError(err error) *DirectoryServiceError {
	var apiError *googleapi.Error
	if !errors.As(err, &apiError) {
		// no HTTP status came back, assume network level failure
		return &DirectoryServiceError{Reason: ReasonTransient, Err: err}
	}
	reason := ReasonUnknown
	switch {
	case apiError.Code == 409:
		reason = ReasonAlreadyExists
	case apiError.Code == 400:
		reason = ReasonInvalidInput
	case apiError.Code == 401:
		reason = ReasonAuthFailed
	case apiError.Code == 403:
		reason = ReasonPermissionDenied
		for _, item := range apiError.Errors {
			for _, rateLimitReason := range rateLimitReasons {
				if item.Reason == rateLimitReason {
					reason = ReasonRateLimited
				}
			}
		}
	case apiError.Code == 429:
		reason = ReasonRateLimited
	case apiError.Code >= 500:
		reason = ReasonTransient
	}
	return &DirectoryServiceError{Reason: reason, Code: apiError.Code, Err: err}
}
