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

package req

import (
	"fmt"
	"net/mail"
	"strings"
)

// ParseRequest parses request file content into a validated UserRequest
// Pure transform, no side effects: either a valid UserRequest or a typed error
func ParseRequest(content string) (userRequest UserRequest, err error) {
	fields := map[string]string{}
	for lineIndex, line := range strings.Split(content, "\n") {
		trimmedLine := strings.TrimSpace(line)
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, "#") {
			continue
		}
		colonIndex := strings.Index(line, ":")
		if colonIndex < 0 {
			return userRequest, &InvalidFormatError{
				LineNumber:  lineIndex + 1,
				Line:        trimmedLine,
				Description: "expected `key: value`",
			}
		}
		// Split on the first colon only, so values may contain colons
		// Duplicate keys: last occurrence wins
		key := strings.TrimSpace(line[:colonIndex])
		value := strings.TrimSpace(line[colonIndex+1:])
		fields[key] = value
	}

	// Unknown keys are ignored, forward compatible
	userRequest = UserRequest{
		PrimaryEmail:    fields[KeyPrimaryEmail],
		GivenName:       fields[KeyGivenName],
		FamilyName:      fields[KeyFamilyName],
		RecoveryEmail:   fields[KeyRecoveryEmail],
		RecoveryPhone:   fields[KeyRecoveryPhone],
		OrgUnitPath:     fields[KeyOrgUnitPath],
		EmailToSendCred: fields[KeyEmailToSendCred],
	}
	if userRequest.OrgUnitPath == "" {
		userRequest.OrgUnitPath = DefaultOrgUnitPath
	}

	var missingFields []string
	for _, required := range []struct {
		key   string
		value string
	}{
		{KeyPrimaryEmail, userRequest.PrimaryEmail},
		{KeyGivenName, userRequest.GivenName},
		{KeyEmailToSendCred, userRequest.EmailToSendCred},
	} {
		if required.value == "" {
			missingFields = append(missingFields, required.key)
		}
	}
	if len(missingFields) > 0 {
		return userRequest, &MissingFieldError{MissingFields: missingFields}
	}

	for _, address := range []struct {
		key   string
		value string
	}{
		{KeyPrimaryEmail, userRequest.PrimaryEmail},
		{KeyEmailToSendCred, userRequest.EmailToSendCred},
		{KeyRecoveryEmail, userRequest.RecoveryEmail},
	} {
		if address.value == "" {
			continue
		}
		if _, addrErr := mail.ParseAddress(address.value); addrErr != nil {
			return userRequest, &InvalidFormatError{
				Description: fmt.Sprintf("%s %q is not a valid email address", address.key, address.value),
			}
		}
	}
	return userRequest, nil
}
