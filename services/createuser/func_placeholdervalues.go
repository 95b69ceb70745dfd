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

package createuser

import "github.com/tempgit6969/BulkGoogleGen/utilities/req"

// placeholderValues builds the substitution set for the credential email template:
// the seven request fields, the created account name as username, and the generated password
func placeholderValues(userRequest req.UserRequest, username string, password string) map[string]string {
	return map[string]string{
		req.KeyPrimaryEmail:    userRequest.PrimaryEmail,
		req.KeyGivenName:       userRequest.GivenName,
		req.KeyFamilyName:      userRequest.FamilyName,
		req.KeyRecoveryEmail:   userRequest.RecoveryEmail,
		req.KeyRecoveryPhone:   userRequest.RecoveryPhone,
		req.KeyOrgUnitPath:     userRequest.OrgUnitPath,
		req.KeyEmailToSendCred: userRequest.EmailToSendCred,
		"username":             username,
		"password":             password,
	}
}
