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

// Request file keys, case sensitive
const (
	KeyPrimaryEmail    = "primaryEmail"
	KeyGivenName       = "givenName"
	KeyFamilyName      = "familyName"
	KeyRecoveryEmail   = "recoveryEmail"
	KeyRecoveryPhone   = "recoveryPhone"
	KeyOrgUnitPath     = "orgUnitPath"
	KeyEmailToSendCred = "EmailToSendCred"
)

// DefaultOrgUnitPath is the root organizational unit, used when the request file omits orgUnitPath
const DefaultOrgUnitPath = "/"

// UserRequest is one validated user creation request, built from a single request file
type UserRequest struct {
	PrimaryEmail    string
	GivenName       string
	FamilyName      string
	RecoveryEmail   string
	RecoveryPhone   string
	OrgUnitPath     string
	EmailToSendCred string
}
