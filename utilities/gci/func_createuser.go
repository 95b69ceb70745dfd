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
	"context"
	"fmt"

	"github.com/tempgit6969/BulkGoogleGen/utilities/pwd"
	"github.com/tempgit6969/BulkGoogleGen/utilities/req"
	admin "google.golang.org/api/admin/directory/v1"
)

// CreateUser generates an initial password then inserts the requested user in the directory
// The password is returned so the credential email can be rendered after, and only after, the account exists
func CreateUser(ctx context.Context,
	inserter UserInserter,
	userRequest req.UserRequest,
	passwordLength int,
	changePasswordAtNextLogin bool) (createdPrimaryEmail string, password string, err error) {
	password, err = pwd.GeneratePassword(passwordLength)
	if err != nil {
		return "", "", fmt.Errorf("pwd.GeneratePassword %v", err)
	}
	user := &admin.User{
		PrimaryEmail: userRequest.PrimaryEmail,
		Name: &admin.UserName{
			GivenName:  userRequest.GivenName,
			FamilyName: userRequest.FamilyName,
		},
		Password:                  password,
		ChangePasswordAtNextLogin: changePasswordAtNextLogin,
		OrgUnitPath:               userRequest.OrgUnitPath,
	}
	// The API errors on empty recovery fields, only send them when set
	if userRequest.RecoveryEmail != "" {
		user.RecoveryEmail = userRequest.RecoveryEmail
	}
	if userRequest.RecoveryPhone != "" {
		user.RecoveryPhone = userRequest.RecoveryPhone
	}
	createdUser, err := inserter.InsertUser(ctx, user)
	if err != nil {
		return "", "", classifyAPIError(err)
	}
	return createdUser.PrimaryEmail, password, nil
}
