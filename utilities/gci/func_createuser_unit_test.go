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
	"errors"
	"testing"

	"github.com/tempgit6969/BulkGoogleGen/utilities/req"
	admin "google.golang.org/api/admin/directory/v1"
	"google.golang.org/api/googleapi"
)

type fakeUserInserter struct {
	insertedUser *admin.User
	err          error
}

func (fake *fakeUserInserter) InsertUser(ctx context.Context, user *admin.User) (*admin.User, error) {
	fake.insertedUser = user
	if fake.err != nil {
		return nil, fake.err
	}
	return user, nil
}

func TestUnitCreateUserBody(t *testing.T) {
	userRequest := req.UserRequest{
		PrimaryEmail:    "jane.doe@example.com",
		GivenName:       "Jane",
		FamilyName:      "Doe",
		RecoveryEmail:   "jane.personal@example.org",
		OrgUnitPath:     "/Engineering",
		EmailToSendCred: "manager@example.com",
	}
	fake := &fakeUserInserter{}
	createdPrimaryEmail, password, err := CreateUser(context.Background(), fake, userRequest, 12, true)
	if err != nil {
		t.Fatalf("want no error, got %v", err)
	}
	if createdPrimaryEmail != "jane.doe@example.com" {
		t.Errorf("got created primary email %q", createdPrimaryEmail)
	}
	if len(password) != 12 {
		t.Errorf("got password length %d, want 12", len(password))
	}
	insertedUser := fake.insertedUser
	if insertedUser.PrimaryEmail != userRequest.PrimaryEmail {
		t.Errorf("got primaryEmail %q", insertedUser.PrimaryEmail)
	}
	if insertedUser.Name == nil || insertedUser.Name.GivenName != "Jane" || insertedUser.Name.FamilyName != "Doe" {
		t.Errorf("got name %+v", insertedUser.Name)
	}
	if insertedUser.Password != password {
		t.Errorf("inserted password differs from returned password")
	}
	if !insertedUser.ChangePasswordAtNextLogin {
		t.Errorf("want ChangePasswordAtNextLogin true")
	}
	if insertedUser.OrgUnitPath != "/Engineering" {
		t.Errorf("got orgUnitPath %q", insertedUser.OrgUnitPath)
	}
	if insertedUser.RecoveryEmail != "jane.personal@example.org" {
		t.Errorf("got recoveryEmail %q", insertedUser.RecoveryEmail)
	}
	if insertedUser.RecoveryPhone != "" {
		t.Errorf("empty recoveryPhone must not be sent, got %q", insertedUser.RecoveryPhone)
	}
}

func TestUnitCreateUserErrorClassification(t *testing.T) {
	var tests = []struct {
		name       string
		err        error
		wantReason string
	}{
		{
			name:       "duplicateUser",
			err:        &googleapi.Error{Code: 409, Message: "Entity already exists."},
			wantReason: ReasonAlreadyExists,
		},
		{
			name:       "invalidDomain",
			err:        &googleapi.Error{Code: 400, Message: "Invalid Input"},
			wantReason: ReasonInvalidInput,
		},
		{
			name:       "authFailure",
			err:        &googleapi.Error{Code: 401, Message: "Login Required"},
			wantReason: ReasonAuthFailed,
		},
		{
			name:       "permissionDenied",
			err:        &googleapi.Error{Code: 403, Message: "Not Authorized"},
			wantReason: ReasonPermissionDenied,
		},
		{
			name: "quotaExceeded",
			err: &googleapi.Error{Code: 403, Errors: []googleapi.ErrorItem{
				{Reason: "quotaExceeded"},
			}},
			wantReason: ReasonRateLimited,
		},
		{
			name:       "tooManyRequests",
			err:        &googleapi.Error{Code: 429},
			wantReason: ReasonRateLimited,
		},
		{
			name:       "backendError",
			err:        &googleapi.Error{Code: 503, Message: "Backend Error"},
			wantReason: ReasonTransient,
		},
		{
			name:       "networkFailure",
			err:        errors.New("dial tcp: i/o timeout"),
			wantReason: ReasonTransient,
		},
	}

	userRequest := req.UserRequest{
		PrimaryEmail:    "a@x.com",
		GivenName:       "A",
		OrgUnitPath:     "/",
		EmailToSendCred: "b@y.com",
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			fake := &fakeUserInserter{err: test.err}
			_, _, err := CreateUser(context.Background(), fake, userRequest, 12, true)
			var directoryServiceError *DirectoryServiceError
			if !errors.As(err, &directoryServiceError) {
				t.Fatalf("want DirectoryServiceError, got %v", err)
			}
			if directoryServiceError.Reason != test.wantReason {
				t.Errorf("got reason %s, want %s", directoryServiceError.Reason, test.wantReason)
			}
		})
	}
}
