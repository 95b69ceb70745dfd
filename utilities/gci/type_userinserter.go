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

	admin "google.golang.org/api/admin/directory/v1"
)

// UserInserter is the narrow capability the user creation flow needs from the directory service
type UserInserter interface {
	InsertUser(ctx context.Context, user *admin.User) (*admin.User, error)
}

// DirectoryUserInserter implements UserInserter on a live Admin SDK directory service
type DirectoryUserInserter struct {
	Service *admin.Service
}

// InsertUser creates the user record in the directory
func (inserter DirectoryUserInserter) InsertUser(ctx context.Context, user *admin.User) (*admin.User, error) {
	return inserter.Service.Users.Insert(user).Context(ctx).Do()
}
