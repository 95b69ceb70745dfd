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

package aut

import (
	"fmt"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
)

// getJWTConfigAndImpersonate build JWT with impersonification
// The Admin SDK only accepts user management calls made as a directory super admin, hence the subject
func getJWTConfigAndImpersonate(keyJSONData []byte, superAdminEmail string, scopes []string) (jwtConfig *jwt.Config, err error) {
	// scope constants: https://pkg.go.dev/google.golang.org/api/admin/directory/v1#pkg-constants
	jwtConfig, err = google.JWTConfigFromJSON(keyJSONData, scopes...)
	if err != nil {
		return nil, fmt.Errorf("google.JWTConfigFromJSON %v", err)
	}
	jwtConfig.Subject = superAdminEmail
	return jwtConfig, nil
}
