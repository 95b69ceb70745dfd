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
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

// GetClientOption builds the client option used to construct the Admin SDK directory service
// tokenJSON wins when set, else the service account key file with super admin impersonation is used
func GetClientOption(ctx context.Context,
	tokenJSON []byte,
	keyJSONFilePath string,
	superAdminEmail string,
	scopes []string) (clientOption option.ClientOption, err error) {
	if len(tokenJSON) > 0 {
		credentials, err := google.CredentialsFromJSON(ctx, tokenJSON, scopes...)
		if err != nil {
			return nil, fmt.Errorf("google.CredentialsFromJSON %v", err)
		}
		return option.WithCredentials(credentials), nil
	}
	if keyJSONFilePath == "" {
		return nil, fmt.Errorf("no credentials: set TOKEN_JSON or configure keyJSONFileName")
	}
	if superAdminEmail == "" {
		return nil, fmt.Errorf("superAdminEmail is required to impersonate with a service account key")
	}
	keyJSONData, err := os.ReadFile(keyJSONFilePath)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile %s %v", keyJSONFilePath, err)
	}
	jwtConfig, err := getJWTConfigAndImpersonate(keyJSONData, superAdminEmail, scopes)
	if err != nil {
		return nil, err
	}
	// Use client option as admin.New(httpClient) is deprecated https://pkg.go.dev/google.golang.org/api/admin/directory/v1#New
	return option.WithHTTPClient(jwtConfig.Client(ctx)), nil
}
