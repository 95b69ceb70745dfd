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

package solution

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadSecrets reads the secret configuration from the environment, honoring a local .env file when present
func LoadSecrets() (secrets Secrets, err error) {
	err = godotenv.Load(DotEnvFileName)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return secrets, fmt.Errorf("godotenv.Load %s %v", DotEnvFileName, err)
	}
	err = env.Parse(&secrets)
	if err != nil {
		return secrets, fmt.Errorf("env.Parse %v", err)
	}
	return secrets, nil
}
