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

// InstanceDeployment settings structure
type InstanceDeployment struct {
	Core struct {
		ServiceName     string `yaml:"-" valid:"isNotZeroValue"`
		EnvironmentName string `yaml:"-" valid:"isNotZeroValue"`
	} `yaml:"-"`
	Settings struct {
		Instance struct {
			GCI struct {
				SuperAdminEmail string `yaml:"superAdminEmail" valid:"isEmailAddress"`
				KeyJSONFileName string `yaml:"keyJSONFileName"`
			} `yaml:"gci"`
			SMTP struct {
				Host string `yaml:"host" valid:"isNotZeroValue"`
				Port int    `yaml:"port" valid:"isNotZeroValue"`
			} `yaml:"smtp"`
			Mail struct {
				Subject      string `yaml:"subject" valid:"isNotZeroValue"`
				TemplatePath string `yaml:"templatePath" valid:"isNotZeroValue"`
			} `yaml:"mail"`
			User struct {
				ChangePasswordAtNextLogin *bool `yaml:"changePasswordAtNextLogin"`
				PasswordLength            int   `yaml:"passwordLength" valid:"isNotZeroValue"`
			} `yaml:"user"`
		} `yaml:"instance"`
	} `yaml:"settings"`
}
