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

import (
	"github.com/tempgit6969/BulkGoogleGen/utilities/mta"
	"github.com/tempgit6969/BulkGoogleGen/utilities/pwd"
	"github.com/tempgit6969/BulkGoogleGen/utilities/validater"
)

// DefaultSMTPHost Gmail SMTP relay
const DefaultSMTPHost = "smtp.gmail.com"

// DefaultMailSubject subject line of the credential email
const DefaultMailSubject = "Your New Google Workspace Account Details"

// DefaultTemplatePath relative to the working directory of the run
const DefaultTemplatePath = "templates/email_template.html"

// Situate complement settings taking in account the situation for service and instance settings
func (instanceDeployment *InstanceDeployment) Situate() (err error) {
	instance := &instanceDeployment.Settings.Instance
	if instance.SMTP.Host == "" {
		instance.SMTP.Host = DefaultSMTPHost
	}
	if instance.SMTP.Port == 0 {
		instance.SMTP.Port = mta.ImplicitTLSPort
	}
	if instance.Mail.Subject == "" {
		instance.Mail.Subject = DefaultMailSubject
	}
	if instance.Mail.TemplatePath == "" {
		instance.Mail.TemplatePath = DefaultTemplatePath
	}
	if instance.User.PasswordLength == 0 {
		instance.User.PasswordLength = pwd.DefaultPasswordLength
	}
	if instance.User.ChangePasswordAtNextLogin == nil {
		changePassword := true
		instance.User.ChangePasswordAtNextLogin = &changePassword
	}
	return validater.ValidateStruct(instanceDeployment, instanceDeployment.Core.ServiceName)
}
