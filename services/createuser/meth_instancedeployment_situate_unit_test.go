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

import "testing"

func TestUnitSituateDefaults(t *testing.T) {
	var instanceDeployment InstanceDeployment
	instanceDeployment.Core.ServiceName = serviceName
	instanceDeployment.Core.EnvironmentName = "test"

	if err := instanceDeployment.Situate(); err != nil {
		t.Fatalf("want no error, got %v", err)
	}
	instance := instanceDeployment.Settings.Instance
	if instance.SMTP.Host != DefaultSMTPHost {
		t.Errorf("got host %q, want %q", instance.SMTP.Host, DefaultSMTPHost)
	}
	if instance.SMTP.Port != 465 {
		t.Errorf("got port %d, want 465", instance.SMTP.Port)
	}
	if instance.Mail.Subject != DefaultMailSubject {
		t.Errorf("got subject %q", instance.Mail.Subject)
	}
	if instance.Mail.TemplatePath != DefaultTemplatePath {
		t.Errorf("got template path %q", instance.Mail.TemplatePath)
	}
	if instance.User.PasswordLength != 12 {
		t.Errorf("got password length %d, want 12", instance.User.PasswordLength)
	}
	if instance.User.ChangePasswordAtNextLogin == nil || !*instance.User.ChangePasswordAtNextLogin {
		t.Errorf("want changePasswordAtNextLogin to default to true")
	}
}

func TestUnitSituateKeepsProvidedSettings(t *testing.T) {
	var instanceDeployment InstanceDeployment
	instanceDeployment.Core.ServiceName = serviceName
	instanceDeployment.Core.EnvironmentName = "test"
	instance := &instanceDeployment.Settings.Instance
	instance.SMTP.Host = "smtp.example.net"
	instance.SMTP.Port = 587
	instance.Mail.Subject = "Welcome aboard"
	keepPassword := false
	instance.User.ChangePasswordAtNextLogin = &keepPassword
	instance.User.PasswordLength = 16

	if err := instanceDeployment.Situate(); err != nil {
		t.Fatalf("want no error, got %v", err)
	}
	if instance.SMTP.Host != "smtp.example.net" || instance.SMTP.Port != 587 {
		t.Errorf("provided SMTP settings were overridden: %+v", instance.SMTP)
	}
	if instance.Mail.Subject != "Welcome aboard" {
		t.Errorf("provided subject was overridden: %q", instance.Mail.Subject)
	}
	if *instance.User.ChangePasswordAtNextLogin {
		t.Errorf("provided changePasswordAtNextLogin was overridden")
	}
	if instance.User.PasswordLength != 16 {
		t.Errorf("provided password length was overridden: %d", instance.User.PasswordLength)
	}
}

func TestUnitSituateRejectsMalformedSuperAdminEmail(t *testing.T) {
	var instanceDeployment InstanceDeployment
	instanceDeployment.Core.ServiceName = serviceName
	instanceDeployment.Core.EnvironmentName = "test"
	instanceDeployment.Settings.Instance.GCI.SuperAdminEmail = "not an address"

	if err := instanceDeployment.Situate(); err == nil {
		t.Errorf("want validation failure, got none")
	}
}
