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
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/tempgit6969/BulkGoogleGen/utilities/aut"
	"github.com/tempgit6969/BulkGoogleGen/utilities/ffo"
	"github.com/tempgit6969/BulkGoogleGen/utilities/gci"
	"github.com/tempgit6969/BulkGoogleGen/utilities/glo"
	"github.com/tempgit6969/BulkGoogleGen/utilities/mta"
	"github.com/tempgit6969/BulkGoogleGen/utilities/req"
	"github.com/tempgit6969/BulkGoogleGen/utilities/solution"
	"github.com/tempgit6969/BulkGoogleGen/utilities/tpl"
	admin "google.golang.org/api/admin/directory/v1"
)

const serviceName = "createuser"

// Global structure for the run state, built once by Initialize then passed by reference
// No package level mutable variable: concurrent runs for different files are isolated by construction
type Global struct {
	ctx                context.Context
	emailTemplate      string
	environment        string
	initID             string
	instanceDeployment InstanceDeployment
	mailSender         mta.Sender
	microserviceName   string
	userInserter       gci.UserInserter
}

// Initialize reads and situates the settings, builds the directory service client and the mail sender
func Initialize(ctx context.Context, global *Global, secrets *solution.Secrets, settingsPath string, environmentName string) (err error) {
	log.SetFlags(0)
	global.ctx = ctx
	global.environment = environmentName
	global.microserviceName = serviceName
	global.initID = fmt.Sprintf("%v", uuid.New())

	var instanceDeployment InstanceDeployment
	err = ffo.ReadUnmarshalYAML(settingsPath, &instanceDeployment)
	if err != nil {
		global.logInitFailed(fmt.Sprintf("ffo.ReadUnmarshalYAML %s %v", settingsPath, err))
		return fmt.Errorf("ffo.ReadUnmarshalYAML %s %v", settingsPath, err)
	}
	instanceDeployment.Core.ServiceName = serviceName
	instanceDeployment.Core.EnvironmentName = environmentName
	err = instanceDeployment.Situate()
	if err != nil {
		global.logInitFailed(fmt.Sprintf("instanceDeployment.Situate %v", err))
		return fmt.Errorf("instanceDeployment.Situate %v", err)
	}
	global.instanceDeployment = instanceDeployment
	instance := instanceDeployment.Settings.Instance

	if secrets.SMTPUser == "" || secrets.SMTPPass == "" {
		global.logInitFailed("EMAIL_SMTP_USER and EMAIL_SMTP_PASS are required")
		return fmt.Errorf("EMAIL_SMTP_USER and EMAIL_SMTP_PASS are required")
	}

	clientOption, err := aut.GetClientOption(ctx,
		[]byte(secrets.TokenJSON),
		instance.GCI.KeyJSONFileName,
		instance.GCI.SuperAdminEmail,
		[]string{admin.AdminDirectoryUserScope})
	if err != nil {
		global.logInitFailed(fmt.Sprintf("aut.GetClientOption %v", err))
		return fmt.Errorf("aut.GetClientOption %v", err)
	}
	dirAdminService, err := admin.NewService(ctx, clientOption)
	if err != nil {
		global.logInitFailed(fmt.Sprintf("admin.NewService %v", err))
		return fmt.Errorf("admin.NewService %v", err)
	}
	global.userInserter = gci.DirectoryUserInserter{Service: dirAdminService}
	global.mailSender = mta.SMTPSender{
		Host:     instance.SMTP.Host,
		Port:     instance.SMTP.Port,
		Username: secrets.SMTPUser,
		Password: secrets.SMTPPass,
	}
	global.emailTemplate, err = ffo.ReadTextFile(instance.Mail.TemplatePath)
	if err != nil {
		global.logInitFailed(fmt.Sprintf("ffo.ReadTextFile %s %v", instance.Mail.TemplatePath, err))
		return fmt.Errorf("ffo.ReadTextFile %s %v", instance.Mail.TemplatePath, err)
	}

	log.Println(glo.Entry{
		MicroserviceName: global.microserviceName,
		Environment:      global.environment,
		Severity:         "NOTICE",
		Message:          "coldstart",
		InitID:           global.initID,
	})
	return nil
}

// EntryPoint drives one end to end run for one request file
// Side effects in strict order: directory creation before email send, never the reverse, never concurrent
func EntryPoint(global *Global, requestFilePath string) (runStatus RunStatus) {
	runStatus.RunID = fmt.Sprintf("%v", uuid.New())
	runStatus.Stage = StageInit
	start := time.Now()
	log.Println(glo.Entry{
		MicroserviceName:   global.microserviceName,
		Environment:        global.environment,
		Severity:           "NOTICE",
		Message:            "start",
		RunID:              runStatus.RunID,
		TriggeringFilePath: requestFilePath,
		Now:                &start,
	})

	userRequest, err := req.ParseRequestFile(requestFilePath)
	if err != nil {
		runStatus.Stage, runStatus.Err = StageParse, err
		global.logRunFailed(runStatus, "parse_failed", requestFilePath)
		return runStatus
	}

	instance := global.instanceDeployment.Settings.Instance
	createdPrimaryEmail, password, err := gci.CreateUser(global.ctx,
		global.userInserter,
		userRequest,
		instance.User.PasswordLength,
		*instance.User.ChangePasswordAtNextLogin)
	if err != nil {
		runStatus.Stage, runStatus.Err = StageCreate, err
		global.logRunFailed(runStatus, "create_failed", requestFilePath)
		return runStatus
	}
	runStatus.UserCreated = true
	runStatus.PrimaryEmail = createdPrimaryEmail
	log.Println(glo.Entry{
		MicroserviceName:   global.microserviceName,
		Environment:        global.environment,
		Severity:           "NOTICE",
		Message:            "user_created",
		Description:        createdPrimaryEmail,
		RunID:              runStatus.RunID,
		TriggeringFilePath: requestFilePath,
	})

	renderedEmail, err := tpl.Render(global.emailTemplate, placeholderValues(userRequest, createdPrimaryEmail, password))
	if err != nil {
		runStatus.Stage, runStatus.Err = StageRender, err
		global.logRunFailed(runStatus, "user_created_email_not_sent", requestFilePath)
		return runStatus
	}

	err = global.mailSender.Send(global.ctx, mta.Message{
		To:       userRequest.EmailToSendCred,
		Subject:  instance.Mail.Subject,
		HTMLBody: renderedEmail,
	})
	if err != nil {
		runStatus.Stage, runStatus.Err = StageSend, err
		global.logRunFailed(runStatus, "user_created_email_not_sent", requestFilePath)
		return runStatus
	}

	runStatus.Stage = StageDone
	now := time.Now()
	log.Println(glo.Entry{
		MicroserviceName:   global.microserviceName,
		Environment:        global.environment,
		Severity:           "NOTICE",
		Message:            "finish",
		Description:        runStatus.Diagnostic(),
		RunID:              runStatus.RunID,
		TriggeringFilePath: requestFilePath,
		UserCreated:        runStatus.UserCreated,
		Now:                &now,
		LatencySeconds:     now.Sub(start).Seconds(),
	})
	return runStatus
}

// logInitFailed records a CRITICAL entry for a failure before any run started
func (global *Global) logInitFailed(description string) {
	log.Println(glo.Entry{
		MicroserviceName: global.microserviceName,
		Environment:      global.environment,
		Severity:         "CRITICAL",
		Message:          "init_failed",
		Description:      description,
		InitID:           global.initID,
	})
}

// logRunFailed records a CRITICAL entry identifying the failed stage and the cause
func (global *Global) logRunFailed(runStatus RunStatus, message string, requestFilePath string) {
	log.Println(glo.Entry{
		MicroserviceName:   global.microserviceName,
		Environment:        global.environment,
		Severity:           "CRITICAL",
		Message:            message,
		Description:        runStatus.Diagnostic(),
		RunID:              runStatus.RunID,
		TriggeringFilePath: requestFilePath,
		UserCreated:        runStatus.UserCreated,
	})
}
