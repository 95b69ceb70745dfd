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

package bgcli

import (
	"context"
	"fmt"
	"log"

	"github.com/tempgit6969/BulkGoogleGen/services/createuser"
	"github.com/tempgit6969/BulkGoogleGen/utilities/ffo"
	"github.com/tempgit6969/BulkGoogleGen/utilities/glo"
	"github.com/tempgit6969/BulkGoogleGen/utilities/solution"
)

// SettingsDumpFileName where -dump writes the situated settings
const SettingsDumpFileName = "settings_dump.yaml"

// Run drives one end to end run and returns the process exit code for the triggering pipeline
func Run(ctx context.Context, global *Global) int {
	log.SetFlags(0)
	secrets, err := solution.LoadSecrets()
	if err != nil {
		log.Println(glo.Entry{
			Severity:    "CRITICAL",
			Message:     "load_secrets_failed",
			Description: fmt.Sprintf("solution.LoadSecrets %v", err),
		})
		return 1
	}

	if global.Commands.Dumpsettings {
		return dumpSettings(global)
	}

	var serviceGlobal createuser.Global
	err = createuser.Initialize(ctx, &serviceGlobal, &secrets, global.SettingsPath, global.EnvironmentName)
	if err != nil {
		// Initialize already logged the cause
		return 1
	}
	runStatus := createuser.EntryPoint(&serviceGlobal, global.RequestFilePath)
	log.Println(runStatus.Diagnostic())
	return runStatus.ExitCode()
}

// dumpSettings writes the situated settings, defaults applied, for review
func dumpSettings(global *Global) int {
	var instanceDeployment createuser.InstanceDeployment
	err := ffo.ReadUnmarshalYAML(global.SettingsPath, &instanceDeployment)
	if err != nil {
		log.Println(glo.Entry{
			Severity:    "CRITICAL",
			Message:     "dump_settings_failed",
			Description: fmt.Sprintf("ffo.ReadUnmarshalYAML %s %v", global.SettingsPath, err),
		})
		return 1
	}
	instanceDeployment.Core.ServiceName = "createuser"
	instanceDeployment.Core.EnvironmentName = global.EnvironmentName
	if err = instanceDeployment.Situate(); err != nil {
		log.Println(glo.Entry{
			Severity:    "CRITICAL",
			Message:     "dump_settings_failed",
			Description: fmt.Sprintf("instanceDeployment.Situate %v", err),
		})
		return 1
	}
	if err = ffo.MarshalYAMLWrite(SettingsDumpFileName, instanceDeployment); err != nil {
		log.Println(glo.Entry{
			Severity:    "CRITICAL",
			Message:     "dump_settings_failed",
			Description: fmt.Sprintf("ffo.MarshalYAMLWrite %s %v", SettingsDumpFileName, err),
		})
		return 1
	}
	log.Printf("settings dumped to %s", SettingsDumpFileName)
	return 0
}
