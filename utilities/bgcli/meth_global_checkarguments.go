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
	"flag"
	"fmt"

	"github.com/tempgit6969/BulkGoogleGen/utilities/ffo"
	"github.com/tempgit6969/BulkGoogleGen/utilities/solution"
)

// CheckArguments check cli arguments and identify the triggering request file
func (global *Global) CheckArguments() (err error) {
	flag.BoolVar(&global.Commands.Dumpsettings, "dump", false, "dump the situated settings to a yaml file and exit")
	flag.StringVar(&global.SettingsPath, "settings", solution.SettingsFileName, "path to the instance settings file")
	flag.StringVar(&global.EnvironmentName, "environment", solution.DevelopmentEnvironmentName, "environment name")
	flag.Parse()

	if global.Commands.Dumpsettings {
		return nil
	}
	if flag.NArg() != 1 {
		return fmt.Errorf("expect exactly one argument, the path to the request file, got %d", flag.NArg())
	}
	global.RequestFilePath = flag.Arg(0)
	if err = ffo.CheckPath(global.RequestFilePath); err != nil {
		return err
	}
	return nil
}
