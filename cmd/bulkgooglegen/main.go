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

// Package main is the bulkgooglegen command line entry point
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/tempgit6969/BulkGoogleGen/utilities/bgcli"
	"github.com/tempgit6969/BulkGoogleGen/utilities/glo"
)

func main() {
	log.SetFlags(0)
	var global bgcli.Global
	if err := global.CheckArguments(); err != nil {
		log.Println(glo.Entry{
			Severity:    "CRITICAL",
			Message:     "invalid_arguments",
			Description: fmt.Sprintf("global.CheckArguments %v", err),
		})
		os.Exit(1)
	}
	os.Exit(bgcli.Run(context.Background(), &global))
}
