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

import "fmt"

// Stage identifies where a run terminated
type Stage string

// Run stages, in order
const (
	StageInit   Stage = "init"
	StageParse  Stage = "parse"
	StageCreate Stage = "create"
	StageRender Stage = "render"
	StageSend   Stage = "send"
	StageDone   Stage = "done"
)

// RunStatus is the terminal report of one run
// UserCreated distinguishes "user created but credential email failed" from "nothing happened":
// the former requires manual follow up, the latter requires no cleanup
type RunStatus struct {
	Stage        Stage
	Err          error
	UserCreated  bool
	PrimaryEmail string
	RunID        string
}

// Done reports whether the run completed every step
func (runStatus RunStatus) Done() bool {
	return runStatus.Stage == StageDone && runStatus.Err == nil
}

// ExitCode maps the terminal status to the process exit code consumed by the triggering pipeline
func (runStatus RunStatus) ExitCode() int {
	if runStatus.Done() {
		return 0
	}
	switch runStatus.Stage {
	case StageParse:
		return 2
	case StageCreate:
		return 3
	case StageRender:
		return 4
	case StageSend:
		return 5
	}
	return 1
}

// Diagnostic is the human readable one liner identifying which stage failed and why
func (runStatus RunStatus) Diagnostic() string {
	if runStatus.Done() {
		return fmt.Sprintf("done, user %s created, credentials sent", runStatus.PrimaryEmail)
	}
	if runStatus.UserCreated {
		return fmt.Sprintf("FAILED at stage %s, user %s WAS created, credential email NOT sent, manual follow up required: %v",
			runStatus.Stage, runStatus.PrimaryEmail, runStatus.Err)
	}
	return fmt.Sprintf("FAILED at stage %s, no user created: %v", runStatus.Stage, runStatus.Err)
}
