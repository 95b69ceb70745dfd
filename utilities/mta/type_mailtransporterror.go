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

package mta

import "fmt"

// MailTransportError reports a failed credential email delivery
// When it happens the user account already exists upstream, so it must stay distinguishable from earlier failures
type MailTransportError struct {
	Recipient string
	Err       error
}

// Error implements the error interface
func (e *MailTransportError) Error() string {
	return fmt.Sprintf("mail transport error sending to %s: %v", e.Recipient, e.Err)
}

// Unwrap exposes the underlying SMTP error
func (e *MailTransportError) Unwrap() error {
	return e.Err
}
