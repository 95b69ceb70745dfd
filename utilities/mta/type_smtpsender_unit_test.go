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

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestUnitSMTPSenderCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sender := SMTPSender{Host: "smtp.gmail.com", Port: ImplicitTLSPort, Username: "noreply@example.com", Password: "secret"}
	err := sender.Send(ctx, Message{To: "b@y.com", Subject: "s", HTMLBody: "<p>x</p>"})
	var mailTransportError *MailTransportError
	if !errors.As(err, &mailTransportError) {
		t.Fatalf("want MailTransportError, got %v", err)
	}
	if mailTransportError.Recipient != "b@y.com" {
		t.Errorf("got recipient %q", mailTransportError.Recipient)
	}
	if !strings.Contains(mailTransportError.Error(), "b@y.com") {
		t.Errorf("diagnostic %q does not name the recipient", mailTransportError.Error())
	}
}
