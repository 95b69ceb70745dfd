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

	gomail "gopkg.in/gomail.v2"
)

// ImplicitTLSPort SMTP over TLS from the first byte, the port Gmail uses for SMTPS
const ImplicitTLSPort = 465

// SMTPSender implements Sender on an authenticated SMTP relay
type SMTPSender struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Send delivers one HTML message, a single synchronous call with no retry
func (sender SMTPSender) Send(ctx context.Context, message Message) error {
	if err := ctx.Err(); err != nil {
		return &MailTransportError{Recipient: message.To, Err: err}
	}
	gomailMessage := gomail.NewMessage()
	gomailMessage.SetHeader("From", sender.Username)
	gomailMessage.SetHeader("To", message.To)
	gomailMessage.SetHeader("Subject", message.Subject)
	gomailMessage.SetBody("text/html", message.HTMLBody)

	dialer := gomail.NewDialer(sender.Host, sender.Port, sender.Username, sender.Password)
	dialer.SSL = sender.Port == ImplicitTLSPort
	if err := dialer.DialAndSend(gomailMessage); err != nil {
		return &MailTransportError{Recipient: message.To, Err: err}
	}
	return nil
}
