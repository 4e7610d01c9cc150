// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import "context"

// PasswordPrompter reads a secret from the user without echoing it.
type PasswordPrompter interface {
	Prompt(label string) (string, error)
}

// Clipboard receives text copied by --copy.
type Clipboard interface {
	WriteAll(text string) error
}

// VersionReporter is implemented by note services that can tell the version
// of the server behind them.
type VersionReporter interface {
	ServerVersion(ctx context.Context) (string, error)
}
