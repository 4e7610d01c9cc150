// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"io"
)

// notAvailable stands in for build fields the linker did not set.
const notAvailable = "N/A"

// AppBuildInfo is the version, date and commit stamped into fortnote and
// fortnote-server with -ldflags. Any of them may be empty in a dev build.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from linker-provided values.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: version,
		date:    date,
		commit:  commit,
	}
}

// BuildVersion returns the release version, "" for a dev build.
func (a AppBuildInfo) BuildVersion() string {
	return a.version
}

func (a AppBuildInfo) BuildDate() string {
	return a.date
}

func (a AppBuildInfo) BuildCommit() string {
	return a.commit
}

// WriteTo prints one "Build <field>: <value>" line per field, with N/A for
// missing values.
func (a AppBuildInfo) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		orNotAvailable(a.version), orNotAvailable(a.date), orNotAvailable(a.commit))
	return int64(n), err
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
