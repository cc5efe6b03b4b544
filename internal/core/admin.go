// Package core holds host-process facts (elevation state) that the CLI
// surfaces but does not act on: every scan/audit/measure operation reads
// the registry and app-data folders a standard user already has access to.
package core

import "golang.org/x/sys/windows"

// IsElevated returns true if the current process is running with
// administrator privileges. Shown in the CLI footer only — no operation
// here requires it.
func IsElevated() bool {
	token := windows.GetCurrentProcessToken()
	return token.IsElevated()
}
