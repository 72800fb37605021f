// Package testutil holds the harness and assertions shared by the system
// tests under internal/test/system.
package testutil
