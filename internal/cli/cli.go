// Package cli implements the noticecheck command-line interface.
//
// noticecheck is a single-command tool: it verifies that the
// THIRD_PARTY_NOTICES file matches the licenses of the Maven artifacts
// declared in MODULE.bazel, or regenerates it with --update. All commands
// log through charmbracelet/log; the logger travels in the context so the
// pipeline stays free of globals.
package cli
