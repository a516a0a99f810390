// Package execshell runs external tools such as git behind a testable
// CommandRunner seam.
//
// ShellExecutor logs every command's lifecycle through zap with messages built
// by CommandMessageFormatter, and turns non-zero exit codes into
// CommandFailedError values. OSCommandRunner is the os/exec implementation.
package execshell
