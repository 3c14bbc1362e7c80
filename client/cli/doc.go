/*
Package cli implements the bottles-cli command line: it parses one invocation
into a command.Command with cobra, dials the management service through a
conn.Dialer only when there is something to send, dispatches the command and
turns the outcome into a diagnostic on stderr plus an exit code
(common/errors).
*/
package cli
