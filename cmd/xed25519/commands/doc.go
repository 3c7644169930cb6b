// Package commands implements the xed25519 command line interface.
//
// Keys cross the command line as base64 (standard encoding) or, with --hex,
// as hexadecimal strings. Secret keys are never logged.
package commands
