// Package checks implements the individual validations run against one
// addon. Every check is total: it inspects the file index or the parsed
// metadata, converts any failure it finds into a report record, and never
// returns an error to its caller. Checks are independent and composable;
// none depends on another's findings.
package checks
