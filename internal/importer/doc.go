// Package importer launches the external leak importer executable.
//
// The importer is an opaque collaborator: it is given the leaks database
// path, the uploaded leak file and the leak metadata as command-line flags,
// and it writes into the database on its own. This package only builds the
// argument list, starts the process and reports its completion over a
// channel together with the captured exit status and output.
package importer
