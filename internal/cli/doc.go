// Package cli implements the fortnote command line: note CRUD and password
// locking against a local store or, with --server, a running fortnote server.
package cli
