// Package git locates the repository a documentation tree belongs to.
//
// The docs root defaults to the docs directory of the enclosing repository,
// so running the checker from any subdirectory of a checkout gives the same
// result as running it from the top.
package git
