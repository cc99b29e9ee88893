// Package naming implements the "<prefix>_<base>" naming convention that encodes the
// order of documents and directories in their names, and derives display titles from names.
package naming
