// Package command implements the command tree used by the vidq entrypoint.
//
// Commands are declared once at startup in an explicit table: each has a
// token path, optional single-token aliases, a handler and ordered
// subcommands. The Dispatcher walks the tree with the process arguments,
// picks the most specific match in declaration order, and calls its handler
// with the tokens left over.
package command
