// Package adapter talks to the GNS3 controller REST API (v2).
//
// Controller is the narrow fetch interface the inventory builder depends on:
// list projects, list the nodes of one project. GNS3Client implements it over
// HTTP(S) and is the only code in the module that performs network I/O.
//
// # Error Taxonomy
//
// Every failure wraps exactly one of three sentinels so callers can branch
// with errors.Is:
//
// ErrControllerUnreachable covers transport errors, timeouts and non-2xx
// responses.
//
// ErrInvalidResponse covers bodies that are not JSON, HTML error pages, and
// JSON whose shape does not match the contract.
//
// ErrProjectNotFound is returned by ResolveProject when no project matches.
//
// # Decoding
//
// Decoding is strict about the fields the inventory needs and tolerant of
// everything else: unknown fields are ignored, and a node without a console
// address is skipped rather than rejected.
package adapter
