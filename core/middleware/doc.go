// Package middleware groups the Fiber middleware used by the serve
// command.
//
// Two concerns live here:
//
//   - auth: constant-time API key check against the configured
//     server.api_key; a no-op when no key is set.
//   - rayid: assigns (or propagates) an X-Ray-ID per request so log
//     lines from the merge and report handlers can be correlated.
//
// The serve command registers rayid before the request logger and auth
// after the public swagger mount.
package middleware
