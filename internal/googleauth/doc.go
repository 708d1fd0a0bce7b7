// Package googleauth builds authenticated Google API clients from a
// service-account JSON key file.
//
// The tool authenticates as a service account, not as a person: there is no
// browser flow and no token cache. The key file is read once, turned into a
// JWT config with the requested scopes, and the resulting HTTP client backs
// the Drive service.
//
// The private key is never logged; only the service account's client email
// and project are exposed for diagnostics.
package googleauth
