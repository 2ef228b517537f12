// Package entity contains the core business objects of the project.
package entity

// Principal is the authenticated actor of one request, derived from a
// verified access token. It is constructed fresh per request and never
// persisted or shared across requests.
type Principal struct {
	Email string `json:"email"` // Identity claim of the token subject.
	Role  Role   `json:"role"`  // Cryptographically verified role claim.
}
