// Package session owns the authenticated-session state of the client.
//
// A Manager is the single writer over the in-memory session (user record,
// isAuthenticated, isLoading) and keeps it synchronized with the durable
// credential store on every mutation: a state change that is not persisted
// would not survive a restart, so the two are always written together.
//
// Invariant: IsAuthenticated implies a token is held in the credential store
// and a user record is present in memory. Every failure path converges to a
// well-defined state; nothing in this package crashes the process.
package session
