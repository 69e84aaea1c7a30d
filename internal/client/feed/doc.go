// Package feed turns raw backend records into display-ready view models and
// keeps the in-memory feed collections patched between fetches.
//
// The Transformer is pure: record in, view model out, no network, no shared
// state. The Store holds the transformed posts and reels and applies
// optimistic mutations (like, comment, share): local state changes first,
// then the backend call, then confirmation or rollback. Each mutation is a
// three-state transition, pending -> confirmed | rolled-back; a failed
// request restores the pre-mutation view exactly.
package feed
