// Package cli provides the interactive feedline command-line client.
//
// It wires configuration, the local credential store, the REST API client,
// the session manager, and an interactive REPL. Typical flow: restore any
// stored session on startup, then execute user commands.
//
// Key features:
//   - Register / Login / Logout against the backend
//   - Browse the post feed and the reels feed
//   - Like, comment on, and share items (optimistic, with rollback)
//   - Pick interests, complete the profile, upload images
//   - Search and discover users
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
