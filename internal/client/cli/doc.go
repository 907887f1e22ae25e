// Package cli provides the interactive card directory command-line client.
//
// It wires configuration, the local session database, the HTTP API client and
// the screen controllers into an interactive REPL. The command set mirrors the
// routes of the web client: browse the directory, manage your own cards, view
// favorites, and edit your profile.
//
// Key commands:
//   - login / register / logout
//   - browse, favorites, like
//   - mycards, addcard, editcard, delcard
//   - profile, editprofile
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
