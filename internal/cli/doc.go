// Package cli provides the interactive finanzas command-line client.
//
// It wires configuration, the persisted session store, the HTTP clients for
// the auth and records services, and an interactive REPL whose commands are
// the application's views. Typical flow: restore or prompt for a session,
// then execute user commands until exit.
//
// Key features:
//   - Login / Register / Logout / Whoami
//   - Dashboard: totals, monthly trend chart, recent activity
//   - Ledger management: list, filter, create, edit, delete
//   - Bulk JSON import
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
