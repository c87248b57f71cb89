// Package cli provides the interactive checklist command-line client.
//
// It wires configuration, the local state database, the REST gateway and
// the services behind a read-eval-print loop. The loop tracks which view is
// shown (see package view); commands move between views and act on the
// checklist open in the editor.
//
// Key features:
//   - Login / Logout, forgotten and reset password, password change
//   - Admin user listing and registration
//   - Checklist list, create, edit, save, delete
//   - URN and sub-entry editing with local image previews
//   - Spreadsheet export of the open checklist
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
