// Package view tracks which screen of the client is visible.
//
// Exactly one view is shown at a time. The router keeps no history and has
// no transition guards: any registered view may be shown from any other.
package view
