package cli

// Shown when the server could not be reached; server-side failures show the
// server's own message instead.
const (
	msgLoginUnavailable     = "Login failed. Could not connect to the server."
	msgChangePasswordFailed = "An error occurred while changing the password."
	msgGenericFailure       = "An error occurred."
	msgFetchUsersFailed     = "Failed to fetch users."
	msgCreateUserFailed     = "Failed to create user."
	msgListFailed           = "Failed to load checklists."
	msgLoadFailed           = "Failed to load checklist."
	msgSaveFailed           = "Failed to save checklist."
	msgDeleteFailed         = "Failed to delete checklist."
)
