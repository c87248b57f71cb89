// Package services holds the client's use cases: authentication and
// password management, admin user management, and the checklist edit
// session. Each service combines the backend gateway with local state (the
// session credential, the checklist editor) and leaves presentation to the
// CLI.
package services
