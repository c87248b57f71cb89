// Package client is the gateway to the checklist backend.
//
// # Overview
//
// Client lists one method per REST interaction: authentication and password
// management, admin user management, and checklist CRUD. RESTClient
// implements it on top of resty, sending JSON bodies and attaching
// "Authorization: Bearer <token>" where the endpoint requires it.
//
// # Error Handling
//
// Only two kinds of failure exist:
//
//   - transport failures (connection refused, DNS, timeouts) wrap
//     ErrUnavailable;
//   - non-2xx responses become *APIError, whose message is the server's
//     "message" field verbatim.
//
// A 403 on the user list maps to ErrAccessDenied. A call that needs a
// credential when none is held fails with ErrUnauthorized before any request
// is made. Nothing is retried.
package client
