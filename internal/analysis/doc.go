// Package analysis is the HTTP client for the commentary analysis API.
//
// # Endpoints
//
//	POST {base}/analyze  {"url": ..., "commentator": ...}  -> {"commentary": ..., "website_type": ...}
//	GET  {base}/health                                      -> {"status": "healthy"}
//
// Every call carries an X-Request-ID so client and server logs line up.
//
// # Errors
//
// Analyze fails with one of:
//
//   - *NetworkError: the request never got a response
//   - *HTTPError: a non-2xx status, with the FastAPI "detail" when present
//   - ErrEmptyResult: a 2xx reply without commentary
//   - a wrapped decode error for bodies that are not JSON
//
// IsNetwork and StatusCode classify an error without type assertions.
//
// Server-provided short strings (detail, website type, health status) are
// reduced to one line of plain text before they leave this package.
// Commentary is returned as received and cleaned by whoever displays it.
package analysis
