// Package kyfw is the HTTP client for the 12306 booking service.
//
// It acquires session cookies, queries left tickets, interline itineraries,
// train search and train routes, and scrapes the station script and the
// interline query path from the web pages. Responses are returned as raw
// strings and JSON objects; decoding them into tickets is the job of the
// record and ticket packages.
//
// Every request takes a context.Context and is bounded by the client timeout.
// Transport failures and non-200 answers wrap ErrRequestFailed; a missing
// session cookie is ErrAuthFailed.
package kyfw
