// Package server exposes the query operations as named tools.
//
// A Registry binds each tool name to a service operation and decodes JSON
// arguments over the operation's defaults. Server serves the registry over
// HTTP:
//
//	GET  /api/health              liveness and catalog size
//	GET  /api/tools               tool names and descriptions
//	POST /api/tools/{name}        JSON arguments in, text/plain result out
//	GET  /api/resources/stations  every station keyed by telecode
//
// A tool result is always 200 with the operation's string, including
// "Error: " results. Unknown tools answer 404 and undecodable arguments 400.
package server
