// Package query filters, sorts and truncates ticket collections.
//
// Apply works on any homogeneous slice of Item, which both ticket.TicketInfo
// and ticket.InterlineInfo implement. The steps always run in this order:
// category filter, departure time window, sort, limit.
package query
