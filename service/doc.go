// Package service implements the query operations on top of the upstream
// client, the station catalog and the decode/filter/format pipeline.
//
// # Usage
//
//	client := kyfw.NewClient(kyfw.Options{Timeout: 10 * time.Second})
//	svc, err := service.Bootstrap(ctx, client, service.Options{TimeZone: "Asia/Shanghai"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	req := service.NewTicketsRequest()
//	req.Date, req.FromStation, req.ToStation = "2025-05-01", "VNP", "AOH"
//	fmt.Println(svc.Tickets(ctx, req))
//
// # Error Policy
//
// Every operation returns a plain string. Failures are converted at the
// operation boundary: error results start with "Error: ", while empty but
// successful queries return a no-results message that never does. Internally
// failures are sentinel errors (ErrStationNotFound, ErrDateInPast,
// ErrUpstreamRequestFailed, ErrUpstreamAuthFailed, ErrDecodeFailed,
// ErrPaginationExhausted, ErrInvalidArgument) matched with errors.Is.
//
// # Bootstrap
//
// Bootstrap fetches and parses the station script and scrapes the interline
// query path exactly once. Either failure is returned to the caller; the
// catalog is read-only afterwards and shared by every call.
//
// # Interline Pagination
//
// The interline query fetches pages until the requested count is reached or
// upstream reports no more pages. The loop is bounded by MaxPages and also
// stops on a page that adds nothing; either case short of the target is
// ErrPaginationExhausted, and the itineraries gathered so far are still
// rendered.
package service
