package service

import (
	"context"

	"github.com/theoremus-urban-solutions/rail-ticket-query/formatter"
	"github.com/theoremus-urban-solutions/rail-ticket-query/query"
	"github.com/theoremus-urban-solutions/rail-ticket-query/record"
	"github.com/theoremus-urban-solutions/rail-ticket-query/ticket"
)

// Tickets queries the direct trains between two stations.
func (s *Service) Tickets(ctx context.Context, req TicketsRequest) string {
	out, err := s.tickets(ctx, req)
	return result(ToolTickets, out, err)
}

func (s *Service) tickets(ctx context.Context, req TicketsRequest) (string, error) {
	if err := s.validate(req); err != nil {
		return "", err
	}
	format, _ := formatter.ParseFormat(req.Format)
	if err := s.checkTravel(req.Date, req.FromStation, req.ToStation); err != nil {
		return "", err
	}

	cookies, err := s.cookies(ctx)
	if err != nil {
		return "", err
	}
	data, err := s.upstream.QueryLeftTickets(ctx, cookies, req.Date, req.FromStation, req.ToStation)
	if err != nil {
		return "", err
	}

	warnings := record.NewWarningAggregator()
	defer warnings.LogAll(ToolTickets)
	recs := record.DecodeBatch(data.Result, "|", record.TicketSchema, warnings)
	tickets, err := ticket.AssembleTickets(recs, data.Map, warnings)
	if err != nil {
		return "", err
	}

	tickets = query.Apply(tickets, req.options())
	return formatter.NewResponseBuilder(format).Tickets(tickets), nil
}
