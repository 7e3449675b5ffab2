package service

import (
	"context"
	"log"

	"github.com/theoremus-urban-solutions/rail-ticket-query/formatter"
	"github.com/theoremus-urban-solutions/rail-ticket-query/record"
	"github.com/theoremus-urban-solutions/rail-ticket-query/ticket"
	"github.com/theoremus-urban-solutions/rail-ticket-query/utils"
)

// TrainNotFound is returned when the train search matches nothing.
const TrainNotFound = "很抱歉，未查询到对应车次。"

// RouteStations resolves a train code on a date to its train instance and
// renders the full stop sequence.
func (s *Service) RouteStations(ctx context.Context, req RouteRequest) string {
	out, err := s.routeStations(ctx, req)
	return result(ToolTrainRouteStations, out, err)
}

func (s *Service) routeStations(ctx context.Context, req RouteRequest) (string, error) {
	if err := s.validate(req); err != nil {
		return "", err
	}
	format, _ := formatter.ParseFormat(req.Format)
	compact, err := utils.CompactDate(req.DepartDate)
	if err != nil {
		return "", &QueryError{Msg: err.Error()}
	}

	hits, err := s.upstream.SearchTrain(ctx, req.TrainCode, compact)
	if err != nil {
		log.Printf("%s: train search for %s: %v", ToolTrainRouteStations, req.TrainCode, err)
		return TrainNotFound, nil
	}
	if len(hits) == 0 {
		return TrainNotFound, nil
	}

	cookies, err := s.cookies(ctx)
	if err != nil {
		return "", err
	}
	stops, err := s.upstream.QueryTrainRoute(ctx, cookies, hits[0].TrainNo, req.DepartDate)
	if err != nil {
		return "", err
	}

	warnings := record.NewWarningAggregator()
	defer warnings.LogAll(ToolTrainRouteStations)
	recs := record.FromObjects(stops, record.RouteStopSchema, warnings)
	return formatter.NewResponseBuilder(format).RouteStations(ticket.AssembleRouteStations(recs)), nil
}
