package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/theoremus-urban-solutions/rail-ticket-query/formatter"
	"github.com/theoremus-urban-solutions/rail-ticket-query/kyfw"
	"github.com/theoremus-urban-solutions/rail-ticket-query/query"
	"github.com/theoremus-urban-solutions/rail-ticket-query/record"
	"github.com/theoremus-urban-solutions/rail-ticket-query/ticket"
)

// noTicketsPrefix starts the result of a query upstream refused to run.
const noTicketsPrefix = "很抱歉，未查到相关的列车余票。"

// exhaustedNotice is appended to the output of every format when pagination
// stopped short, including an empty result.
const exhaustedNotice = "（分页已达上限，仅显示已查询到的%d条中转方案）"

// rejection is a query upstream refused to run. Msg may be empty.
type rejection struct{ Msg string }

func (e *rejection) Error() string { return "upstream rejected query: " + e.Msg }

// Interlines queries two-leg transfer itineraries, paging upstream until
// LimitedNum itineraries are gathered.
func (s *Service) Interlines(ctx context.Context, req InterlineRequest) string {
	out, err := s.interlines(ctx, req)
	return result(ToolInterlineTickets, out, err)
}

func (s *Service) interlines(ctx context.Context, req InterlineRequest) (string, error) {
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

	q := kyfw.InterlineQuery{
		Date:          req.Date,
		FromStation:   req.FromStation,
		ToStation:     req.ToStation,
		MiddleStation: req.MiddleStation,
		ShowWZ:        req.ShowWZ,
	}
	gathered, pageErr := s.collectInterlines(ctx, cookies, q, req.LimitedNum)
	var refused *rejection
	if errors.As(pageErr, &refused) {
		return noTicketsPrefix + "(" + refused.Msg + ")", nil
	}
	if pageErr != nil && !errors.Is(pageErr, ErrPaginationExhausted) {
		return "", pageErr
	}

	warnings := record.NewWarningAggregator()
	defer warnings.LogAll(ToolInterlineTickets)
	raws := make([]ticket.RawInterline, 0, len(gathered))
	for i, it := range gathered {
		itinerary := record.FromObject(it.Fields, record.InterlineSchema)
		if !itinerary.HasKeys(record.InterlineSchema) {
			warnings.Add(record.WarningMissingKey, record.InterlineSchema.Name+"#"+strconv.Itoa(i))
			continue
		}
		raws = append(raws, ticket.RawInterline{
			Itinerary: itinerary,
			Legs:      record.FromObjects(it.FullList, record.InterlineLegSchema, warnings),
		})
	}
	infos, err := ticket.AssembleInterlines(raws, warnings)
	if err != nil {
		return "", err
	}

	infos = query.Apply(infos, req.options())
	out := formatter.NewResponseBuilder(format).Interlines(infos)
	if pageErr != nil {
		log.Printf("%s: %v (%d of %d)", ToolInterlineTickets, pageErr, len(gathered), req.LimitedNum)
		out += "\n" + fmt.Sprintf(exhaustedNotice, len(infos))
	}
	return out, nil
}

// collectInterlines pages upstream until limit itineraries are gathered or
// upstream reports no further pages. A rejected query returns a *rejection.
// Stopping short for any other reason returns what was gathered together with
// ErrPaginationExhausted.
func (s *Service) collectInterlines(ctx context.Context, cookies []*http.Cookie, q kyfw.InterlineQuery, limit int) (gathered []kyfw.InterlineItinerary, err error) {
	resultIndex := "0"
	for page := 0; len(gathered) < limit; page++ {
		if page == s.maxPages {
			return gathered, fmt.Errorf("%w: stopped after %d pages", ErrPaginationExhausted, page)
		}
		resp, err := s.upstream.QueryInterlinePage(ctx, cookies, s.lcPath, q, resultIndex)
		if err != nil {
			return nil, err
		}
		data, rejected, err := resp.Page()
		if rejected {
			return nil, &rejection{Msg: resp.ErrorMsg}
		}
		if err != nil {
			if errors.Is(err, record.ErrDecodeFailed) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: interline page %d: %w", ErrUpstreamRequestFailed, page, err)
		}

		gathered = append(gathered, data.MiddleList...)
		if data.CanQuery == "N" {
			break
		}
		if len(data.MiddleList) == 0 {
			return gathered, fmt.Errorf("%w: page %d added no itineraries", ErrPaginationExhausted, page)
		}
		resultIndex = data.ResultIndex.String()
	}
	return gathered, nil
}
