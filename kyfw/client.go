package kyfw

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/theoremus-urban-solutions/rail-ticket-query/record"
)

var (
	// ErrRequestFailed marks transport failures, non-200 answers and empty bodies.
	ErrRequestFailed = errors.New("upstream request failed")
	// ErrAuthFailed marks a failed session cookie acquisition.
	ErrAuthFailed = errors.New("upstream session cookie unavailable")

	errEmptyData = errors.New("response has no data")
)

// Default upstream locations.
const (
	DefaultAPIBase        = "https://kyfw.12306.cn"
	DefaultSearchAPIBase  = "https://search.12306.cn"
	DefaultWebURL         = "https://www.12306.cn/index/"
	DefaultLCQueryInitURL = "https://kyfw.12306.cn/otn/lcQuery/init"
	DefaultUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	DefaultTimeout        = 10 * time.Second
)

var (
	stationScriptRe = regexp.MustCompile(`.(/script/core/common/station_name.+?\.js)`)
	lcSearchURLRe   = regexp.MustCompile(` var lc_search_url = '(.+?)'`)
)

// Options configure a Client. Empty fields take the defaults.
type Options struct {
	APIBase        string
	SearchAPIBase  string
	WebURL         string
	LCQueryInitURL string
	UserAgent      string
	Timeout        time.Duration
}

// Client talks to the 12306 endpoints.
type Client struct {
	httpClient *http.Client
	opts       Options
}

// NewClient creates a client with the given options.
func NewClient(opts Options) *Client {
	if opts.APIBase == "" {
		opts.APIBase = DefaultAPIBase
	}
	if opts.SearchAPIBase == "" {
		opts.SearchAPIBase = DefaultSearchAPIBase
	}
	if opts.WebURL == "" {
		opts.WebURL = DefaultWebURL
	}
	if opts.LCQueryInitURL == "" {
		opts.LCQueryInitURL = DefaultLCQueryInitURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		opts:       opts,
	}
}

// Fetch performs a GET and returns the body. Cookies may be nil.
func (c *Client) Fetch(ctx context.Context, rawURL string, params url.Values, cookies []*http.Cookie) ([]byte, error) {
	resp, err := c.get(ctx, rawURL, params, cookies)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrRequestFailed, rawURL, err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty body from %s", ErrRequestFailed, rawURL)
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, rawURL string, params url.Values, cookies []*http.Cookie) (*http.Response, error) {
	target := rawURL
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request for %s: %v", ErrRequestFailed, rawURL, err)
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch %s: %v", ErrRequestFailed, rawURL, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: HTTP %d from %s", ErrRequestFailed, resp.StatusCode, rawURL)
	}
	return resp, nil
}

func (c *Client) fetchJSON(ctx context.Context, rawURL string, params url.Values, cookies []*http.Cookie, v any) error {
	body, err := c.Fetch(ctx, rawURL, params, cookies)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %s: %v", record.ErrDecodeFailed, rawURL, err)
	}
	return nil
}

// FetchCookies opens the left-ticket page and returns the session cookies it
// sets.
func (c *Client) FetchCookies(ctx context.Context) ([]*http.Cookie, error) {
	target := c.opts.APIBase + "/otn/leftTicket/init"
	resp, err := c.get(ctx, target, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	cookies := resp.Cookies()
	if len(cookies) == 0 {
		return nil, fmt.Errorf("%w: no Set-Cookie from %s", ErrAuthFailed, target)
	}
	return cookies, nil
}

// QueryLeftTickets returns the direct trains between two telecodes on date
// (yyyy-MM-dd).
func (c *Client) QueryLeftTickets(ctx context.Context, cookies []*http.Cookie, date, from, to string) (*LeftTicketData, error) {
	params := url.Values{
		"leftTicketDTO.train_date":   {date},
		"leftTicketDTO.from_station": {from},
		"leftTicketDTO.to_station":   {to},
		"purpose_codes":              {"ADULT"},
	}
	var resp LeftTicketResponse
	if err := c.fetchJSON(ctx, c.opts.APIBase+"/otn/leftTicket/query", params, cookies, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("%w: left ticket query: %v", ErrRequestFailed, errEmptyData)
	}
	return resp.Data, nil
}

// InterlineQuery holds the parameters of one interline query.
type InterlineQuery struct {
	Date          string
	FromStation   string
	ToStation     string
	MiddleStation string
	ShowWZ        bool
}

func (q InterlineQuery) values(resultIndex string) url.Values {
	showWZ := "N"
	if q.ShowWZ {
		showWZ = "Y"
	}
	return url.Values{
		"train_date":            {q.Date},
		"from_station_telecode": {q.FromStation},
		"to_station_telecode":   {q.ToStation},
		"middle_station":        {q.MiddleStation},
		"result_index":          {resultIndex},
		"can_query":             {"Y"},
		"isShowWZ":              {showWZ},
		"purpose_codes":         {"00"},
		"channel":               {"E"},
	}
}

// QueryInterlinePage fetches one page of itineraries from the scraped path
// starting at resultIndex.
func (c *Client) QueryInterlinePage(ctx context.Context, cookies []*http.Cookie, path string, q InterlineQuery, resultIndex string) (*InterlineResponse, error) {
	var resp InterlineResponse
	if err := c.fetchJSON(ctx, c.opts.APIBase+path, q.values(resultIndex), cookies, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchTrain resolves a train code on a date (yyyyMMdd) to its train
// instances. An empty slice means no match.
func (c *Client) SearchTrain(ctx context.Context, trainCode, date string) ([]TrainSearchHit, error) {
	params := url.Values{"keyword": {trainCode}, "date": {date}}
	var resp TrainSearchResponse
	if err := c.fetchJSON(ctx, c.opts.SearchAPIBase+"/search/v1/train/search", params, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// QueryTrainRoute returns the stop objects of a train instance on date
// (yyyy-MM-dd).
func (c *Client) QueryTrainRoute(ctx context.Context, cookies []*http.Cookie, trainNo, date string) ([]map[string]any, error) {
	params := url.Values{
		"leftTicketDTO.train_no":   {trainNo},
		"leftTicketDTO.train_date": {date},
		"rand_code":                {""},
	}
	var resp RouteResponse
	if err := c.fetchJSON(ctx, c.opts.APIBase+"/otn/queryTrainInfo/query", params, cookies, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("%w: train route query: %v", ErrRequestFailed, errEmptyData)
	}
	return resp.Data.Data, nil
}

// FetchLCQueryPath scrapes the interline query path from the lcQuery page.
func (c *Client) FetchLCQueryPath(ctx context.Context) (string, error) {
	body, err := c.Fetch(ctx, c.opts.LCQueryInitURL, nil, nil)
	if err != nil {
		return "", err
	}
	m := lcSearchURLRe.FindSubmatch(body)
	if m == nil {
		return "", fmt.Errorf("%w: lc_search_url not found in %s", record.ErrDecodeFailed, c.opts.LCQueryInitURL)
	}
	return string(m[1]), nil
}

// FetchStationScript locates the station_names script on the home page and
// returns its text.
func (c *Client) FetchStationScript(ctx context.Context) (string, error) {
	body, err := c.Fetch(ctx, c.opts.WebURL, nil, nil)
	if err != nil {
		return "", err
	}
	m := stationScriptRe.FindSubmatch(body)
	if m == nil {
		return "", fmt.Errorf("%w: station_name script not referenced by %s", record.ErrDecodeFailed, c.opts.WebURL)
	}
	base, err := url.Parse(c.opts.WebURL)
	if err != nil {
		return "", fmt.Errorf("%w: web url %q: %v", ErrRequestFailed, c.opts.WebURL, err)
	}
	ref, err := url.Parse(string(m[1]))
	if err != nil {
		return "", fmt.Errorf("%w: script path %q: %v", record.ErrDecodeFailed, m[1], err)
	}
	script, err := c.Fetch(ctx, base.ResolveReference(ref).String(), nil, nil)
	if err != nil {
		return "", err
	}
	return string(script), nil
}
