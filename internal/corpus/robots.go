package corpus

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/temoto/robotstxt"
)

// robotsChecker verifies robots.txt before a mirror is fetched. Results are
// cached per host; the mirror list is short and the fetch path is
// single-threaded, so a plain map suffices.
type robotsChecker struct {
	byHost     map[string]*robotstxt.RobotsData
	httpClient *http.Client
	userAgent  string
}

func newRobotsChecker(userAgent string, timeout time.Duration) *robotsChecker {
	return &robotsChecker{
		byHost:     make(map[string]*robotstxt.RobotsData),
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
	}
}

// canFetch reports whether robots.txt permits fetching rawURL. An
// unreachable robots.txt allows the fetch by default.
func (r *robotsChecker) canFetch(ctx context.Context, rawURL string) (bool, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false, fmt.Errorf("parse URL: %w", err)
	}

	data, ok := r.byHost[parsed.Host]
	if !ok {
		robotsURL := fmt.Sprintf("%s://%s/robots.txt", parsed.Scheme, parsed.Host)
		data, err = r.fetchRobots(ctx, robotsURL)
		if err != nil {
			return true, nil
		}
		r.byHost[parsed.Host] = data
	}

	return data.TestAgent(parsed.Path, r.userAgent), nil
}

func (r *robotsChecker) fetchRobots(ctx context.Context, robotsURL string) (*robotstxt.RobotsData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch robots.txt: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		// No robots.txt means everything is allowed
		return robotstxt.FromStatusAndBytes(http.StatusNotFound, nil)
	}

	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("parse robots.txt: %w", err)
	}
	return data, nil
}
