package pythonorg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/metafates/gache"
	"github.com/pwalch/lonesnake-release/constant"
	"github.com/pwalch/lonesnake-release/filesystem"
	"github.com/pwalch/lonesnake-release/log"
	"github.com/pwalch/lonesnake-release/network"
	"github.com/pwalch/lonesnake-release/util"
	"github.com/pwalch/lonesnake-release/where"
	"golang.org/x/net/html/charset"
)

// ErrStatus reports a non-2xx response from the downloads page.
var ErrStatus = errors.New("unexpected response status")

// cachedPage is the on-disk form of a previously fetched downloads page.
type cachedPage struct {
	URL  string `json:"url"`
	HTML string `json:"html"`
}

func pageCacher(lifetime time.Duration) *gache.Cache[*cachedPage] {
	return gache.New[*cachedPage](&gache.Options{
		Path:       where.DownloadsCache(),
		Lifetime:   lifetime,
		FileSystem: &filesystem.GacheFs{},
	})
}

// Fetch downloads the page at url and returns its body decoded to UTF-8.
// With a positive cacheLifetime, a page fetched from the same url within that lifetime is reused.
func Fetch(ctx context.Context, url string, cacheLifetime time.Duration) (string, error) {
	if cacheLifetime <= 0 {
		return get(ctx, url)
	}

	cacher := pageCacher(cacheLifetime)
	page, expired, err := cacher.Get()
	if err == nil && !expired && page != nil && page.URL == url {
		log.Debugf("using cached downloads page for %s", url)
		return page.HTML, nil
	}

	body, err := get(ctx, url)
	if err != nil {
		return "", err
	}

	if err := cacher.Set(&cachedPage{URL: url, HTML: body}); err != nil {
		log.Warnf("could not cache downloads page: %v", err)
	}

	return body, nil
}

func get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	log.Infof("fetching %s", url)
	resp, err := network.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}

	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: GET %s returned %s", ErrStatus, url, resp.Status)
	}

	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", url, err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}

	return string(body), nil
}
