// Package news exposes Khaleej Times headlines and articles as plain records.
// Operations never return errors: failures degrade to an empty list, a
// placeholder string, or an error-flagged article.
package news

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/newsscraper/internal/extract"
)

const (
	DefaultHomepageURL    = "https://www.khaleejtimes.com/"
	DefaultListingTimeout = 10 * time.Second
	DefaultArticleTimeout = 15 * time.Second
)

// Fetcher retrieves a page body. *fetch.Client implements it.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, string, error)
}

// Options configures KhaleejTimes. Zero values fall back to the defaults.
type Options struct {
	HomepageURL    string
	ListingTimeout time.Duration
	ArticleTimeout time.Duration
	Selectors      extract.Selectors
}

// KhaleejTimes fetches and extracts Khaleej Times pages. It holds no mutable
// state and is safe for concurrent use.
type KhaleejTimes struct {
	fetcher   Fetcher
	extractor *extract.Extractor
	opts      Options
}

// New returns a KhaleejTimes source backed by f.
func New(f Fetcher, opts Options) *KhaleejTimes {
	if opts.HomepageURL == "" {
		opts.HomepageURL = DefaultHomepageURL
	}
	if opts.ListingTimeout <= 0 {
		opts.ListingTimeout = DefaultListingTimeout
	}
	if opts.ArticleTimeout <= 0 {
		opts.ArticleTimeout = DefaultArticleTimeout
	}
	if opts.Selectors == (extract.Selectors{}) {
		opts.Selectors = extract.DefaultSelectors()
	}
	return &KhaleejTimes{fetcher: f, extractor: extract.New(opts.Selectors), opts: opts}
}

// Headlines returns every homepage entry in list order, or an empty list when
// the homepage cannot be fetched or parsed.
func (k *KhaleejTimes) Headlines(ctx context.Context) (items []extract.Item) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("headline extraction aborted")
			items = []extract.Item{}
		}
	}()
	ctx, cancel := context.WithTimeout(ctx, k.opts.ListingTimeout)
	defer cancel()

	start := time.Now()
	body, _, err := k.fetcher.Get(ctx, k.opts.HomepageURL)
	if err != nil {
		log.Error().Err(err).Str("url", k.opts.HomepageURL).Msg("fetch homepage failed")
		return []extract.Item{}
	}
	items, err = k.extractor.HeadlinesFromHTML(body)
	if err != nil {
		log.Error().Err(err).Str("url", k.opts.HomepageURL).Msg("parse homepage failed")
		return []extract.Item{}
	}
	log.Debug().Int("count", len(items)).Dur("took", time.Since(start)).Msg("headlines extracted")
	return items
}

// Headline returns the lead headline, with its subtitle when present, or
// extract.NoHeadlinesFound.
func (k *KhaleejTimes) Headline(ctx context.Context) string {
	return extract.LatestHeadline(k.Headlines(ctx))
}

// Article fetches url and extracts the article body. Any failure is reported
// through the record's Error field.
func (k *KhaleejTimes) Article(ctx context.Context, url string) (out extract.ArticleContent) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("url", url).Msg("article extraction aborted")
			out = extract.FailedArticle(fmt.Errorf("%v", r))
		}
	}()
	ctx, cancel := context.WithTimeout(ctx, k.opts.ArticleTimeout)
	defer cancel()

	body, _, err := k.fetcher.Get(ctx, url)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("fetch article failed")
		return extract.FailedArticle(err)
	}
	out = k.extractor.ArticleFromHTML(body)
	if out.Failed() {
		log.Error().Str("error", *out.Error).Str("url", url).Msg("parse article failed")
	}
	return out
}

// HomepageURL returns the listing URL in use.
func (k *KhaleejTimes) HomepageURL() string { return k.opts.HomepageURL }
