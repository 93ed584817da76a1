package extract

import (
	"fmt"
	"sort"
	"strings"

	"github.com/andybalholm/cascadia"
)

// Selectors maps every structural marker the extractors rely on to a CSS
// selector. Site layout changes are handled by editing these values.
type Selectors struct {
	MainTeaser   string `yaml:"main_teaser" json:"main_teaser"`
	MainHeading  string `yaml:"main_heading" json:"main_heading"`
	MainSubtitle string `yaml:"main_subtitle" json:"main_subtitle"`

	ArticleContainer string `yaml:"article_container" json:"article_container"`
	PopularSection   string `yaml:"popular_section" json:"popular_section"`
	TitledAnchor     string `yaml:"titled_anchor" json:"titled_anchor"`

	CardItem    string `yaml:"card_item" json:"card_item"`
	CardContent string `yaml:"card_content" json:"card_content"`
	CardHeading string `yaml:"card_heading" json:"card_heading"`
	CardBody    string `yaml:"card_body" json:"card_body"`
	CardTime    string `yaml:"card_time" json:"card_time"`

	TimelineCard     string `yaml:"timeline_card" json:"timeline_card"`
	TimelineTitleRow string `yaml:"timeline_title_row" json:"timeline_title_row"`
	TimelineStamp    string `yaml:"timeline_stamp" json:"timeline_stamp"`
	TimelineTime     string `yaml:"timeline_time" json:"timeline_time"`
	TimelineDate     string `yaml:"timeline_date" json:"timeline_date"`
	TimelineHeading  string `yaml:"timeline_heading" json:"timeline_heading"`

	ArticleTitle   string `yaml:"article_title" json:"article_title"`
	ArticleBody    string `yaml:"article_body" json:"article_body"`
	ArticleDetails string `yaml:"article_details" json:"article_details"`
	ArticleAuthor  string `yaml:"article_author" json:"article_author"`
	ArticleDate    string `yaml:"article_date" json:"article_date"`
}

// DefaultSelectors returns the Khaleej Times homepage and article layout.
func DefaultSelectors() Selectors {
	return Selectors{
		MainTeaser:   "div.main-top-teaser-content",
		MainHeading:  "h1",
		MainSubtitle: "p",

		ArticleContainer: "div.rendered_board_article",
		PopularSection:   "div.most-popuplar-ongoing-viral-outer",
		TitledAnchor:     "a[title]",

		CardItem:    "li.rcnt-evntPost",
		CardContent: "div.evnt-content",
		CardHeading: "h2",
		CardBody:    "div",
		CardTime:    "span.tme-evnt",

		TimelineCard:     "div.card-box",
		TimelineTitleRow: "div.post-title-rows",
		TimelineStamp:    "div.time-stmp",
		TimelineTime:     "span.tme-evnt",
		TimelineDate:     "span.date-evnt",
		TimelineHeading:  "h4",

		ArticleTitle:   "h1.article-title",
		ArticleBody:    "div.article-center-wrap-nf",
		ArticleDetails: "div.details",
		ArticleAuthor:  "h4",
		ArticleDate:    "time",
	}
}

// fields exposes the selectors by their config key.
func (s *Selectors) fields() map[string]*string {
	return map[string]*string{
		"main_teaser":        &s.MainTeaser,
		"main_heading":       &s.MainHeading,
		"main_subtitle":      &s.MainSubtitle,
		"article_container":  &s.ArticleContainer,
		"popular_section":    &s.PopularSection,
		"titled_anchor":      &s.TitledAnchor,
		"card_item":          &s.CardItem,
		"card_content":       &s.CardContent,
		"card_heading":       &s.CardHeading,
		"card_body":          &s.CardBody,
		"card_time":          &s.CardTime,
		"timeline_card":      &s.TimelineCard,
		"timeline_title_row": &s.TimelineTitleRow,
		"timeline_stamp":     &s.TimelineStamp,
		"timeline_time":      &s.TimelineTime,
		"timeline_date":      &s.TimelineDate,
		"timeline_heading":   &s.TimelineHeading,
		"article_title":      &s.ArticleTitle,
		"article_body":       &s.ArticleBody,
		"article_details":    &s.ArticleDetails,
		"article_author":     &s.ArticleAuthor,
		"article_date":       &s.ArticleDate,
	}
}

// WithOverrides returns a copy of s with the given keys replaced. Unknown keys
// are an error so that typos in configuration do not go unnoticed.
func (s Selectors) WithOverrides(overrides map[string]string) (Selectors, error) {
	out := s
	fields := out.fields()
	for key, val := range overrides {
		ptr, ok := fields[strings.TrimSpace(key)]
		if !ok {
			return s, fmt.Errorf("unknown selector key %q", key)
		}
		*ptr = strings.TrimSpace(val)
	}
	return out, nil
}

// Validate checks that every selector is set and compiles.
func (s Selectors) Validate() error {
	fields := s.fields()
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := *fields[k]
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("selector %s is empty", k)
		}
		if _, err := cascadia.Compile(v); err != nil {
			return fmt.Errorf("selector %s: %w", k, err)
		}
	}
	return nil
}
