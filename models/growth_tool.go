package models

import (
	"fmt"
	"time"
)

type GrowthToolKind string

const (
	GrowthToolLinkInBio     GrowthToolKind = "link_in_bio"
	GrowthToolQrCode        GrowthToolKind = "qr_code"
	GrowthToolCommentMagnet GrowthToolKind = "comment_magnet"
)

// GrowthToolConfig is a closed tagged variant keyed by the owning tool's
// kind, stored as jsonb.
type GrowthToolConfig struct {
	// link_in_bio
	Links []GrowthToolLink `json:"links,omitempty"`

	// qr_code
	TargetUrl string `json:"target_url,omitempty"`

	// comment_magnet
	PostUrl string `json:"post_url,omitempty"`
	Keyword string `json:"keyword,omitempty"`
}

type GrowthToolLink struct {
	Label string `json:"label"`
	Url   string `json:"url"`
}

func (c GrowthToolConfig) Validate(kind GrowthToolKind) error {
	switch kind {
	case GrowthToolLinkInBio:
		if len(c.Links) == 0 {
			return fmt.Errorf("link_in_bio tool requires at least one link: %w", BadParameterError)
		}
		for i, link := range c.Links {
			if link.Label == "" || link.Url == "" {
				return fmt.Errorf("link %d requires a label and a url: %w", i, BadParameterError)
			}
		}
	case GrowthToolQrCode:
		if c.TargetUrl == "" {
			return fmt.Errorf("qr_code tool requires a target url: %w", BadParameterError)
		}
	case GrowthToolCommentMagnet:
		if c.PostUrl == "" || c.Keyword == "" {
			return fmt.Errorf("comment_magnet tool requires a post url and a keyword: %w", BadParameterError)
		}
	default:
		return fmt.Errorf("unknown growth tool kind %q: %w", kind, BadParameterError)
	}
	return nil
}

type GrowthTool struct {
	Id          string
	UserId      string
	Name        string
	Kind        GrowthToolKind
	Config      GrowthToolConfig
	Active      bool
	Clicks      int
	Conversions int

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateGrowthToolInput struct {
	UserId string
	Name   string
	Kind   GrowthToolKind
	Config GrowthToolConfig
	Active bool
}

type UpdateGrowthToolInput struct {
	Id     string
	Name   *string
	Config *GrowthToolConfig
	Active *bool
}
