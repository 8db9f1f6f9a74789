package share

import (
	"fmt"
	"net/url"

	"github.com/newsdeck/newsdeck/internal/news"
)

// Platform identifies an external share target.
type Platform string

const (
	PlatformWhatsApp Platform = "whatsapp"
	PlatformFacebook Platform = "facebook"
	PlatformTwitter  Platform = "twitter"
	PlatformLinkedIn Platform = "linkedin"
	PlatformCopy     Platform = "copy"
)

// Platforms lists the share targets in menu order.
var Platforms = []Platform{
	PlatformWhatsApp,
	PlatformFacebook,
	PlatformTwitter,
	PlatformLinkedIn,
	PlatformCopy,
}

func (p Platform) Label() string {
	switch p {
	case PlatformWhatsApp:
		return "WhatsApp"
	case PlatformFacebook:
		return "Facebook"
	case PlatformTwitter:
		return "Twitter"
	case PlatformLinkedIn:
		return "LinkedIn"
	case PlatformCopy:
		return "Copy link"
	default:
		return string(p)
	}
}

// Link returns the URL shared for an article: its own url field when
// present, otherwise the configured dashboard page URL.
func Link(a news.Article, pageURL string) string {
	if a.URL != "" {
		return a.URL
	}
	return pageURL
}

// BuildURL constructs the platform-specific share URL for an article.
// The copy pseudo-platform has no outbound URL; use CopyLink instead.
func BuildURL(platform Platform, a news.Article, pageURL string) (string, error) {
	link := Link(a, pageURL)

	switch platform {
	case PlatformWhatsApp:
		text := fmt.Sprintf("%s - Read more at: %s", a.Title, link)
		return "https://wa.me/?text=" + url.QueryEscape(text), nil
	case PlatformFacebook:
		return "https://www.facebook.com/sharer/sharer.php?u=" + url.QueryEscape(link), nil
	case PlatformTwitter:
		return fmt.Sprintf("https://twitter.com/intent/tweet?text=%s&url=%s",
			url.QueryEscape(a.Title), url.QueryEscape(link)), nil
	case PlatformLinkedIn:
		return "https://www.linkedin.com/sharing/share-offsite/?url=" + url.QueryEscape(link), nil
	default:
		return "", fmt.Errorf("unsupported share platform: %s", platform)
	}
}
