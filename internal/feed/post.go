package feed

import "fmt"

// MediaType is the Instagram media kind reported by the aggregator.
type MediaType string

const (
	MediaTypeImage    MediaType = "IMAGE"
	MediaTypeVideo    MediaType = "VIDEO"
	MediaTypeCarousel MediaType = "CAROUSEL_ALBUM"
)

// ProfileURL is the base used to build a permalink when the aggregator omits one.
const ProfileURL = "https://www.instagram.com"

// Post is one social post after field-name normalization.
type Post struct {
	ID           string    `json:"id"`
	MediaURL     string    `json:"mediaUrl,omitempty"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	Permalink    string    `json:"permalink,omitempty"`
	LikeCount    *int      `json:"likeCount,omitempty"`
	MediaType    MediaType `json:"mediaType,omitempty"`
}

// IsVideo reports whether the post should render with a play overlay.
func (p Post) IsVideo() bool {
	return p.MediaType == MediaTypeVideo
}

// ImageURL returns the image to display: the thumbnail for videos (falling
// back to the media URL), the media URL otherwise.
func (p Post) ImageURL() string {
	if p.IsVideo() && p.ThumbnailURL != "" {
		return p.ThumbnailURL
	}
	return p.MediaURL
}

// Link returns the permalink, or one constructed from the post ID.
func (p Post) Link() string {
	if p.Permalink != "" {
		return p.Permalink
	}
	return fmt.Sprintf("%s/p/%s", ProfileURL, p.ID)
}
