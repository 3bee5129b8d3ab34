package feed

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxPosts is the number of tiles the feed panel shows.
const MaxPosts = 4

var ErrMalformedFeed = errors.New("malformed feed")

// field aliases, current convention first
var (
	mediaURLKeys     = []string{"mediaUrl", "media_url"}
	thumbnailURLKeys = []string{"thumbnailUrl", "thumbnail_url"}
	mediaTypeKeys    = []string{"mediaType", "media_type"}
	likeCountKeys    = []string{"likeCount", "like_count"}
)

// Normalize maps one loosely-typed post record onto Post. Both the camelCase
// and snake_case conventions are accepted; when both are present the
// camelCase value wins.
func Normalize(raw map[string]any) Post {
	p := Post{
		ID:           stringField(raw, "id"),
		MediaURL:     stringField(raw, mediaURLKeys...),
		ThumbnailURL: stringField(raw, thumbnailURLKeys...),
		Permalink:    stringField(raw, "permalink"),
		MediaType:    MediaType(strings.ToUpper(stringField(raw, mediaTypeKeys...))),
	}
	if n, ok := intField(raw, likeCountKeys...); ok {
		p.LikeCount = &n
	}
	return p
}

// Decode parses an aggregator response. The body is either a bare array of
// posts or an object carrying a "posts" array; an object without "posts"
// decodes to an empty list.
func Decode(body []byte) ([]Post, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrMalformedFeed)
	}

	var items []json.RawMessage
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedFeed, err)
		}
	case '{':
		var envelope struct {
			Posts []json.RawMessage `json:"posts"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedFeed, err)
		}
		items = envelope.Posts
	default:
		return nil, fmt.Errorf("%w: unexpected %q", ErrMalformedFeed, trimmed[0])
	}

	posts := make([]Post, 0, len(items))
	for _, item := range items {
		// UseNumber keeps 17+ digit media IDs exact
		dec := json.NewDecoder(bytes.NewReader(item))
		dec.UseNumber()
		var raw map[string]any
		if err := dec.Decode(&raw); err != nil || raw == nil {
			// non-object entries carry nothing renderable
			continue
		}
		posts = append(posts, Normalize(raw))
	}
	return posts, nil
}

// Truncate returns at most n posts in received order.
func Truncate(posts []Post, n int) []Post {
	if n < 0 {
		n = 0
	}
	if len(posts) > n {
		return posts[:n]
	}
	return posts
}

func stringField(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := raw[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case json.Number:
			return v.String()
		}
	}
	return ""
}

func intField(raw map[string]any, keys ...string) (int, bool) {
	for _, key := range keys {
		switch v := raw[key].(type) {
		case float64:
			if v >= 0 && v <= math.MaxInt32 {
				return int(v), true
			}
		case json.Number:
			if n, err := strconv.ParseInt(v.String(), 10, 64); err == nil && n >= 0 && n <= math.MaxInt32 {
				return int(n), true
			}
			if f, err := v.Float64(); err == nil && f >= 0 && f <= math.MaxInt32 {
				return int(f), true
			}
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n >= 0 {
				return n, true
			}
		}
	}
	return 0, false
}
