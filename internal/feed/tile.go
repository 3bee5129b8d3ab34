package feed

import "strconv"

// FallbackImageURL replaces any tile image that cannot be loaded.
const FallbackImageURL = "https://images.unsplash.com/photo-1581092160562-40aa08e78837?auto=format&fit=crop&q=80&w=800"

// Tile is the display form of a post.
type Tile struct {
	ID       string
	ImageURL string
	Link     string
	IsVideo  bool
	Likes    string
}

func NewTile(p Post) Tile {
	t := Tile{
		ID:       p.ID,
		ImageURL: p.ImageURL(),
		Link:     p.Link(),
		IsVideo:  p.IsVideo(),
	}
	if t.ImageURL == "" {
		t.ImageURL = FallbackImageURL
	}
	// zero likes render blank, same as a missing count
	if p.LikeCount != nil && *p.LikeCount > 0 {
		t.Likes = strconv.Itoa(*p.LikeCount)
	}
	return t
}

// Tiles converts posts to tiles, preserving order.
func Tiles(posts []Post) []Tile {
	tiles := make([]Tile, 0, len(posts))
	for _, p := range posts {
		tiles = append(tiles, NewTile(p))
	}
	return tiles
}
