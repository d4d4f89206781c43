package tui

import (
	"fmt"

	"github.com/MKhiriev/go-travel-journal/models"
)

// carousel steps through the photos of one memory. Stepping wraps around
// both ends.
type carousel struct {
	images []string
	idx    int
}

func newCarousel(entry models.TripEntry) carousel {
	return carousel{images: carouselImages(entry.CoverImage(), entry.ImageURLs)}
}

// carouselImages lists the cover first, followed by the other photos, each
// URL once.
func carouselImages(cover string, urls []string) []string {
	seen := make(map[string]struct{}, len(urls)+1)
	out := make([]string, 0, len(urls)+1)
	for _, u := range append([]string{cover}, urls...) {
		if u == "" {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}

func (c *carousel) next() {
	if len(c.images) == 0 {
		return
	}
	c.idx = (c.idx + 1) % len(c.images)
}

func (c *carousel) prev() {
	if len(c.images) == 0 {
		return
	}
	c.idx = (c.idx - 1 + len(c.images)) % len(c.images)
}

func (c carousel) current() (string, bool) {
	if len(c.images) == 0 {
		return "", false
	}
	return c.images[c.idx], true
}

// position is the "2 / 5" indicator, empty without photos.
func (c carousel) position() string {
	if len(c.images) == 0 {
		return ""
	}
	return fmt.Sprintf("%d / %d", c.idx+1, len(c.images))
}
