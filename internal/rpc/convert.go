package rpc

import (
	"github.com/daniilsolovey/media-portal/internal/carousel"
	"github.com/daniilsolovey/media-portal/internal/display"
)

func NewSlide(s carousel.Slide) Slide {
	return Slide{
		ID:       s.ID,
		ImageURL: s.ImageURL,
		Title:    s.Title,
		Label:    s.Label,
		Caption:  s.Caption,
		Link:     s.Link,
		Badge:    s.Badge,
	}
}

func NewFrame(f carousel.Frame) Frame {
	return Frame{
		Name:     f.Name,
		State:    f.State,
		Index:    f.Index,
		Pages:    f.Pages,
		DelayMS:  f.DelayMS,
		Autoplay: f.Autoplay,
		Visible:  NewSlides(f.Visible),
		Slides:   NewSlides(f.Slides),
	}
}

func NewBoard(b *display.Board) *Board {
	return &Board{
		BoardID: b.ID,
		Layout:  b.Layout,
		Locale:  b.Locale,
		Frames:  NewFrames(b.Frames()),
	}
}
