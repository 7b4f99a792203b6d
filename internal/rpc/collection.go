package rpc

import "github.com/daniilsolovey/media-portal/internal/carousel"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewSlides(in []carousel.Slide) []Slide {
	return Map(in, NewSlide)
}

func NewFrames(in []carousel.Frame) []Frame {
	return Map(in, NewFrame)
}
