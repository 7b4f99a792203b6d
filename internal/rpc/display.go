package rpc

import (
	"context"
	"errors"

	"github.com/daniilsolovey/media-portal/internal/display"
	"github.com/daniilsolovey/media-portal/internal/portal"
	"github.com/vmkteam/zenrpc/v2"
)

//go:generate zenrpc

// DisplayService drives kiosk boards: a board is mounted once, then polled
// for frames until it is unmounted or stops polling.
type DisplayService struct {
	zenrpc.Service
	registry *display.Registry
}

func NewDisplayService(registry *display.Registry) *DisplayService {
	return &DisplayService{registry: registry}
}

// Mount starts the sliders of a layout and returns the new board with its
// initial frames.
//
//zenrpc:layout="display" layout name: display, compact or home
//zenrpc:locale="uz" site locale used in slide links
//zenrpc:return mounted board
//zenrpc:400 unknown layout or locale
//zenrpc:429 too many boards mounted
func (s *DisplayService) Mount(ctx context.Context, layout, locale string) (*Board, error) {
	if !portal.IsLocale(locale) {
		return nil, zenrpc.NewStringError(400, "unknown locale")
	}

	b, err := s.registry.Mount(layout, locale)
	if err != nil {
		return nil, newError(err)
	}

	return NewBoard(b), nil
}

// Frames returns the current frame of every slider on the board. Polling
// keeps the board alive.
//
//zenrpc:boardId board ID returned by mount
//zenrpc:return frames in layout order
//zenrpc:404 board not found
func (s *DisplayService) Frames(ctx context.Context, boardId string) ([]Frame, error) {
	frames, err := s.registry.Frames(boardId)
	if err != nil {
		return nil, newError(err)
	}

	return NewFrames(frames), nil
}

// Interact forwards a user action to one slider of the board.
//
//zenrpc:boardId board ID returned by mount
//zenrpc:slider slider name
//zenrpc:action one of interact, enter, leave, next
//zenrpc:return slider frame after the action
//zenrpc:400 unknown action
//zenrpc:404 board or slider not found
func (s *DisplayService) Interact(ctx context.Context, boardId, slider, action string) (*Frame, error) {
	f, err := s.registry.Interact(boardId, slider, display.Action(action))
	if err != nil {
		return nil, newError(err)
	}

	frame := NewFrame(f)
	return &frame, nil
}

// Unmount stops the board's sliders.
//
//zenrpc:boardId board ID returned by mount
//zenrpc:return true when the board was unmounted
//zenrpc:404 board not found
func (s *DisplayService) Unmount(ctx context.Context, boardId string) (bool, error) {
	if err := s.registry.Unmount(boardId); err != nil {
		return false, newError(err)
	}

	return true, nil
}

func newError(err error) error {
	switch {
	case errors.Is(err, display.ErrBoardNotFound), errors.Is(err, display.ErrSliderNotFound):
		return zenrpc.NewStringError(404, err.Error())
	case errors.Is(err, display.ErrLayoutNotFound), errors.Is(err, display.ErrUnknownAction):
		return zenrpc.NewStringError(400, err.Error())
	case errors.Is(err, display.ErrTooManyBoards):
		return zenrpc.NewStringError(429, err.Error())
	}
	return err
}
