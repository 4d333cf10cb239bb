package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/vocab-builder/internal/domain"
)

// State is where a Session is in its lifecycle.
type State string

const (
	StateIdle      State = "idle"
	StateSelected  State = "selected"
	StateExhausted State = "exhausted"
)

// Session is the transient review state for one language pair. It is never
// persisted.
type Session struct {
	Pair          domain.LangPair
	Options       Options
	Selected      []string
	SelectedCount int

	selectedOnce bool
}

// NewSession creates an idle session.
func NewSession(pair domain.LangPair, opts Options) (*Session, error) {
	if err := pair.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Session{Pair: pair, Options: opts}, nil
}

// State reports the lifecycle state.
func (s *Session) State() State {
	switch {
	case !s.selectedOnce:
		return StateIdle
	case len(s.Selected) == 0:
		return StateExhausted
	default:
		return StateSelected
	}
}

// Card is one drawn word with progress counters.
type Card struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
	Size  int    `json:"size"`
}

// Select recomputes the selection from the stored set, resets the draw
// counter and returns the selection size.
func (s *Service) Select(ctx context.Context, sess *Session) (int, error) {
	set, err := s.vocab.Load(ctx, sess.Pair)
	if err != nil {
		return 0, err
	}

	sess.Selected = SelectWords(set, sess.Options, s.today())
	sess.SelectedCount = 0
	sess.selectedOnce = true

	s.log.InfoContext(ctx, "words selected",
		slog.String("pair", sess.Pair.String()),
		slog.String("word_order", sess.Options.WordOrder.String()),
		slog.String("part", sess.Options.Part.String()),
		slog.Int("count", len(sess.Selected)),
	)
	return len(sess.Selected), nil
}

// NextWord draws a uniformly random word from the selection, with
// replacement. ok is false when the selection is empty.
func (s *Service) NextWord(sess *Session) (Card, bool) {
	if len(sess.Selected) == 0 {
		return Card{}, false
	}
	sess.SelectedCount++
	return Card{
		Text:  sess.Selected[s.intn(len(sess.Selected))],
		Count: sess.SelectedCount,
		Size:  len(sess.Selected),
	}, true
}

// SetWordOrder switches the shown language and reselects.
func (s *Service) SetWordOrder(ctx context.Context, sess *Session, order domain.WordOrder) (int, error) {
	if !order.IsValid() {
		return 0, domain.NewValidationError("word_order", fmt.Sprintf("unknown value %q", order))
	}
	sess.Options.WordOrder = order
	return s.Select(ctx, sess)
}

// SetPart changes the part-of-speech filter and reselects.
func (s *Service) SetPart(ctx context.Context, sess *Session, part domain.PartFilter) (int, error) {
	sess.Options.Part = part
	return s.Select(ctx, sess)
}
