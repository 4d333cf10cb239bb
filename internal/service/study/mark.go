package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/vocab-builder/internal/domain"
)

// MarkCorrect records a correct answer for a displayed word. Every headword
// it resolves to gets count+1 and lastCorrect=today, the set is saved once,
// and the shown items of those headwords leave the selection. A word that
// resolves to nothing is ignored. The resolved headwords are returned.
func (s *Service) MarkCorrect(ctx context.Context, sess *Session, displayed string) ([]string, error) {
	set, err := s.vocab.Load(ctx, sess.Pair)
	if err != nil {
		return nil, err
	}

	heads := ResolveHeadwords(set, sess.Options.WordOrder, displayed)
	if len(heads) == 0 {
		s.log.InfoContext(ctx, "mark correct: word not resolved", slog.String("word", displayed))
		return nil, nil
	}

	today := s.today()
	for _, h := range heads {
		e, _ := set.Entry(h)
		e.MarkCorrect(today)
	}
	if err := s.vocab.Save(ctx, sess.Pair, set); err != nil {
		return nil, fmt.Errorf("mark correct: %w", err)
	}

	for _, h := range heads {
		e, _ := set.Entry(h)
		for _, item := range project(h, e, sess.Options.WordOrder) {
			sess.Selected = removeFirst(sess.Selected, item)
		}
	}

	s.log.InfoContext(ctx, "marked correct",
		slog.String("word", displayed),
		slog.Any("headwords", heads),
		slog.Int("remaining", len(sess.Selected)),
	)
	return heads, nil
}

// Answer returns the saved counterpart of a displayed word in the session's
// word order. It returns domain.ErrNotFound when the word resolves to
// nothing.
func (s *Service) Answer(ctx context.Context, sess *Session, displayed string) (string, error) {
	set, err := s.vocab.Load(ctx, sess.Pair)
	if err != nil {
		return "", err
	}
	ans := Answer(set, sess.Options.WordOrder, displayed)
	if ans == "" {
		return "", fmt.Errorf("word %q: %w", displayed, domain.ErrNotFound)
	}
	return ans, nil
}

func removeFirst(items []string, w string) []string {
	for i, it := range items {
		if it == w {
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}
