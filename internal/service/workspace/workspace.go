package workspace

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/vocab-builder/internal/domain"
	"github.com/heartmarshall/vocab-builder/internal/service/study"
)

// OpenInput describes the workspace to open. From is the known language,
// To the studied one; both accept anything ResolveLanguage does.
type OpenInput struct {
	From    string
	To      string
	Options study.Options
	Lookup  bool
}

// Open resolves the languages, creates the set if it does not exist yet and
// returns a workspace whose session already holds a selection.
func (s *Service) Open(ctx context.Context, in OpenInput) (*Workspace, error) {
	from, err := s.ResolveLanguage(ctx, in.From)
	if err != nil {
		return nil, fieldError(err, "from_lang")
	}
	to, err := s.ResolveLanguage(ctx, in.To)
	if err != nil {
		return nil, fieldError(err, "to_lang")
	}

	pair := domain.LangPair{From: from.Code, To: to.Code}
	sess, err := study.NewSession(pair, in.Options)
	if err != nil {
		return nil, err
	}

	meta := domain.NewMeta(pair, from.Name, to.Name)
	if _, err := s.vocab.InitializeIfAbsent(ctx, meta); err != nil {
		return nil, err
	}

	ws := &Workspace{Meta: meta, Session: sess, Lookup: in.Lookup}
	n, err := s.study.Select(ctx, sess)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "workspace opened",
		slog.String("pair", pair.String()),
		slog.Bool("lookup", in.Lookup),
		slog.Int("selected", n),
	)
	return ws, nil
}

// Translation is the answer to a lookup.
type Translation struct {
	Result string `json:"result"`
	Saved  bool   `json:"saved"`
}

// Translate translates word between two languages. When the languages are
// the workspace's pair and the word is already stored, the saved
// counterpart is returned without calling the provider.
func (s *Service) Translate(ctx context.Context, ws *Workspace, word, fromLang, toLang string) (Translation, error) {
	if ws == nil {
		return Translation{}, domain.ErrNotInitialized
	}
	word = strings.TrimSpace(word)
	if word == "" {
		return Translation{}, domain.NewValidationError("word", "required")
	}

	from, err := s.ResolveLanguage(ctx, fromLang)
	if err != nil {
		return Translation{}, fieldError(err, "from_lang")
	}
	to, err := s.ResolveLanguage(ctx, toLang)
	if err != nil {
		return Translation{}, fieldError(err, "to_lang")
	}

	if saved, ok, err := s.saved(ctx, ws, word, from.Code, to.Code); err != nil {
		return Translation{}, err
	} else if ok {
		return Translation{Result: saved, Saved: true}, nil
	}

	if !ws.Lookup {
		return Translation{}, fmt.Errorf("lookup disabled: %w", domain.ErrProviderUnavailable)
	}

	out, err := s.provider.Translate(ctx, from.Code, to.Code, word)
	if err != nil {
		return Translation{}, err
	}
	return Translation{Result: out}, nil
}

// saved looks word up in the stored set when from/to match the pair in
// either direction.
func (s *Service) saved(ctx context.Context, ws *Workspace, word, from, to string) (string, bool, error) {
	pair := ws.Pair()

	var order domain.WordOrder
	switch {
	case from == pair.To && to == pair.From:
		order = domain.WordOrderToFrom
	case from == pair.From && to == pair.To:
		order = domain.WordOrderFromTo
	default:
		return "", false, nil
	}

	set, err := s.vocab.Load(ctx, pair)
	if err != nil {
		return "", false, err
	}
	ans := study.Answer(set, order, word)
	return ans, ans != "", nil
}

// fieldError renames the field of a single-field validation error so the
// caller can tell which language was rejected.
func fieldError(err error, field string) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) && len(ve.Errors) == 1 {
		return domain.NewValidationError(field, ve.Errors[0].Message)
	}
	return err
}
