package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/vocab-builder/internal/domain"
	"github.com/heartmarshall/vocab-builder/internal/service/vocab"
	"github.com/heartmarshall/vocab-builder/internal/service/workspace"
)

func newAddCommand(e *env) *cobra.Command {
	var (
		noTransCheck bool
		yes          bool
		part         string
		order        string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add words interactively",
		Long: "add asks for words until an empty line. With word lookup on, each word is\n" +
			"translated and you can accept or correct the result.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := e.studyOptions()
			if order != "" {
				o, err := domain.ParseWordOrder(order)
				if err != nil {
					return err
				}
				opts.WordOrder = o
			}

			ws, err := e.open(cmd.Context(), opts)
			if err != nil {
				return err
			}

			a := &adder{
				e:            e,
				ws:           ws,
				p:            newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
				order:        opts.WordOrder,
				part:         strings.TrimSpace(part),
				noTransCheck: noTransCheck,
				lookup:       ws.Lookup,
			}
			return a.run(cmd.Context(), yes)
		},
	}

	cmd.Flags().BoolVar(&noTransCheck, "no-trans-check", false, "accept looked-up translations without asking")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "save without confirmation")
	cmd.Flags().StringVar(&part, "part", "", "part of speech for every word added in this session")
	cmd.Flags().StringVar(&order, "word-order", "", "from-to or to-from (default from config)")
	return cmd
}

// adder runs one interactive add session.
type adder struct {
	e            *env
	ws           *workspace.Workspace
	p            *prompter
	order        domain.WordOrder
	part         string
	noTransCheck bool
	lookup       bool
}

func (a *adder) run(ctx context.Context, yes bool) error {
	first, second := sides(a.ws, a.order)

	var pairs []vocab.MergePair
	for {
		w1, ok := a.p.ask("%s word (Enter to quit): ", first.name)
		w1 = strings.ToLower(w1)
		if !ok || w1 == "" {
			break
		}

		w2, ok := a.counterpart(ctx, w1, first, second)
		if !ok {
			continue
		}

		// The headword is always the word in the language being learned.
		key, values := w1, w2
		if a.order == domain.WordOrderFromTo {
			key, values = w2, w1
		}
		pairs = append(pairs, vocab.MergePair{Values: vocab.ParseValues(values), Key: key, Part: a.part})
	}

	if len(pairs) == 0 {
		a.p.say("No words added")
		return nil
	}

	if !yes {
		for _, mp := range pairs {
			a.p.say("  %s: %s", mp.Key, strings.Join(mp.Values, ", "))
		}
		reply, ok := a.p.ask("Save %d words? [Y/n]: ", len(pairs))
		if !ok || strings.HasPrefix(strings.ToLower(reply), "n") {
			a.p.say("Discarded")
			return nil
		}
	}

	res, err := a.e.c.Vocab.Merge(ctx, a.ws.Pair(), pairs, vocab.MergeOptions{Force: true})
	if err != nil {
		return err
	}
	a.p.say("%d added, %d updated", len(res.Added), len(res.Updated))
	return nil
}

// counterpart finds the translation of w1, by lookup or by asking. ok is
// false when the word should be skipped.
func (a *adder) counterpart(ctx context.Context, w1 string, first, second side) (string, bool) {
	if !a.lookup {
		w2, ok := a.p.ask("%s word: ", second.name)
		w2 = strings.ToLower(w2)
		return w2, ok && w2 != ""
	}

	tr, err := a.e.c.Workspaces.Translate(ctx, a.ws, w1, first.code, second.code)
	switch {
	case errors.Is(err, domain.ErrProviderUnavailable):
		a.p.say("The translation lookup failed. Check your Internet connection and your service subscription. " +
			"Continuing with manual translations.")
		a.lookup = false
		return a.counterpart(ctx, w1, first, second)
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		a.p.say("Lookup error: %v", err)
		return "", false
	}

	w2 := strings.ToLower(tr.Result)
	if w2 == "" || domain.SameWord(w2, w1) {
		custom, ok := a.p.ask("No translation found. Enter to skip, or type a custom translation: ")
		return strings.ToLower(custom), ok && custom != ""
	}

	if tr.Saved {
		a.p.say("already saved: %s", w2)
	}
	if a.noTransCheck {
		a.p.say("translation: %s", w2)
		return w2, true
	}
	custom, ok := a.p.ask("translation: %s   Enter to accept, or type a custom translation: ", w2)
	if !ok {
		return "", false
	}
	if custom != "" {
		w2 = strings.ToLower(custom)
	}
	return w2, true
}
