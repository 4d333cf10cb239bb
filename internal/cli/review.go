package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/vocab-builder/internal/domain"
)

func newTestCommand(e *env) *cobra.Command {
	var (
		minCorrect int
		minAge     int
		order      string
		part       string
	)

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Review the words that are due",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts := e.studyOptions()
			flags := cmd.Flags()
			if flags.Changed("min-correct") {
				opts.MinCorrect = minCorrect
			}
			if flags.Changed("min-age") {
				opts.MinAgeDays = minAge
			}
			if flags.Changed("word-order") {
				o, err := domain.ParseWordOrder(order)
				if err != nil {
					return err
				}
				opts.WordOrder = o
			}
			if flags.Changed("part") {
				opts.Part = domain.ParsePartFilter(part)
			}

			ws, err := e.open(ctx, opts)
			if err != nil {
				return err
			}

			p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			shown, other := sides(ws, opts.WordOrder)

			reviewed, marked := 0, 0
			for {
				card, ok := e.c.Study.NextWord(ws.Session)
				if !ok {
					p.say("No more words to review for this round")
					break
				}

				reply, ok := p.ask("\n%s word: %s\n\nPress Enter to see translation, any other key plus Enter to quit", shown.name, card.Text)
				if !ok || reply != "" {
					break
				}
				reviewed++

				ans, err := e.c.Study.Answer(ctx, ws.Session, card.Text)
				if errors.Is(err, domain.ErrNotFound) {
					ans = "(no saved translation)"
				} else if err != nil {
					return err
				}
				p.say("\n%s translation: %s\n", other.name, ans)

				reply, ok = p.ask("Press Enter if you knew the translation, any other key if you did not ")
				if !ok {
					break
				}
				if reply == "" {
					if _, err := e.c.Study.MarkCorrect(ctx, ws.Session, card.Text); err != nil {
						return err
					}
					marked++
				}
			}

			p.say("Reviewed %d, knew %d, %d left", reviewed, marked, len(ws.Session.Selected))
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&minCorrect, "min-correct", 0, "words answered correctly at most this many times are always due")
	f.IntVar(&minAge, "min-age", 0, "days after the last correct answer before a word is due again")
	f.StringVar(&order, "word-order", "", "from-to shows your language, to-from the one you are learning")
	f.StringVar(&part, "part", "", "only review this part of speech (Any for all)")
	return cmd
}
