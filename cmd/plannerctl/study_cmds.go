package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
	"github.com/heartmarshall/revision-planner-backend/internal/importer"
	"github.com/heartmarshall/revision-planner-backend/internal/service/quiz"
)

func (c *cli) flashcardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flashcards",
		Short: "Manage flashcards",
	}
	cmd.AddCommand(c.flashcardsImportCmd())
	return cmd
}

func (c *cli) flashcardsImportCmd() *cobra.Command {
	var (
		subjectID string
		file      string
		opts      = importer.DefaultOptions()
		qCol      = 1
		aCol      = 2
		noHeader  bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import question/answer pairs from an .xlsx or .csv file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			subject, err := uuid.Parse(subjectID)
			if err != nil {
				return fmt.Errorf("--subject: %w", err)
			}
			if qCol < 1 || aCol < 1 {
				return errors.New("column numbers start at 1")
			}
			opts.QuestionColumn = qCol - 1
			opts.AnswerColumn = aCol - 1
			opts.SkipHeader = !noHeader

			res, err := importer.ReadFile(file, opts)
			if err != nil {
				return err
			}
			for _, skipped := range res.Skipped {
				c.logger.Warn("row skipped", slog.Int("row", skipped.Row), slog.String("reason", skipped.Reason))
			}
			if len(res.Cards) == 0 {
				return fmt.Errorf("%s: no flashcards found", file)
			}

			ctx, err := c.principalCtx(cmd.Context())
			if err != nil {
				return err
			}
			store, svcs, err := c.open(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := svcs.Quizzes.ImportFlashcards(ctx, quiz.ImportFlashcardsInput{
				SubjectID: subject,
				Cards:     toDrafts(res.Cards),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d flashcards (%d rows skipped)\n", n, len(res.Skipped))
			return nil
		},
	}

	cmd.Flags().StringVar(&subjectID, "subject", "", "subject id (required)")
	cmd.Flags().StringVar(&file, "file", "", "path to the .xlsx or .csv file (required)")
	cmd.Flags().StringVar(&opts.Sheet, "sheet", "", "sheet name (default first sheet)")
	cmd.Flags().IntVar(&qCol, "question-col", qCol, "1-based question column")
	cmd.Flags().IntVar(&aCol, "answer-col", aCol, "1-based answer column")
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "the first row holds a card")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func toDrafts(cards []importer.Card) []quiz.FlashcardDraft {
	drafts := make([]quiz.FlashcardDraft, 0, len(cards))
	for _, card := range cards {
		drafts = append(drafts, quiz.FlashcardDraft{Question: card.Question, Answer: card.Answer})
	}
	return drafts
}

func (c *cli) quizCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Work with quizzes",
	}
	cmd.AddCommand(c.quizGenerateCmd())
	return cmd
}

func (c *cli) quizGenerateCmd() *cobra.Command {
	var (
		subjectID   string
		showAnswers bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a multiple-choice quiz from a subject's flashcards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			subject, err := uuid.Parse(subjectID)
			if err != nil {
				return fmt.Errorf("--subject: %w", err)
			}

			ctx, err := c.principalCtx(cmd.Context())
			if err != nil {
				return err
			}
			store, svcs, err := c.open(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			q, err := svcs.Quizzes.GenerateFromFlashcards(ctx, subject)
			if err != nil {
				return err
			}
			printQuiz(cmd.OutOrStdout(), q, showAnswers)
			return nil
		},
	}

	cmd.Flags().StringVar(&subjectID, "subject", "", "subject id (required)")
	cmd.Flags().BoolVar(&showAnswers, "show-answers", false, "mark the correct option of each question")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}

func printQuiz(w io.Writer, q *domain.Quiz, showAnswers bool) {
	fmt.Fprintf(w, "%s\n%s\nid: %s\n", q.Title, q.Description, q.ID)
	for i, question := range q.Questions {
		fmt.Fprintf(w, "\n%d. %s\n", i+1, question.Text)
		for j, option := range question.Options {
			mark := " "
			if showAnswers && option.IsCorrect {
				mark = "*"
			}
			fmt.Fprintf(w, "  %s %c) %s\n", mark, 'a'+j, option.Text)
		}
	}
}
