package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
	"github.com/heartmarshall/revision-planner-backend/internal/service/revision"
	"github.com/heartmarshall/revision-planner-backend/internal/timer"
)

func (c *cli) timerCmd() *cobra.Command {
	var (
		minutes   int
		subjectID string
		topicID   int
		date      string
		complete  bool
	)

	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Run a study countdown, optionally for a planned revision entry",
		Long: "Counts down --minutes, or the timer of the entry given by --subject and --topic.\n" +
			"With --complete the entry is marked complete when the countdown reaches zero.\n" +
			"Interrupting pauses the countdown and reports the time left.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if subjectID == "" && complete {
				return errors.New("--complete needs --subject and --topic")
			}
			ctx, err := c.principalCtx(cmd.Context())
			if err != nil {
				return err
			}

			var markComplete func() error
			if subjectID != "" {
				subject, err := uuid.Parse(subjectID)
				if err != nil {
					return fmt.Errorf("--subject: %w", err)
				}
				var day *domain.Date
				if date != "" {
					d, err := domain.ParseDate(date)
					if err != nil {
						return err
					}
					day = &d
				}

				store, svcs, err := c.open(ctx)
				if err != nil {
					return err
				}
				defer store.Close()

				if day == nil {
					today := svcs.Revisions.Today()
					day = &today
				}
				plans, err := svcs.Revisions.GetDailyPlan(ctx, revision.PlanFilter{SubjectID: &subject, Date: day})
				if err != nil {
					return err
				}
				entry, err := findEntry(plans, topicID)
				if err != nil {
					return err
				}
				if minutes == 0 {
					minutes = entry.TimerMinutes
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", entry.TopicName, day)

				markComplete = func() error {
					_, err := svcs.Revisions.SetDayTopicCompletion(ctx, revision.SetDayTopicCompletionInput{
						SubjectID: subject,
						Date:      day,
						TopicID:   topicID,
						Completed: true,
					})
					return err
				}
			}

			out := cmd.OutOrStdout()
			cd := timer.New(timer.WithOnTick(func(left time.Duration) {
				fmt.Fprintf(out, "\r%s ", formatRemaining(left))
			}))
			if err := cd.Set(minutes); err != nil {
				return err
			}
			if err := cd.Start(); err != nil {
				return err
			}
			fmt.Fprintf(out, "\r%s ", formatRemaining(cd.Remaining()))

			select {
			case <-cd.Done():
				fmt.Fprintln(out, "\ntime is up")
			case <-ctx.Done():
				cd.Pause()
				fmt.Fprintf(out, "\npaused with %s left\n", formatRemaining(cd.Remaining()))
				return nil
			}

			if !complete || markComplete == nil {
				return nil
			}
			if err := markComplete(); err != nil {
				return fmt.Errorf("mark entry complete: %w", err)
			}
			fmt.Fprintf(out, "entry %d marked complete\n", topicID)
			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 0, "countdown length (default the entry's timer)")
	cmd.Flags().StringVar(&subjectID, "subject", "", "subject of the revision entry")
	cmd.Flags().IntVar(&topicID, "topic", 0, "local id of the revision entry")
	cmd.Flags().StringVar(&date, "date", "", "plan day as YYYY-MM-DD (default today)")
	cmd.Flags().BoolVar(&complete, "complete", false, "mark the entry complete when time is up")
	cmd.MarkFlagsRequiredTogether("subject", "topic")
	return cmd
}

// findEntry returns the entry with local id topicID from the day's plans.
func findEntry(plans []domain.DailyRevision, topicID int) (*domain.RevisionTopic, error) {
	if len(plans) == 0 {
		return nil, fmt.Errorf("no plan for that day: %w", domain.ErrNotFound)
	}
	return plans[0].TopicByID(topicID)
}

// formatRemaining renders d as MM:SS, or H:MM:SS from one hour up.
func formatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Second) / time.Second)
	h, m, s := total/3600, total/60%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
