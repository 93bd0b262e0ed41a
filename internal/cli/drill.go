package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/vocabquiz/internal/quiz"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Practice a word list interactively",
	Long:  "Starts (or resumes) a session and asks questions in a loop. Type /toggle to flip the direction, /quit to stop.",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetInt64("user")
		listName, _ := cmd.Flags().GetString("list")
		if listName == "" {
			return fmt.Errorf("--list is required")
		}

		engine, db, err := openEngine()
		if err != nil {
			return err
		}
		defer db.Close()

		ctx := cmd.Context()
		if _, err := engine.StartOrGetSession(ctx, userID, listName); err != nil {
			return err
		}

		next, err := engine.GetNextQuestion(ctx, userID, listName)
		if err != nil {
			return err
		}

		scanner := bufio.NewScanner(os.Stdin)
		for {
			if next.Completed {
				fmt.Printf("List complete: %d/%d words mastered.\n", next.MasteredWords, next.TotalWords)
				return nil
			}
			if next.Exhausted {
				fmt.Println("No more questions right now. Come back later or /toggle the direction.")
				return nil
			}

			q := next.Question
			from, to, word := questionLanguages(q)
			fmt.Printf("\n[%s -> %s] %s\n> ", from, to, word)
			if !scanner.Scan() {
				return scanner.Err()
			}
			input := strings.TrimSpace(scanner.Text())

			switch input {
			case "/quit", "/q":
				return nil
			case "/toggle":
				state, err := engine.ToggleDirection(ctx, userID, listName)
				if err != nil {
					return err
				}
				fmt.Printf("Direction is now %s.\n", state.Direction)
				next, err = engine.GetNextQuestion(ctx, userID, listName)
				if err != nil && !errors.Is(err, quiz.ErrNoMoreQuestions) {
					return err
				}
				if errors.Is(err, quiz.ErrNoMoreQuestions) {
					next = &quiz.NextQuestion{Exhausted: true}
				}
				continue
			}

			result, err := engine.SubmitAnswer(ctx, userID, listName, q.TranslationID, input, q.Word)
			if errors.Is(err, quiz.ErrStaleQuestion) || errors.Is(err, quiz.ErrOutOfSync) {
				fmt.Println("Question changed, fetching a fresh one...")
				next, err = engine.GetNextQuestion(ctx, userID, listName)
				if err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}

			fmt.Println(result.Message)
			if result.SourceExample != "" || result.TargetExample != "" {
				fmt.Printf("  %s\n  %s\n", result.SourceExample, result.TargetExample)
			}
			if result.LevelChanged {
				fmt.Println("  (level changed)")
			}
			next = result.Next
		}
	},
}

// questionLanguages orders the language pair for display so the shown word's
// language comes first.
func questionLanguages(q *quiz.Question) (string, string, string) {
	if q.Direction == "reverse" {
		return q.TargetLanguage, q.SourceLanguage, q.Word
	}
	return q.SourceLanguage, q.TargetLanguage, q.Word
}
