package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/vocabquiz/pkg/models"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Show the quiz state for a word list",
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

		state, err := engine.StartOrGetSession(cmd.Context(), userID, listName)
		if err != nil {
			return err
		}

		fmt.Printf("Session:   %s\n", state.SessionID)
		fmt.Printf("Direction: %s\n", state.Direction)
		printBuckets(state.Buckets)
		return nil
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip the practice direction",
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

		state, err := engine.ToggleDirection(cmd.Context(), userID, listName)
		if err != nil {
			return err
		}
		fmt.Printf("Direction: %s\n", state.Direction)
		printBuckets(state.Buckets)
		return nil
	},
}

func printBuckets(buckets map[models.Status][]int64) {
	labels := map[models.Status]string{
		models.Level0: "unseen",
		models.Level1: "focus",
		models.Level2: "learned",
		models.Level3: "mastered",
	}
	for _, level := range []models.Status{models.Level0, models.Level1, models.Level2, models.Level3} {
		fmt.Printf("Level %d (%s): %d words\n", level, labels[level], len(buckets[level]))
	}
}
