// Package cli is the thin local consumer of the quiz engine: it exposes the
// scheduler operations as commands and an interactive drill loop. Remote
// delivery surfaces live outside this repository.
package cli

import (
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/example/vocabquiz/internal/database"
	"github.com/example/vocabquiz/internal/quiz"
)

var rootCmd = &cobra.Command{
	Use:   "vocabquiz",
	Short: "Adaptive vocabulary drilling",
	Long:  "Vocabquiz drills translation pairs with error-weighted scheduling and a four-level mastery ladder.",
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Int64("user", 1, "User id to practice as")
	rootCmd.PersistentFlags().String("list", "", "Word list name")

	rootCmd.AddCommand(listsCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(toggleCmd)
}

// openEngine connects to the configured database and builds the engine. The
// returned close function releases the connection.
func openEngine() (*quiz.Engine, *sqlx.DB, error) {
	db, err := database.Connect(database.ConfigFromEnv())
	if err != nil {
		return nil, nil, err
	}
	return quiz.NewEngine(db), db, nil
}
