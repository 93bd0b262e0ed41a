package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/vocabquiz/internal/database"
)

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Show available word lists",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := openEngine()
		if err != nil {
			return err
		}
		defer db.Close()

		repo := database.NewWordListRepository()
		lists, err := repo.GetAll(cmd.Context(), db)
		if err != nil {
			return err
		}
		if len(lists) == 0 {
			fmt.Println("No word lists found.")
			return nil
		}
		for _, l := range lists {
			count, err := repo.CountTranslations(cmd.Context(), db, l.ID)
			if err != nil {
				return err
			}
			fmt.Printf("%-30s %s -> %s (%d words)\n", l.Name, l.SourceLanguage, l.TargetLanguage, count)
		}
		return nil
	},
}
