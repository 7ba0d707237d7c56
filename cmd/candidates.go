package cmd

import (
	"fmt"
	"log"
	"sort"

	"github.com/talentscout/talentscout/internal/logger"
	"github.com/talentscout/talentscout/internal/store"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const completedDateLayout = "January 2, 2006"

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "List all saved candidate records (admin view)",
	Run: func(cmd *cobra.Command, _ []string) {
		listCandidates(cmd)
	},
}

func init() {
	rootCmd.AddCommand(candidatesCmd)

	candidatesCmd.Flags().StringP("store", "s", "", "path to the candidate data file. Default is candidate_data.json in current directory.")
}

func listCandidates(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	st := store.New(storePath(cmd, config))

	records, err := st.LoadAll()
	if err != nil {
		logger.Fatal("loading candidate records", zap.Error(err), zap.String("path", st.Path()))
	}

	if len(records) == 0 {
		fmt.Println("No candidate data available yet.")
		return
	}

	emails := make([]string, 0, len(records))
	for email := range records {
		emails = append(emails, email)
	}
	sort.Strings(emails)

	fmt.Println("Saved Candidate Data:")
	for _, email := range emails {
		record := records[email]
		fmt.Printf("Candidate: %s (%s)\n", record.Info.Name, email)
		fmt.Printf("Position: %s\n", record.Info.Position)
		fmt.Printf("Tech Stack: %s\n", record.Info.TechStack)
		fmt.Printf("Completed: %s\n", record.CompletedDate.Format(completedDateLayout))
		fmt.Println("---")
	}

	logger.Debug("listed candidate records", zap.Int("count", len(records)))
}
