package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stock-news-brief",
	Short: "A CLI for managing the Stock News Brief services",
	Long:  `Stock News Brief collects per-ticker stock news, summarizes it in Korean with a generative AI model, and serves the results to a dashboard...`,
}

func main() {

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your CLI '%s'", err)
		os.Exit(1)
	}
}
