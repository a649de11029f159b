package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/omarshaarawi/repowatch/internal/api/github"
	"github.com/omarshaarawi/repowatch/internal/config"
	"github.com/omarshaarawi/repowatch/internal/models"
	"github.com/omarshaarawi/repowatch/pkg/client"
)

var (
	envFile    string
	outputJSON bool
	serverURL  string
	matchTerm  string
)

var rootCmd = &cobra.Command{
	Use:   "repowatchctl",
	Short: "Inspect the repowatch repository cache",
	Long: `A CLI tool for checking the upstream repository search and the
snapshot served by a running repowatch server.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load(envFile)
	},
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Run the upstream search once",
	Long:  `Query the GitHub search API with the configured query and print the result without touching any server.`,
	Args:  cobra.NoArgs,
	RunE:  runFetch,
}

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Show the snapshot served by a running server",
	Long:  `Read /data from a running repowatch server, optionally filtering repositories by a fuzzy match.`,
	Args:  cobra.NoArgs,
	RunE:  runData,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "env file to load")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output in JSON format")

	dataCmd.Flags().StringVar(&serverURL, "server", "http://localhost:3000", "repowatch server URL")
	dataCmd.Flags().StringVar(&matchTerm, "match", "", "fuzzy filter on name or description")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(dataCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	api := github.NewAPI(github.NewClient(cfg.GitHubAPI))
	repos, err := api.SearchRepositories(cmd.Context())
	if err != nil {
		return err
	}

	if outputJSON {
		return printJSON(cmd.OutOrStdout(), repos)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Query: %s (%d repositories)\n", cfg.GitHubAPI.Query, len(repos))
	printRepositories(cmd.OutOrStdout(), repos)
	return nil
}

func runData(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	data, err := client.NewClient(serverURL).GetData(ctx)
	if err != nil {
		return err
	}
	data.Repositories = client.Match(data.Repositories, matchTerm)
	data.Count = len(data.Repositories)

	if outputJSON {
		return printJSON(cmd.OutOrStdout(), data)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Last updated: %s (%d repositories)\n", data.LastUpdated, data.Count)
	printRepositories(cmd.OutOrStdout(), data.Repositories)
	return nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printRepositories(w io.Writer, repos []models.Repository) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Stars", "Updated", "Description", "URL"})
	table.SetAutoWrapText(false)
	for _, r := range repos {
		table.Append([]string{
			r.Name,
			strconv.Itoa(r.StargazersCount),
			r.UpdatedAt.UTC().Format("2006-01-02 15:04"),
			truncate(r.Description, 60),
			r.HTMLURL,
		})
	}
	table.Render()
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
