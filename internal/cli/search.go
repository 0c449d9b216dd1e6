package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"searchpro/internal/domain"
	"searchpro/internal/logging"
	"searchpro/internal/ui/content"
	"searchpro/internal/ui/views"
)

type searchOutput struct {
	Query   string                `json:"query"`
	Type    domain.SearchMode     `json:"type"`
	Results []domain.SearchResult `json:"results"`
}

func newSearchCmd(opts *options) *cobra.Command {
	var (
		searchType string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Run one search without the UI and print the results",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := domain.ParseSearchMode(searchType)
			if err != nil {
				return err
			}
			q, err := domain.NewSearchQuery(strings.Join(args, " "), mode)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.Log)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			client, err := newSearcher(cfg, log)
			if err != nil {
				return err
			}
			results, err := client.Search(cmd.Context(), q)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(searchOutput{Query: q.Text, Type: q.Mode, Results: results})
			}
			if len(results) == 0 {
				_, err = fmt.Fprintln(out, content.NothingFound)
				return err
			}
			_, err = fmt.Fprint(out, views.ResultsText(q.Text, results))
			return err
		},
	}

	cmd.Flags().StringVarP(&searchType, "type", "t", string(domain.ModeWeb), "Search type: web, voice, image or music")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")
	return cmd
}
