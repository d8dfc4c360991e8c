package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/kwscout/kwscout/app"
	"github.com/kwscout/kwscout/domain"
	"github.com/kwscout/kwscout/service"
)

// ResearchCommand represents the matching, related, and questions
// query commands. One instance backs a single cobra command.
type ResearchCommand struct {
	queryType domain.QueryType

	limit           int
	minRelatedScore int
	group           string
	json            bool
	yaml            bool
	delay           float64
}

// NewResearchCommand creates a new research command for the given query type
func NewResearchCommand(queryType domain.QueryType) *ResearchCommand {
	return &ResearchCommand{
		queryType: queryType,
	}
}

// CreateCobraCommand creates the cobra command for a research query
func (r *ResearchCommand) CreateCobraCommand(use, short, long string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.MinimumNArgs(1),
		RunE:  r.runResearch,
	}

	cmd.Flags().BoolVar(&r.json, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&r.yaml, "yaml", false, "Output as YAML")
	cmd.Flags().Float64Var(&r.delay, "delay", 0, "Pause in seconds before the API request (defaults to configured delay)")

	switch r.queryType {
	case domain.QueryTypeRelated:
		cmd.Flags().IntVar(&r.minRelatedScore, "min-score", 0, "Minimum related keyword score")
		cmd.Flags().StringVar(&r.group, "group", "", "Scoring group sent with the request")
	default:
		cmd.Flags().IntVarP(&r.limit, "limit", "l", 0, "Maximum number of results")
	}

	return cmd
}

// runResearch executes a research query command
func (r *ResearchCommand) runResearch(cmd *cobra.Command, args []string) error {
	cc, err := newCommandContext(cmd)
	if err != nil {
		return err
	}

	limit := r.limit
	if !cmd.Flags().Changed("limit") || limit < 1 {
		limit = cc.cfg.Limit
	}
	minScore := r.minRelatedScore
	if r.queryType != domain.QueryTypeRelated || !cmd.Flags().Changed("min-score") {
		minScore = cc.cfg.MinRelatedScore
	}
	group := r.group
	if group == "" {
		group = cc.cfg.Group
	}

	useCase := app.NewResearchUseCase(cc.service, service.NewOutputFormatter())

	return useCase.Execute(cmd.Context(), app.ResearchUseCaseRequest{
		QueryType:       r.queryType,
		Keyword:         strings.Join(args, " "),
		Limit:           limit,
		MinRelatedScore: minScore,
		Group:           group,
		Delay:           resolveDelay(cc.cfg, cmd.Flags(), r.delay),
		OutputFormat:    resolveOutputFormat(cc.cfg, r.json, r.yaml, false),
		OutputWriter:    cmd.OutOrStdout(),
	})
}

// NewMatchingCmd creates and returns the matching cobra command
func NewMatchingCmd() *cobra.Command {
	researchCommand := NewResearchCommand(domain.QueryTypeMatching)
	return researchCommand.CreateCobraCommand(
		"matching <keyword>...",
		"Find keywords matching a seed keyword",
		`Query the keyword search endpoint for permutations of a seed keyword.

Examples:
  kwscout matching "go tutorial"
  kwscout matching --limit 50 "go tutorial"`,
	)
}

// NewRelatedCmd creates and returns the related cobra command
func NewRelatedCmd() *cobra.Command {
	researchCommand := NewResearchCommand(domain.QueryTypeRelated)
	return researchCommand.CreateCobraCommand(
		"related <keyword>...",
		"Find keywords related to a seed keyword",
		`Query the related search endpoint for keywords related to a seed
keyword, optionally filtered by a minimum score.

Examples:
  kwscout related "go tutorial"
  kwscout related --min-score 40 "go tutorial"`,
	)
}

// NewQuestionsCmd creates and returns the questions cobra command
func NewQuestionsCmd() *cobra.Command {
	researchCommand := NewResearchCommand(domain.QueryTypeQuestions)
	return researchCommand.CreateCobraCommand(
		"questions <keyword>...",
		"Find questions people ask about a keyword",
		`Query the keyword search endpoint for question phrasings of a seed
keyword.

Examples:
  kwscout questions "go tutorial"
  kwscout questions --limit 50 "go tutorial"`,
	)
}
