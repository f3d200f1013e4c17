package main

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/khicago/irr"
	"github.com/spf13/cobra"

	"github.com/bagaking/toolscout/catalog"
	"github.com/bagaking/toolscout/recommend"
	"github.com/bagaking/toolscout/utils"
)

func newAssistCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "assist <query...>",
		Short: "Ask the assistant for the tools that fit a task best",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runSurface(cmd, opts.conf.NewAssistant(opts.catalog), strings.Join(args, " "))
		},
	}
}

func newStackCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stack <query...>",
		Short: "Generate a tool stack for a project",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runSurface(cmd, opts.conf.NewStackGenerator(opts.catalog), strings.Join(args, " "))
		},
	}
}

// runSurface 没有匹配结果不算命令失败，只给用户提示
func (o *rootOptions) runSurface(cmd *cobra.Command, s recommend.Surface, query string) error {
	f := recommend.NewFlow(s).Submit(cmd.Context(), query)
	if f.State() == recommend.StateError {
		if o.jsonOutput {
			return printJSON(cmd.OutOrStdout(), map[string]string{"error": f.Message()})
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), f.Message())
		return err
	}
	rec := f.Result()
	return o.print(cmd, rec, func() []utils.Card { return recommendationCards(rec) })
}

const cmdClear = "/clear"

func newChatCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to the assistant, one request per line, /clear drops the transcript, empty line or EOF to quit",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := recommend.NewFlow(opts.conf.NewAssistant(opts.catalog))
			reader := bufio.NewScanner(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			for {
				fmt.Fprint(out, "> ")
				if !reader.Scan() {
					break
				}
				q := strings.TrimSpace(reader.Text())
				if q == "" {
					break
				}
				if q == cmdClear {
					f.History().Clear()
					fmt.Fprintln(out, "transcript cleared")
					continue
				}
				fmt.Fprintln(out, f.Submit(cmd.Context(), q).Message())
				f.Reset()
			}
			if err := reader.Err(); err != nil {
				return irr.Wrap(err, "read input failed")
			}

			fmt.Fprintln(out)
			fmt.Fprint(out, f.History().Transcript())
			return nil
		},
	}
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var (
		filter  catalog.Filter
		pricing string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tools in the directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pricing != "" {
				p, ok := catalog.ParsePricing(pricing)
				if !ok {
					return irr.Error("unknown pricing %q, want one of %v", pricing, catalog.AllPricing)
				}
				filter.Pricing = p
			}
			tools := opts.catalog.Filter(filter)
			return opts.print(cmd, tools, func() []utils.Card { return toolCards(tools) })
		},
	}
	cmd.Flags().StringVar(&filter.Query, "search", "", "text that must appear in name, description, tags or use cases")
	cmd.Flags().StringVar(&filter.Category, "category", "", "category id or name")
	cmd.Flags().StringVar(&pricing, "pricing", "", "Free, Freemium or Paid")
	cmd.Flags().BoolVar(&filter.Featured, "featured", false, "only featured tools")
	cmd.Flags().BoolVar(&filter.Trending, "trending", false, "only trending tools")
	cmd.Flags().BoolVar(&filter.New, "new", false, "only new tools")
	cmd.Flags().Float64Var(&filter.MinRating, "min-rating", 0, "minimum rating")
	return cmd
}

func newCategoriesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List tool categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cats := opts.catalog.Categories()
			return opts.print(cmd, cats, func() []utils.Card { return categoryCards(opts.catalog, cats) })
		},
	}
}

func newCompareCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <id> <id> [id]",
		Short: fmt.Sprintf("Compare 2 to %d tools side by side", catalog.MaxCompare),
		Args:  cobra.RangeArgs(2, catalog.MaxCompare),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmp, err := opts.catalog.Compare(args...)
			if err != nil {
				return err
			}
			return opts.print(cmd, cmp, func() []utils.Card {
				return []utils.Card{{Title: "Compare " + strings.Join(args, " vs "), Lines: strings.Split(strings.TrimRight(cmp.String(), "\n"), "\n")}}
			})
		},
	}
}

func newStacksCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stacks [id]",
		Short: "List curated tool stacks, or show the tools of one stack",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				stacks := opts.catalog.Stacks()
				return opts.print(cmd, stacks, func() []utils.Card { return stackCards(stacks) })
			}
			st, ok := opts.catalog.Stack(args[0])
			if !ok {
				return irr.Wrap(catalog.ErrStackNotFound, "stack %s", args[0])
			}
			tools, err := opts.catalog.StackTools(st.ID)
			if err != nil {
				return err
			}
			return opts.print(cmd, tools, func() []utils.Card {
				return append(stackCards([]*catalog.Stack{st}), toolCards(tools)...)
			})
		},
	}
}

// daySeed 自 unix 纪元起的天数，同一天内的 tool of the day 不变
func daySeed(now time.Time) int64 {
	return now.UTC().Unix() / int64(24*time.Hour/time.Second)
}

func newToolOfDayCmd(opts *rootOptions) *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "tool-of-day",
		Short: "Show the featured tool of the day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = daySeed(time.Now())
			}
			t, err := opts.catalog.ToolOfDay(seed)
			if err != nil {
				return err
			}
			return opts.print(cmd, t, func() []utils.Card { return toolCards([]*catalog.Tool{t}) })
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "pick with this seed instead of today's date")
	return cmd
}
