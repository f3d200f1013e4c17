package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bagaking/goulp/wlog"
	"github.com/spf13/cobra"

	"github.com/bagaking/toolscout/catalog"
	"github.com/bagaking/toolscout/utils"
)

type rootOptions struct {
	configPath string
	jsonOutput bool
	width      int

	conf    Conf
	catalog *catalog.Catalog
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "toolscout",
		Short:         "Browse the AI tool directory and get tool recommendations",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file (default $TOOLSCOUT_CONF or ./conf.yml)")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "print json instead of cards")
	root.PersistentFlags().IntVar(&opts.width, "width", 80, "max card width")

	root.AddCommand(
		newAssistCmd(opts),
		newStackCmd(opts),
		newChatCmd(opts),
		newListCmd(opts),
		newCategoriesCmd(opts),
		newCompareCmd(opts),
		newStacksCmd(opts),
		newToolOfDayCmd(opts),
	)
	return root
}

func (o *rootOptions) init(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	o.conf = LoadConf(ctx, o.configPath)
	utils.MustInitLogger(o.conf.LogDir, o.conf.LogLevel)

	cat, err := o.conf.LoadCatalog(ctx)
	if err != nil {
		wlog.ByCtx(ctx, "init").WithError(err).Errorf("load catalog failed")
		return err
	}
	o.catalog = cat
	wlog.ByCtx(ctx, "init").Debugf("catalog ready, %d tools, %d categories", cat.Count(), len(cat.Categories()))
	return nil
}

func (o *rootOptions) print(cmd *cobra.Command, v any, cards func() []utils.Card) error {
	if o.jsonOutput {
		return printJSON(cmd.OutOrStdout(), v)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), utils.SPrintCards(cards(), o.width))
	return err
}
