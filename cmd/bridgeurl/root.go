package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/facesbridge/internal/inspect"
	"github.com/dmitrymomot/facesbridge/pkg/config"
	"github.com/dmitrymomot/facesbridge/pkg/logger"
	"github.com/dmitrymomot/facesbridge/pkg/viewmapping"
)

const rootLongDescription = `bridgeurl shows how the portlet bridge classifies a URL produced by a
view template and how it is rewritten into a portal URL.`

type rootOptions struct {
	environ    map[string]string
	cfg        config.Config
	logger     *slog.Logger
	configPath string
	viewRoot   string
}

func newRootCommand(environ []string) *cobra.Command {
	opts := &rootOptions{environ: envMap(environ)}

	cmd := &cobra.Command{
		Use:               "bridgeurl",
		Short:             "Analyze and rewrite portlet bridge URLs",
		Long:              rootLongDescription,
		SilenceUsage:      true,
		PersistentPreRunE: opts.preRun,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a YAML configuration file")
	cmd.PersistentFlags().StringVar(&opts.viewRoot, "view-root", "", "Directory with view files; extension mappings resolve only to existing views")

	cmd.AddCommand(newCmdAnalyze(opts))
	cmd.AddCommand(newCmdServe(opts))

	return cmd
}

func (o *rootOptions) preRun(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(o.configPath, o.environ)
	if err != nil {
		return err
	}
	o.cfg = cfg

	o.logger = logger.NewWithSentry(cfg.Sentry, cfg.Level(),
		inspect.RequestIDExtractor(),
		logger.WindowIDExtractor(),
	)
	return nil
}

// analyzer builds an Analyzer from the loaded configuration.
func (o *rootOptions) analyzer() (*inspect.Analyzer, error) {
	mappingOpts := []viewmapping.Option{
		viewmapping.WithMappings(o.cfg.ServletMappings...),
		viewmapping.WithDefaultSuffixes(o.cfg.DefaultSuffixes...),
	}
	if o.viewRoot != "" {
		mappingOpts = append(mappingOpts, viewmapping.WithFS(os.DirFS(o.viewRoot)))
	}

	resolver, err := viewmapping.New(mappingOpts...)
	if err != nil {
		return nil, err
	}
	return inspect.NewAnalyzer(o.cfg, resolver, o.logger), nil
}

func envMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		if name, value, ok := strings.Cut(kv, "="); ok {
			m[name] = value
		}
	}
	return m
}
