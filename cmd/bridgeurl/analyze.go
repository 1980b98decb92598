package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/facesbridge/internal/inspect"
)

type analyzeOptions struct {
	*rootOptions
	view    string
	context string
	kind    string
	portlet string
	base    string
	public  []string
	private []string
	secure  bool
	compact bool
}

func newCmdAnalyze(root *rootOptions) *cobra.Command {
	opts := &analyzeOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "analyze URL",
		Short: "Print how the bridge classifies and rewrites a URL",
		Example: `  bridgeurl analyze '/app/views/b.xhtml?x=1' --view /views/a.xhtml --context /app
  bridgeurl analyze 'portlet:action?javax.portlet.faces.PortletMode=edit' --view /views/a.xhtml`,
		Args: cobra.ExactArgs(1),
		RunE: opts.run,
	}

	cmd.Flags().StringVar(&opts.view, "view", "", "Current view id")
	cmd.Flags().StringVar(&opts.context, "context", "", "Context path of the portlet request")
	cmd.Flags().StringVar(&opts.kind, "kind", "render", "URL kind: action, render or resource")
	cmd.Flags().StringVar(&opts.portlet, "portlet", "", "Portlet id used to namespace parameters")
	cmd.Flags().StringVar(&opts.base, "base", "", "Page URL of the reference portal")
	cmd.Flags().StringArrayVar(&opts.public, "public", nil, "Public render parameter as name=value")
	cmd.Flags().StringArrayVar(&opts.private, "private", nil, "Private render parameter as name=value")
	cmd.Flags().BoolVar(&opts.secure, "secure", false, "Request a secure URL")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "Print the report on a single line")

	return cmd
}

func (o *analyzeOptions) run(cmd *cobra.Command, args []string) error {
	a, err := o.analyzer()
	if err != nil {
		return err
	}

	req := inspect.Request{
		URL:           args[0],
		CurrentViewID: o.view,
		ContextPath:   o.context,
		Kind:          o.kind,
		PortletID:     o.portlet,
		BaseURL:       o.base,
		Secure:        o.secure,
	}
	if req.Public, err = inspect.ParseParams(o.public); err != nil {
		return err
	}
	if req.Private, err = inspect.ParseParams(o.private); err != nil {
		return err
	}

	report, err := a.Analyze(cmd.Context(), req)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if !o.compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(report)
}
