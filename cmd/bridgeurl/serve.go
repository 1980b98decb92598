package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/facesbridge/internal/inspect"
)

type serveOptions struct {
	*rootOptions
	addr            string
	shutdownTimeout time.Duration
}

func newCmdServe(root *rootOptions) *cobra.Command {
	opts := &serveOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP inspector",
		Args:  cobra.NoArgs,
		RunE:  opts.run,
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "Listen address")
	cmd.Flags().DurationVar(&opts.shutdownTimeout, "shutdown-timeout", 30*time.Second, "Graceful shutdown timeout")

	return cmd
}

func (o *serveOptions) run(cmd *cobra.Command, _ []string) error {
	a, err := o.analyzer()
	if err != nil {
		return err
	}

	srv := inspect.NewServer(a,
		inspect.WithLogger(o.logger),
		inspect.WithShutdownTimeout(o.shutdownTimeout),
	)
	return srv.Run(cmd.Context(), o.addr)
}
