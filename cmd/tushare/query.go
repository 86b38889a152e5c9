package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/spf13/cobra"

	"github.com/DrewBradfordXYZ/tushare-go/client"
	"github.com/DrewBradfordXYZ/tushare-go/export"
)

type queryOptions struct {
	params   []string
	fields   []string
	format   string
	output   string
	raw      bool
	all      bool
	limit    int
	pageSize int
}

func newQueryCmd(a *app) *cobra.Command {
	opts := &queryOptions{}

	cmd := &cobra.Command{
		Use:   "query <api_name>",
		Short: "Run a query against one endpoint",
		Long: `Run a query against one endpoint and print or save the table.

Parameters are given as -p name=value and may be repeated. For declared
endpoints, unknown parameter names are rejected and date parameters accept
YYYY-MM-DD. --raw skips the schema and sends the parameters as given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, a, args[0], opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.params, "param", "p", nil, "Parameter as name=value (repeatable)")
	cmd.Flags().StringSliceVar(&opts.fields, "fields", nil, "Comma-separated columns to return")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: table, csv, json or parquet")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to file instead of stdout")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "Skip the endpoint schema check")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Fetch every page (paged endpoints only)")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "With --all, stop after this many rows")
	cmd.Flags().IntVar(&opts.pageSize, "page-size", 0, "With --all, rows per request (default from config)")

	return cmd
}

func runQuery(cmd *cobra.Command, a *app, apiName string, opts *queryOptions) error {
	params, err := parseParams(opts.params)
	if err != nil {
		return err
	}

	format, err := resolveFormat(opts.format, opts.output, a.config.Output.Format)
	if err != nil {
		return err
	}

	c, err := a.newClient()
	if err != nil {
		return err
	}

	q, err := buildQuery(c, apiName, params, opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	start := time.Now()
	df, err := execute(ctx, q, opts, a.config.Output.PageSize)
	if err != nil {
		return err
	}
	a.logger.Info().
		Str("api_name", apiName).
		Int("rows", df.Nrow()).
		Int("duration_ms", int(time.Since(start).Milliseconds())).
		Msg("Query complete")

	if opts.output == "" {
		return export.Write(cmd.OutOrStdout(), df, format)
	}
	if err := export.WriteFile(opts.output, df, format); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d rows to %s\n", df.Nrow(), opts.output)
	return nil
}

// buildQuery checks the query against the endpoint schema unless raw is set.
func buildQuery(c *client.Client, apiName string, params map[string]string, opts *queryOptions) (client.QueryBuilder, error) {
	if opts.raw {
		return c.QueryBuilder(apiName).Params(params).Fields(opts.fields...), nil
	}

	eb := c.Endpoint(apiName).Params(params).Fields(opts.fields...)
	q, err := eb.QueryBuilder()
	if err != nil {
		return client.QueryBuilder{}, fmt.Errorf("%w (use --raw to skip the schema check)", err)
	}
	if opts.all && !eb.Schema().Paged {
		return client.QueryBuilder{}, fmt.Errorf("endpoint %s does not support paging", apiName)
	}
	return q, nil
}

func execute(ctx context.Context, q client.QueryBuilder, opts *queryOptions, defaultPageSize int) (dataframe.DataFrame, error) {
	if !opts.all {
		return q.Query(ctx)
	}
	pageSize := opts.pageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return q.Paginate(ctx, client.PaginationOptions{PageSize: pageSize, Limit: opts.limit})
}

// parseParams turns name=value pairs into a map. Later pairs win.
func parseParams(pairs []string) (map[string]string, error) {
	params := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid parameter %q, want name=value", pair)
		}
		params[name] = value
	}
	return params, nil
}

// resolveFormat picks the format: flag, then output file extension, then config.
func resolveFormat(flag, output, configured string) (export.Format, error) {
	if flag != "" {
		return export.ParseFormat(flag)
	}
	fallback, err := export.ParseFormat(configured)
	if err != nil {
		return "", err
	}
	if output != "" {
		return export.FormatFromPath(output, fallback), nil
	}
	return fallback, nil
}
