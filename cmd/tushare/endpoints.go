package main

import (
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/spf13/cobra"

	"github.com/DrewBradfordXYZ/tushare-go/client"
	"github.com/DrewBradfordXYZ/tushare-go/core"
	"github.com/DrewBradfordXYZ/tushare-go/export"
)

func newEndpointsCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "endpoints",
		Short: "List the declared endpoints and their parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.config.ValidateOffline(); err != nil {
				return err
			}
			if format == "" {
				format = a.config.Output.Format
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			return export.Write(cmd.OutOrStdout(), endpointTable(client.Schema().Original.Endpoints), f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: table, csv, json or parquet")
	return cmd
}

// endpointTable lists endpoints as a table so every output format applies.
func endpointTable(endpoints []core.EndpointSchema) dataframe.DataFrame {
	n := len(endpoints)
	names := make([]string, n)
	params := make([]string, n)
	dates := make([]string, n)
	paged := make([]string, n)
	docs := make([]string, n)

	for i, ep := range endpoints {
		names[i] = ep.Name
		params[i] = strings.Join(ep.Params, ",")
		dates[i] = strings.Join(ep.Dates, ",")
		paged[i] = strconv.FormatBool(ep.Paged)
		docs[i] = ep.Doc
	}

	return dataframe.New(
		series.New(names, series.String, "name"),
		series.New(params, series.String, "params"),
		series.New(dates, series.String, "dates"),
		series.New(paged, series.String, "paged"),
		series.New(docs, series.String, "doc"),
	)
}
