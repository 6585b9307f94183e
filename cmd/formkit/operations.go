package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formkit/pkg/openapi"
)

func newOperationsCmd(_ *rootFlags) *cobra.Command {
	var schema string

	cmd := &cobra.Command{
		Use:   "operations",
		Short: "List the operation IDs of an OpenAPI document",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(schema) == "" {
				return errors.New("--schema is required")
			}
			src, err := openapi.SourceFor(strings.TrimSpace(schema))
			if err != nil {
				return err
			}
			data, err := openapi.NewLoader(openapi.WithHTTPFallback(fetchTimeout)).Load(cmd.Context(), src)
			if err != nil {
				return err
			}
			ids, err := openapi.Operations(cmd.Context(), data)
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&schema, "schema", "", "OpenAPI document path or URL")
	return cmd
}
