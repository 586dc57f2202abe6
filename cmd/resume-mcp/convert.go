// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/resume-mcp/internal/convert"
	"github.com/pdiddy/resume-mcp/internal/resolver"
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert a resume file to Markdown locally",
	Long: `Convert runs the same conversion pipeline the resume tool uses —
PDF text extraction, pandoc for document formats, raw text fallback —
and writes the Markdown to stdout. Nothing is submitted anywhere.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := buildConfig()

		path := cfg.DefaultResumePath
		if len(args) == 1 {
			path = args[0]
		}

		f, ok := resolver.Resolve(path)
		if !ok {
			return fmt.Errorf("resume file not found at: %s", f.Path)
		}

		markdown, err := convert.New().ToMarkdown(cmd.Context(), f)
		if err != nil {
			return fmt.Errorf("converting %s: %w", f.Path, err)
		}

		out := os.Stdout
		if outPath, _ := cmd.Flags().GetString("output"); outPath != "" {
			var ferr error
			out, ferr = os.Create(outPath)
			if ferr != nil {
				return fmt.Errorf("creating %s: %w", outPath, ferr)
			}
			defer out.Close()
		}

		fmt.Fprintln(out, markdown)
		return nil
	},
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "write Markdown to a file instead of stdout")

	rootCmd.AddCommand(convertCmd)
}
