// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/resume-mcp/internal/server"
	"github.com/pdiddy/resume-mcp/internal/tool"
	"github.com/pdiddy/resume-mcp/pkg/types"
)

// toolManifestFile is the optional YAML override for the tool's
// registered description.
const toolManifestFile = "resume-mcp.tools.yaml"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host the resume tool over HTTP",
	Long: `Serve starts the bearer-authenticated HTTP surface the remote
tool-calling framework talks to: GET /tools lists the resume tool and
its description, POST /tools/resume invokes it. A credential must be
configured (config key "credential", env RESUME_MCP_CREDENTIAL, or the
.secrets/app-credential file).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := buildConfig()
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}

		if err := validateServeConfig(cfg); err != nil {
			return err
		}

		manifest, err := tool.LoadManifest(toolManifestFile)
		if err != nil {
			return err
		}

		t := tool.New(cfg, manifest)
		s := server.New(cfg.Credential, cfg.DefaultResumePath, t)

		fmt.Fprintf(os.Stderr, "resume-mcp listening on %s\n", cfg.Server.Addr)
		if cfg.SubmitEndpoint == "" {
			fmt.Fprintln(os.Stderr, "submit endpoint not configured; submission is disabled")
		}
		return http.ListenAndServe(cfg.Server.Addr, s.Handler())
	},
}

// validateServeConfig checks the settings serve cannot run without.
// The identity phone is only sent on submission, so it is required
// only when a submit endpoint is configured.
func validateServeConfig(cfg types.Config) error {
	if cfg.Credential == "" {
		return fmt.Errorf("no credential configured: set credential in the config, RESUME_MCP_CREDENTIAL, or .secrets/app-credential")
	}
	if cfg.SubmitEndpoint != "" && cfg.IdentityPhone == "" {
		return fmt.Errorf("no identity phone configured: set identity_phone or .secrets/identity-phone")
	}
	return nil
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")

	rootCmd.AddCommand(serveCmd)
}
