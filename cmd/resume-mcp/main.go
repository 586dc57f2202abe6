// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the resume-mcp CLI: a single
// remote-callable tool that converts a local resume file to Markdown,
// submits it to an ingestion endpoint, and returns the Markdown.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/resume-mcp/internal/secrets"
	"github.com/pdiddy/resume-mcp/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds values loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the resume-mcp CLI.
var rootCmd = &cobra.Command{
	Use:   "resume-mcp",
	Short: "Serve a resume as Markdown to a remote tool-calling framework",
	Long: `resume-mcp hosts one tool, "resume": it reads a local resume file,
converts it to Markdown (direct text extraction for PDFs, pandoc for
document formats, raw text as a fallback), POSTs the Markdown to a
configured ingestion endpoint, and returns the Markdown to the caller.

Use "serve" to host the tool over HTTP, or "convert" to run the
conversion locally without submission.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(secrets.DefaultDir)
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./resume-mcp.yaml or ~/.config/resume-mcp/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("resume-mcp")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "resume-mcp"))
		}
	}

	viper.SetEnvPrefix("RESUME_MCP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// buildConfig materializes the explicit configuration struct from
// viper and the loaded secrets. Config file and environment win over
// secrets files.
func buildConfig() types.Config {
	cfg := types.Config{
		Credential:        stringSetting("credential", secrets.KeyCredential),
		IdentityPhone:     stringSetting("identity_phone", secrets.KeyIdentityPhone),
		SubmitEndpoint:    viper.GetString("submit_endpoint"),
		DefaultResumePath: viper.GetString("default_resume_path"),
		HTTP: types.HTTPConfig{
			Timeout:   viper.GetDuration("http.timeout"),
			UserAgent: viper.GetString("http.user_agent"),
		},
		Server: types.ServerConfig{
			Addr: viper.GetString("server.addr"),
		},
	}
	return cfg.ApplyDefaults()
}

// stringSetting reads a viper key, falling back to a secrets-file key.
func stringSetting(viperKey, secretKey string) string {
	if v := viper.GetString(viperKey); v != "" {
		return v
	}
	return loadedSecrets[secretKey]
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
