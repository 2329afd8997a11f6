package main

import (
	"github.com/spf13/cobra"

	"github.com/jpsantiago/aralplan/internal/server/endpoints"
)

var serverURL string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Commands that call the running server",
	Long: `API commands call the running aralplan server via HTTP.

These commands require a running server (aralplan serve).
Use --server to specify a custom server URL.

Examples:
  aralplan api health                       # Check server health
  aralplan api generate -c "..." -d 3       # Generate a 3-day plan
  aralplan api plan get                     # Show the current plan
  aralplan api export docx --layout weekly  # Download the weekly grid`,
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Lesson plan commands",
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print header commands",
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export commands",
}

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "PDF extraction commands",
}

// getServerURL returns the server URL at runtime (after flag parsing).
func getServerURL() string {
	return serverURL
}

func init() {
	// Add --server flag to api command (persistent so all subcommands inherit it)
	apiCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://localhost:8787", "Server URL",
	)

	// Health and generation at top level of api
	apiCmd.AddCommand((&endpoints.HealthEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.StatusEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.GenerateEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.SwaggerEndpoint{}).Command(getServerURL))

	// Plan as subcommand group
	for _, ep := range endpoints.PlanCommands() {
		planCmd.AddCommand(ep.Command(getServerURL))
	}

	// Print header as subcommand group
	for _, ep := range endpoints.InfoCommands() {
		infoCmd.AddCommand(ep.Command(getServerURL))
	}

	// Exports as subcommand group
	for _, ep := range endpoints.ExportCommands() {
		exportCmd.AddCommand(ep.Command(getServerURL))
	}

	// PDF extraction as subcommand group
	for _, ep := range endpoints.PDFCommands() {
		pdfCmd.AddCommand(ep.Command(getServerURL))
	}

	apiCmd.AddCommand(planCmd)
	apiCmd.AddCommand(infoCmd)
	apiCmd.AddCommand(exportCmd)
	apiCmd.AddCommand(pdfCmd)
	rootCmd.AddCommand(apiCmd)
}
