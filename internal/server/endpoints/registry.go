package endpoints

import (
	"github.com/jpsantiago/aralplan/internal/api"
)

// Config holds dependencies needed by some endpoints.
type Config struct {
	SwaggerSpecPath string
}

// All returns all endpoint instances.
func All(cfg Config) []api.Endpoint {
	return []api.Endpoint{
		// Health endpoints
		&HealthEndpoint{},
		&StatusEndpoint{},

		// Plan endpoints
		&GenerateEndpoint{},
		&GetPlanEndpoint{},
		&ClearPlanEndpoint{},
		&EditSectionEndpoint{},
		&GetPrintInfoEndpoint{},
		&SetPrintInfoEndpoint{},

		// PDF extraction
		&ExtractPDFEndpoint{},

		// Export endpoints
		&ExportTextEndpoint{},
		&ExportDocxEndpoint{},
		&ExportXlsxEndpoint{},
		&PrintViewEndpoint{},

		// Swagger/OpenAPI endpoints
		&SwaggerEndpoint{SpecPath: cfg.SwaggerSpecPath},
		&SwaggerUIEndpoint{},

		// Static files (catch-all, must be last)
		&StaticEndpoint{},
	}
}

// PlanCommands returns endpoints for plan operations.
// This groups plan-related commands under the "plan" subcommand.
func PlanCommands() []api.Endpoint {
	return []api.Endpoint{
		&GetPlanEndpoint{},
		&ClearPlanEndpoint{},
		&EditSectionEndpoint{},
	}
}

// InfoCommands returns endpoints for print header operations.
// This groups header-related commands under the "info" subcommand.
func InfoCommands() []api.Endpoint {
	return []api.Endpoint{
		&GetPrintInfoEndpoint{},
		&SetPrintInfoEndpoint{},
	}
}

// ExportCommands returns endpoints for export operations.
// This groups export-related commands under the "export" subcommand.
func ExportCommands() []api.Endpoint {
	return []api.Endpoint{
		&ExportTextEndpoint{},
		&ExportDocxEndpoint{},
		&ExportXlsxEndpoint{},
		&PrintViewEndpoint{},
	}
}

// PDFCommands returns endpoints for PDF operations.
// This groups extraction commands under the "pdf" subcommand.
func PDFCommands() []api.Endpoint {
	return []api.Endpoint{
		&ExtractPDFEndpoint{},
	}
}
