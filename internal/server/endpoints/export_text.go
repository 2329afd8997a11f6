package endpoints

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/jpsantiago/aralplan/internal/api"
	"github.com/jpsantiago/aralplan/internal/plan"
	"github.com/jpsantiago/aralplan/internal/svcctx"
)

// ExportTextEndpoint handles GET /api/plan/export/text. The transcript is
// the same text the web UI copies to the clipboard.
type ExportTextEndpoint struct{}

var _ api.Endpoint = (*ExportTextEndpoint)(nil)

func (e *ExportTextEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/plan/export/text", e.handler
}

func (e *ExportTextEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Export the plan as plain text
//	@Description	Returns the clipboard transcript of the current plan
//	@Tags			export
//	@Produce		plain
//	@Success		200	{string}	string
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/plan/export/text [get]
func (e *ExportTextEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	store := svcctx.StoreFrom(r.Context())
	if store == nil {
		writeError(w, http.StatusServiceUnavailable, "plan store not initialized")
		return
	}

	data, ok := store.Current()
	if !ok {
		writeError(w, http.StatusNotFound, "no lesson plan generated yet")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, plan.Transcript(data.LessonPlan, data.Competency))
}

func (e *ExportTextEndpoint) Command(getServerURL func() string) *cobra.Command {
	var outputPath string
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Export the plan as plain text",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			data, err := client.GetRaw(cmd.Context(), "/api/plan/export/text")
			if err != nil {
				return err
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, data, 0644); err != nil {
					return fmt.Errorf("failed to write file: %w", err)
				}
				fmt.Printf("Exported to: %s\n", outputPath)
				return nil
			}

			fmt.Print(string(data))
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path")
	return cmd
}
