package endpoints

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/jpsantiago/aralplan/internal/api"
	"github.com/jpsantiago/aralplan/internal/docx"
	"github.com/jpsantiago/aralplan/internal/svcctx"
)

// ExportDocxEndpoint handles GET /api/plan/export/docx. The layout query
// parameter selects the daily page-per-day document or the landscape
// weekly grid.
type ExportDocxEndpoint struct{}

var _ api.Endpoint = (*ExportDocxEndpoint)(nil)

func (e *ExportDocxEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/plan/export/docx", e.handler
}

func (e *ExportDocxEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Export the plan as a Word document
//	@Description	Generates a DLL-formatted .docx in the requested layout
//	@Tags			export
//	@Produce		application/vnd.openxmlformats-officedocument.wordprocessingml.document
//	@Param			layout	query		string	false	"daily or weekly"	default(daily)
//	@Success		200		{file}		file
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/plan/export/docx [get]
func (e *ExportDocxEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	layout, err := docx.ParseLayout(r.URL.Query().Get("layout"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

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

	buf, err := docx.NewBuilder(data, store.PrintInfo(), layout).BuildToBuffer()
	if err != nil {
		svcctx.LoggerFrom(r.Context()).Error("docx export failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to generate document")
		return
	}

	w.Header().Set("Content-Type", docx.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, layout.Filename()))
	w.Write(buf.Bytes())
}

func (e *ExportDocxEndpoint) Command(getServerURL func() string) *cobra.Command {
	var (
		layoutName string
		outputPath string
	)
	cmd := &cobra.Command{
		Use:   "docx",
		Short: "Export the plan as a Word document",
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := docx.ParseLayout(layoutName)
			if err != nil {
				return err
			}

			client := api.NewClient(getServerURL())
			data, err := client.GetRaw(cmd.Context(), "/api/plan/export/docx?layout="+string(layout))
			if err != nil {
				return err
			}

			if outputPath == "" {
				outputPath = layout.Filename()
			}
			if err := os.WriteFile(outputPath, data, 0644); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			fmt.Printf("Exported to: %s\n", outputPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&layoutName, "layout", "daily", "Document layout (daily or weekly)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path")
	return cmd
}
