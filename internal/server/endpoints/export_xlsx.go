package endpoints

import (
	"bytes"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/jpsantiago/aralplan/internal/api"
	"github.com/jpsantiago/aralplan/internal/svcctx"
	"github.com/jpsantiago/aralplan/internal/xlsx"
)

// ExportXlsxEndpoint handles GET /api/plan/export/xlsx. The workbook holds
// one weekly-grid sheet per week of the plan.
type ExportXlsxEndpoint struct{}

var _ api.Endpoint = (*ExportXlsxEndpoint)(nil)

func (e *ExportXlsxEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/plan/export/xlsx", e.handler
}

func (e *ExportXlsxEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Export the plan as a spreadsheet
//	@Description	Generates a weekly-grid .xlsx workbook
//	@Tags			export
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Success		200	{file}		file
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/plan/export/xlsx [get]
func (e *ExportXlsxEndpoint) handler(w http.ResponseWriter, r *http.Request) {
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

	var buf bytes.Buffer
	if err := xlsx.Write(&buf, data, store.PrintInfo()); err != nil {
		svcctx.LoggerFrom(r.Context()).Error("xlsx export failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to generate workbook")
		return
	}

	w.Header().Set("Content-Type", xlsx.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, xlsx.Filename))
	w.Write(buf.Bytes())
}

func (e *ExportXlsxEndpoint) Command(getServerURL func() string) *cobra.Command {
	var outputPath string
	cmd := &cobra.Command{
		Use:   "xlsx",
		Short: "Export the plan as a spreadsheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			data, err := client.GetRaw(cmd.Context(), "/api/plan/export/xlsx")
			if err != nil {
				return err
			}

			if outputPath == "" {
				outputPath = xlsx.Filename
			}
			if err := os.WriteFile(outputPath, data, 0644); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			fmt.Printf("Exported to: %s\n", outputPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path")
	return cmd
}
