package endpoints

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/jpsantiago/aralplan/internal/api"
	"github.com/jpsantiago/aralplan/internal/printview"
	"github.com/jpsantiago/aralplan/internal/svcctx"
)

// PrintViewEndpoint handles GET /api/plan/print. It renders the plan as a
// print-ready DLL page, one landscape page per day.
type PrintViewEndpoint struct{}

var _ api.Endpoint = (*PrintViewEndpoint)(nil)

func (e *PrintViewEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/plan/print", e.handler
}

func (e *PrintViewEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Render the printable plan
//	@Description	Returns a self-contained HTML page formatted for printing
//	@Tags			export
//	@Produce		html
//	@Success		200	{string}	string
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/plan/print [get]
func (e *PrintViewEndpoint) handler(w http.ResponseWriter, r *http.Request) {
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

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := printview.Render(w, data, store.PrintInfo()); err != nil {
		svcctx.LoggerFrom(r.Context()).Error("print view render failed", "error", err)
	}
}

func (e *PrintViewEndpoint) Command(getServerURL func() string) *cobra.Command {
	var outputPath string
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Render the printable plan as HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			data, err := client.GetRaw(cmd.Context(), "/api/plan/print")
			if err != nil {
				return err
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, data, 0644); err != nil {
					return fmt.Errorf("failed to write file: %w", err)
				}
				fmt.Printf("Saved to: %s\n", outputPath)
				return nil
			}

			fmt.Print(string(data))
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path")
	return cmd
}
