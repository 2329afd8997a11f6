package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jpsantiago/aralplan/internal/api"
	"github.com/jpsantiago/aralplan/internal/generate"
	"github.com/jpsantiago/aralplan/internal/svcctx"
	"github.com/jpsantiago/aralplan/internal/types"
)

// GenerateEndpoint handles POST /api/plan/generate. The generated plan
// replaces whatever plan the store currently holds.
type GenerateEndpoint struct{}

var _ api.Endpoint = (*GenerateEndpoint)(nil)

func (e *GenerateEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/plan/generate", e.handler
}

func (e *GenerateEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Generate a lesson plan
//	@Description	Runs a single schema-constrained model call and stores the resulting plan
//	@Tags			plan
//	@Accept			json
//	@Produce		json
//	@Param			request	body		generate.Request	true	"Generation inputs"
//	@Success		200		{object}	types.GeneratedData
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/api/plan/generate [post]
func (e *GenerateEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req generate.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	ctx := r.Context()
	store := svcctx.StoreFrom(ctx)
	if store == nil {
		writeError(w, http.StatusServiceUnavailable, "plan store not initialized")
		return
	}

	generator := svcctx.GeneratorFrom(ctx)
	if generator == nil {
		writeError(w, http.StatusServiceUnavailable, "no LLM provider configured")
		return
	}

	// One generation at a time. The flag also backs the UI busy indicator.
	if !store.BeginGeneration() {
		writeError(w, http.StatusConflict, "a generation is already in progress")
		return
	}
	defer store.EndGeneration()

	logger := svcctx.LoggerFrom(ctx)

	data, err := generator.Generate(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, generate.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, generate.ErrMalformedResponse):
			logger.Error("model returned malformed lesson plan", "error", err)
			writeError(w, http.StatusBadGateway, err.Error())
		default:
			logger.Error("lesson plan generation failed", "error", err)
			writeError(w, http.StatusBadGateway, err.Error())
		}
		return
	}

	store.Set(data)
	writeJSON(w, http.StatusOK, data)
}

func (e *GenerateEndpoint) Command(getServerURL func() string) *cobra.Command {
	var (
		competency string
		days       int
		language   string
		pdfPath    string
		integrate  bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a lesson plan",
		Long: `Generate a multi-day DepEd lesson plan from a learning competency,
optionally grounded in the text of a reference PDF.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			serverURL := getServerURL()

			req := generate.Request{
				Competency:          competency,
				NumberOfDays:        days,
				Language:            language,
				IntegrateObjectives: integrate,
			}

			// Extract reference text server-side first, then feed it into
			// the generation request.
			if pdfPath != "" {
				text, err := extractPDFViaServer(ctx, serverURL, pdfPath)
				if err != nil {
					return err
				}
				req.PDFText = text
			}

			client := api.NewClient(serverURL)
			var resp types.GeneratedData
			if err := client.Post(ctx, "/api/plan/generate", req, &resp); err != nil {
				return err
			}

			return api.Output(resp)
		},
	}
	cmd.Flags().StringVarP(&competency, "competency", "c", "", "Learning competency to plan for")
	cmd.Flags().IntVarP(&days, "days", "d", 1, "Number of days to plan")
	cmd.Flags().StringVarP(&language, "language", "l", "English", "Output language")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Reference PDF to ground the plan in")
	cmd.Flags().BoolVar(&integrate, "integrate-objectives", false, "Use SOLO/HOTS objectives instead of a plain list")
	return cmd
}
