package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jpsantiago/aralplan/internal/api"
	"github.com/jpsantiago/aralplan/internal/svcctx"
	"github.com/jpsantiago/aralplan/internal/types"
)

// GetPrintInfoEndpoint handles GET /api/plan/info.
type GetPrintInfoEndpoint struct{}

var _ api.Endpoint = (*GetPrintInfoEndpoint)(nil)

func (e *GetPrintInfoEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/plan/info", e.handler
}

func (e *GetPrintInfoEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Get the DLL header info
//	@Description	Returns the school/teacher header block used on printed output
//	@Tags			plan
//	@Produce		json
//	@Success		200	{object}	types.PrintInfo
//	@Router			/api/plan/info [get]
func (e *GetPrintInfoEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	store := svcctx.StoreFrom(r.Context())
	if store == nil {
		writeError(w, http.StatusServiceUnavailable, "plan store not initialized")
		return
	}
	writeJSON(w, http.StatusOK, store.PrintInfo())
}

func (e *GetPrintInfoEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Get the print header info",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp types.PrintInfo
			if err := client.Get(cmd.Context(), "/api/plan/info", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// SetPrintInfoEndpoint handles PUT /api/plan/info.
type SetPrintInfoEndpoint struct{}

var _ api.Endpoint = (*SetPrintInfoEndpoint)(nil)

func (e *SetPrintInfoEndpoint) Route() (string, string, http.HandlerFunc) {
	return "PUT", "/api/plan/info", e.handler
}

func (e *SetPrintInfoEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Set the DLL header info
//	@Description	Replaces the school/teacher header block used on printed output
//	@Tags			plan
//	@Accept			json
//	@Produce		json
//	@Param			request	body		types.PrintInfo	true	"Header fields"
//	@Success		200		{object}	types.PrintInfo
//	@Failure		400		{object}	ErrorResponse
//	@Router			/api/plan/info [put]
func (e *SetPrintInfoEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var info types.PrintInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	store := svcctx.StoreFrom(r.Context())
	if store == nil {
		writeError(w, http.StatusServiceUnavailable, "plan store not initialized")
		return
	}

	store.SetPrintInfo(info)
	writeJSON(w, http.StatusOK, store.PrintInfo())
}

func (e *SetPrintInfoEndpoint) Command(getServerURL func() string) *cobra.Command {
	var (
		school       string
		teacher      string
		gradeLevel   string
		learningArea string
		quarter      string
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the print header info",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := api.NewClient(getServerURL())

			// Start from the current values so unset flags keep them.
			var info types.PrintInfo
			if err := client.Get(ctx, "/api/plan/info", &info); err != nil {
				return err
			}
			if cmd.Flags().Changed("school") {
				info.School = school
			}
			if cmd.Flags().Changed("teacher") {
				info.Teacher = teacher
			}
			if cmd.Flags().Changed("grade-level") {
				info.GradeLevel = gradeLevel
			}
			if cmd.Flags().Changed("learning-area") {
				info.LearningArea = learningArea
			}
			if cmd.Flags().Changed("quarter") {
				info.Quarter = quarter
			}

			var resp types.PrintInfo
			if err := client.Put(ctx, "/api/plan/info", info, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&school, "school", "", "School name")
	cmd.Flags().StringVar(&teacher, "teacher", "", "Teacher name")
	cmd.Flags().StringVar(&gradeLevel, "grade-level", "", "Grade level")
	cmd.Flags().StringVar(&learningArea, "learning-area", "", "Learning area")
	cmd.Flags().StringVar(&quarter, "quarter", "", "Quarter")
	return cmd
}
