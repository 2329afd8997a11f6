package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jpsantiago/aralplan/internal/api"
	"github.com/jpsantiago/aralplan/internal/svcctx"
	"github.com/jpsantiago/aralplan/internal/types"
)

// GetPlanEndpoint handles GET /api/plan.
type GetPlanEndpoint struct{}

var _ api.Endpoint = (*GetPlanEndpoint)(nil)

func (e *GetPlanEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/plan", e.handler
}

func (e *GetPlanEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Get the current lesson plan
//	@Description	Returns the plan held in memory, including any section edits
//	@Tags			plan
//	@Produce		json
//	@Success		200	{object}	types.GeneratedData
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/plan [get]
func (e *GetPlanEndpoint) handler(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, data)
}

func (e *GetPlanEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Get the current lesson plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp types.GeneratedData
			if err := client.Get(cmd.Context(), "/api/plan", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// ClearPlanEndpoint handles DELETE /api/plan.
type ClearPlanEndpoint struct{}

var _ api.Endpoint = (*ClearPlanEndpoint)(nil)

func (e *ClearPlanEndpoint) Route() (string, string, http.HandlerFunc) {
	return "DELETE", "/api/plan", e.handler
}

func (e *ClearPlanEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Clear the current lesson plan
//	@Description	Drops the plan held in memory
//	@Tags			plan
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/api/plan [delete]
func (e *ClearPlanEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	store := svcctx.StoreFrom(r.Context())
	if store == nil {
		writeError(w, http.StatusServiceUnavailable, "plan store not initialized")
		return
	}

	store.Clear()
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func (e *ClearPlanEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the current lesson plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			if err := client.Delete(cmd.Context(), "/api/plan"); err != nil {
				return err
			}
			fmt.Println("Plan cleared")
			return nil
		},
	}
}

// EditSectionRequest is the body for a section edit.
type EditSectionRequest struct {
	DayIndex  int    `json:"day_index"`
	SectionID string `json:"section_id"`
	Content   string `json:"content"`
}

// EditSectionEndpoint handles PATCH /api/plan/section. Edits against a day
// or section the plan does not carry are accepted and leave the plan
// unchanged, matching the permissive editor semantics.
type EditSectionEndpoint struct{}

var _ api.Endpoint = (*EditSectionEndpoint)(nil)

func (e *EditSectionEndpoint) Route() (string, string, http.HandlerFunc) {
	return "PATCH", "/api/plan/section", e.handler
}

func (e *EditSectionEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Edit a procedure section
//	@Description	Replaces the content of one lettered section of one day
//	@Tags			plan
//	@Accept			json
//	@Produce		json
//	@Param			request	body		EditSectionRequest	true	"Edit to apply"
//	@Success		200		{object}	types.GeneratedData
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/api/plan/section [patch]
func (e *EditSectionEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req EditSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if strings.TrimSpace(req.SectionID) == "" {
		writeError(w, http.StatusBadRequest, "section_id is required")
		return
	}

	store := svcctx.StoreFrom(r.Context())
	if store == nil {
		writeError(w, http.StatusServiceUnavailable, "plan store not initialized")
		return
	}

	if !store.EditSection(req.DayIndex, req.SectionID, req.Content) {
		writeError(w, http.StatusNotFound, "no lesson plan generated yet")
		return
	}

	data, _ := store.Current()
	writeJSON(w, http.StatusOK, data)
}

func (e *EditSectionEndpoint) Command(getServerURL func() string) *cobra.Command {
	var (
		dayIndex  int
		sectionID string
		content   string
	)
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a procedure section of the current plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			req := EditSectionRequest{DayIndex: dayIndex, SectionID: sectionID, Content: content}
			var resp types.GeneratedData
			if err := client.Patch(cmd.Context(), "/api/plan/section", req, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().IntVar(&dayIndex, "day", 0, "Zero-based day index")
	cmd.Flags().StringVar(&sectionID, "section", "", "Section letter (A-J)")
	cmd.Flags().StringVar(&content, "content", "", "Replacement content")
	cmd.MarkFlagRequired("section")
	return cmd
}
