package endpoints

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jpsantiago/aralplan/internal/api"
	"github.com/jpsantiago/aralplan/internal/pdftext"
	"github.com/jpsantiago/aralplan/internal/svcctx"
)

// ExtractResponse is returned when PDF text extraction succeeds.
type ExtractResponse struct {
	FileName string `json:"file_name"`
	Pages    int    `json:"pages"`
	Chars    int    `json:"chars"`
	Text     string `json:"text"`
}

// ExtractPDFEndpoint handles POST /api/pdf/extract with a multipart file
// upload. It returns the concatenated page text for use as reference
// material in a generation request.
type ExtractPDFEndpoint struct{}

var _ api.Endpoint = (*ExtractPDFEndpoint)(nil)

func (e *ExtractPDFEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/pdf/extract", e.handler
}

func (e *ExtractPDFEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Extract text from a PDF
//	@Description	Upload a PDF and receive its concatenated page text
//	@Tags			pdf
//	@Accept			mpfd
//	@Produce		json
//	@Param			file	formData	file	true	"PDF file"
//	@Success		200		{object}	ExtractResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		413		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/api/pdf/extract [post]
func (e *ExtractPDFEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	extractor := svcctx.ExtractorFrom(ctx)
	if extractor == nil {
		writeError(w, http.StatusServiceUnavailable, "pdf extractor not initialized")
		return
	}

	maxBytes := int64(10) << 20
	if cm := svcctx.ConfigFrom(ctx); cm != nil {
		if mb := cm.Get().PDF.MaxSizeMB; mb > 0 {
			maxBytes = int64(mb) << 20
		}
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+(1<<20)) // headroom for the multipart envelope
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse form: %v", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	if header.Size > maxBytes {
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("file exceeds %d MB limit", maxBytes>>20))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to read upload: %v", err))
		return
	}

	result, err := extractor.Extract(data)
	if err != nil {
		if errors.Is(err, pdftext.ErrPdfParse) {
			writeError(w, http.StatusBadRequest, "could not read the uploaded PDF")
			return
		}
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("extraction failed: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, ExtractResponse{
		FileName: header.Filename,
		Pages:    result.Pages,
		Chars:    result.Chars,
		Text:     result.Text,
	})
}

func (e *ExtractPDFEndpoint) Command(getServerURL func() string) *cobra.Command {
	var textOnly bool
	cmd := &cobra.Command{
		Use:   "extract <file.pdf>",
		Short: "Extract text from a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if textOnly {
				text, err := extractPDFViaServer(ctx, getServerURL(), args[0])
				if err != nil {
					return err
				}
				fmt.Println(text)
				return nil
			}

			resp, err := extractPDF(ctx, getServerURL(), args[0])
			if err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().BoolVar(&textOnly, "text", false, "Print only the extracted text")
	return cmd
}

// extractPDF uploads a local PDF to the server's extract endpoint. The api
// client speaks JSON only, so the multipart request is built by hand here.
func extractPDF(ctx context.Context, serverURL, path string) (*ExtractResponse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(data); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, serverURL+"/api/pdf/extract", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
			return nil, fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return nil, fmt.Errorf("server returned %d", resp.StatusCode)
	}

	var result ExtractResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}

func extractPDFViaServer(ctx context.Context, serverURL, path string) (string, error) {
	resp, err := extractPDF(ctx, serverURL, path)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
