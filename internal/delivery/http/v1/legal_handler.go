package v1

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go-studio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// allowedLegalDocs is the allowlist of legal document names.
// Only these values may be requested via GET /v1/legal/:doc.
var allowedLegalDocs = map[string]bool{
	"consent": true,
	"cookies": true,
}

type LegalHandler struct {
	docsDir string
}

// NewLegalHandler registers the legal document routes. Documents are
// markdown files read from docsDir.
func NewLegalHandler(public *gin.RouterGroup, docsDir string) {
	handler := &LegalHandler{docsDir: docsDir}
	public.GET("/legal/:doc", handler.Document)
}

// Document godoc
// @Summary      Legal Document
// @Description  Returns the Markdown content of the requested legal document (consent, cookies).
// @Tags         legal
// @Produce      plain
// @Param        doc  path  string  true  "Document name"
// @Success      200  {string}  string
// @Failure      404  {object}  response.ErrorBody
// @Router       /legal/{doc} [get]
func (h *LegalHandler) Document(c *gin.Context) {
	doc := c.Param("doc")

	// Reject traversal characters before the allowlist check.
	if strings.ContainsAny(doc, `/\`) || strings.Contains(doc, "..") {
		c.Error(apperror.BadRequest("Invalid document name"))
		return
	}

	if !allowedLegalDocs[doc] {
		c.Error(apperror.NotFound("Document not found"))
		return
	}

	path := filepath.Join(h.docsDir, doc+".md")
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.Error(apperror.NotFound("Document not found"))
			return
		}
		c.Error(apperror.Internal(err))
		return
	}

	c.Data(http.StatusOK, "text/markdown; charset=utf-8", content)
}
