package web

import (
	stderrors "errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hpungsan/roster/internal/errors"
	"github.com/hpungsan/roster/internal/ops"
	"github.com/hpungsan/roster/internal/seed"
	"github.com/hpungsan/roster/internal/student"
)

// Handlers contains HTTP route handlers for the roster API.
type Handlers struct {
	roster  *ops.Roster
	logger  *slog.Logger
	page    *template.Template
	version string
}

// AddRequest is the JSON body for POST /api/students.
type AddRequest struct {
	ID    *int     `json:"id"`
	Name  string   `json:"name"`
	Grade *float64 `json:"grade"`
}

// SortRequest is the JSON body for POST /api/students/sort.
type SortRequest struct {
	Key       string `json:"key"`
	Ascending *bool  `json:"ascending"`
}

// HandlePing handles GET /api/ping.
func (h *Handlers) HandlePing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// HandleStatus handles GET /api/status.
func (h *Handlers) HandleStatus(c *gin.Context) {
	result, err := ops.Status(h.roster)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleList handles GET /api/students.
func (h *Handlers) HandleList(c *gin.Context) {
	result, err := ops.List(h.roster)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleAdd handles POST /api/students.
func (h *Handlers) HandleAdd(c *gin.Context) {
	var req AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		renderError(c, errors.NewInvalidRequest("invalid request body: "+err.Error()))
		return
	}
	if req.ID == nil {
		renderError(c, errors.NewInvalidRequest("id is required"))
		return
	}
	if req.Grade == nil {
		renderError(c, errors.NewInvalidRequest("grade is required"))
		return
	}

	result, err := ops.Add(h.roster, ops.AddInput{ID: *req.ID, Name: req.Name, Grade: *req.Grade})
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// HandleSearch handles GET /api/students/:id. An empty result is a 200.
func (h *Handlers) HandleSearch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	result, err := ops.Search(h.roster, ops.SearchInput{ID: id})
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleExists handles GET /api/students/:id/exists.
func (h *Handlers) HandleExists(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	result, err := ops.Exists(h.roster, ops.ExistsInput{ID: id})
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleDelete handles DELETE /api/students/:id.
func (h *Handlers) HandleDelete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	result, err := ops.Delete(h.roster, ops.DeleteInput{ID: id})
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleSort handles POST /api/students/sort.
func (h *Handlers) HandleSort(c *gin.Context) {
	var req SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		renderError(c, errors.NewInvalidRequest("invalid request body: "+err.Error()))
		return
	}
	result, err := ops.Sort(h.roster, ops.SortInput{Key: req.Key, Ascending: req.Ascending})
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleUndo handles POST /api/undo.
func (h *Handlers) HandleUndo(c *gin.Context) {
	result, err := ops.Undo(h.roster)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleImport handles POST /api/import. The workbook is read from the
// multipart "file" field; the optional "sheet" field selects a worksheet.
func (h *Handlers) HandleImport(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			renderError(c, errors.NewInvalidRequest(fmt.Sprintf("upload too large (max %d bytes)", maxUploadBytes)))
			return
		}
		renderError(c, errors.NewInvalidRequest("error retrieving uploaded file: "+err.Error()))
		return
	}
	defer file.Close()

	result, err := seed.ImportReader(h.roster, file, seed.ImportInput{Sheet: c.PostForm("sheet")})
	if err != nil {
		renderError(c, err)
		return
	}

	h.logger.Info("workbook imported",
		"file", header.Filename,
		"sheet", result.Sheet,
		"imported", result.Imported,
		"skipped", len(result.Skipped),
	)
	c.JSON(http.StatusOK, result)
}

// HandleIndex handles GET / and renders the roster as an HTML table.
// The optional sort and order query parameters reorder the view only;
// the roster itself is left untouched.
func (h *Handlers) HandleIndex(c *gin.Context) {
	list, err := ops.List(h.roster)
	if err != nil {
		renderError(c, err)
		return
	}

	var order string
	if s := c.Query("sort"); s != "" {
		key, ok := student.ParseKey(s)
		if !ok {
			renderError(c, errors.NewInvalidRequest(fmt.Sprintf("sort key must be one of id, name, grade (got %q)", s)))
			return
		}
		ascending := !strings.EqualFold(c.Query("order"), "desc")
		student.SortBy(list.Items, key, ascending)
		order = string(key)
		if !ascending {
			order += " descending"
		}
	}

	h.renderPage(c, PageData{
		Title:     "Roster",
		Version:   h.version,
		SessionID: h.roster.SessionID(),
		Body:      renderMarkdown(rosterMarkdown(list.Items, list.Capacity, order)),
	})
}

// pathID parses the :id path parameter, writing a 400 on failure.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		renderError(c, errors.NewInvalidRequest(fmt.Sprintf("id must be an integer (got %q)", c.Param("id"))))
		return 0, false
	}
	return id, true
}
