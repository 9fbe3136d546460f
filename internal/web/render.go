package web

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/hpungsan/roster/internal/errors"
	"github.com/hpungsan/roster/internal/student"
)

// markdown renders GFM tables. Raw HTML in input is omitted.
var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// PageData is the template data for the roster page.
type PageData struct {
	Title     string
	Version   string
	SessionID string
	Body      template.HTML
}

// renderError writes the error envelope with the status carried by the error.
// Internal error details are not exposed.
func renderError(c *gin.Context, err error) {
	var rErr *errors.RosterError
	if !stderrors.As(err, &rErr) {
		rErr = errors.NewInternal(err)
	}

	errorObj := gin.H{
		"code":    rErr.Code,
		"message": rErr.Message,
		"status":  rErr.Status,
	}
	if rErr.Code != errors.ErrInternal && rErr.Details != nil {
		errorObj["details"] = rErr.Details
	}
	c.AbortWithStatusJSON(rErr.Status, gin.H{"error": errorObj})
}

// renderMarkdown converts markdown text to HTML using goldmark.
func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

// rosterMarkdown builds the page body for the given records.
func rosterMarkdown(records []student.Record, capacity int, order string) string {
	var b strings.Builder
	b.WriteString("# Roster\n\n")
	fmt.Fprintf(&b, "%d of %d students", len(records), capacity)
	if order != "" {
		fmt.Fprintf(&b, ", viewed by %s", order)
	}
	b.WriteString(".\n\n")
	if len(records) == 0 {
		b.WriteString("_No students._\n")
		return b.String()
	}
	b.WriteString(student.MarkdownTable(records))
	return b.String()
}

// renderPage executes the page template and writes it with status 200.
func (h *Handlers) renderPage(c *gin.Context, data PageData) {
	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		h.logger.Error("template execution error", "error", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
