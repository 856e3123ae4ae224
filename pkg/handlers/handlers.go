package handlers

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travel-vlogs/pkg/chat"
	"travel-vlogs/pkg/config"
	"travel-vlogs/pkg/dataset"
	"travel-vlogs/pkg/gallery"
	"travel-vlogs/pkg/logger"
	"travel-vlogs/pkg/planner"
	"travel-vlogs/pkg/services"
)

// Handler serves the gallery pages and the JSON API
type Handler struct {
	svc *services.Service
	cfg *config.Config
}

// NewHandler creates a handler backed by svc
func NewHandler(svc *services.Service, cfg *config.Config) *Handler {
	return &Handler{svc: svc, cfg: cfg}
}

type filterRequest struct {
	Filter string `json:"filter" form:"filter"`
}

type sortRequest struct {
	Sort string `json:"sort" form:"sort"`
}

type searchRequest struct {
	Query string `json:"query" form:"query"`
}

type chatRequest struct {
	Message string `json:"message" form:"message" binding:"required"`
}

type modalResponse struct {
	Open   bool            `json:"open"`
	Detail *gallery.Detail `json:"detail,omitempty"`
}

// Index renders the gallery page for the current view
func (h *Handler) Index(c *gin.Context) {
	logger.GetLogger().Debug("Generating Index")

	view := h.svc.View()
	page := IndexPage{
		Filter:     string(view.Filter),
		Sort:       string(view.Sort),
		Query:      view.Query,
		Categories: h.svc.Categories(),
		Filters:    append([]string{string(gallery.FilterAll), string(gallery.FilterFeatured), string(gallery.FilterLocal)}, gallery.Categories...),
	}
	page.Count, page.TotalViews, page.TotalLikes = statsLabels(view.Stats)
	for _, k := range gallery.SortKeys {
		page.SortKeys = append(page.SortKeys, string(k))
	}
	for _, e := range view.Entries {
		page.Cards = append(page.Cards, newCard(e, h.svc.FormatRelativeDate(e.UploadedAt)))
	}

	h.render(c, "index.pug", page)
}

// VideoPage opens a vlog and renders its detail page. The template is
// compiled before the view is counted.
func (h *Handler) VideoPage(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.svc.Entry(id); !ok {
		logger.GetLogger().WithField("id", id).Info("Vlog not found")
		c.String(http.StatusNotFound, "vlog not found")
		return
	}

	tmpl, err := compileView(h.cfg.ViewsDir, "video.pug")
	if err != nil {
		h.renderError(c, err)
		return
	}

	detail, err := h.svc.OpenVideo(id)
	if err != nil {
		c.String(http.StatusNotFound, "vlog not found")
		return
	}
	logger.GetLogger().WithField("id", id).Debug("Generating Vlog Page")

	h.write(c, tmpl, newVideoPage(detail))
}

func (h *Handler) render(c *gin.Context, name string, data interface{}) {
	tmpl, err := compileView(h.cfg.ViewsDir, name)
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.write(c, tmpl, data)
}

func (h *Handler) write(c *gin.Context, tmpl *template.Template, data interface{}) {
	body, err := executeView(tmpl, data)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", body)
}

func (h *Handler) renderError(c *gin.Context, err error) {
	logger.GetLogger().WithError(err).Error("Template error")
	c.String(http.StatusInternalServerError, "Internal server error")
}

// GetView returns the current view as JSON
func (h *Handler) GetView(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.View())
}

// GetVlog returns a single vlog without counting a view
func (h *Handler) GetVlog(c *gin.Context) {
	entry, ok := h.svc.Entry(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": gallery.ErrEntryNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// SetFilter changes the active filter
func (h *Handler) SetFilter(c *gin.Context) {
	var req filterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.svc.SetFilter(req.Filter))
}

// SetSort changes the sort order. Unknown keys are rejected and the view is
// returned unchanged.
func (h *Handler) SetSort(c *gin.Context) {
	var req sortRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.svc.SetSort(req.Sort)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "view": view})
		return
	}
	c.JSON(http.StatusOK, view)
}

// Search narrows the view to vlogs matching the query
func (h *Handler) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.svc.Search(req.Query))
}

// Upload adds a vlog from a JSON body or a submitted form
func (h *Handler) Upload(c *gin.Context) {
	var fields gallery.UploadFields
	if err := c.ShouldBind(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := h.svc.Upload(fields)
	if errors.Is(err, gallery.ErrTitleRequired) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// OpenVideo opens the modal for a vlog and counts a view
func (h *Handler) OpenVideo(c *gin.Context) {
	detail, err := h.svc.OpenVideo(c.Param("id"))
	if errors.Is(err, gallery.ErrEntryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetModal reports the open vlog, if any
func (h *Handler) GetModal(c *gin.Context) {
	detail, open := h.svc.Modal()
	res := modalResponse{Open: open}
	if open {
		res.Detail = &detail
	}
	c.JSON(http.StatusOK, res)
}

// CloseModal closes the modal
func (h *Handler) CloseModal(c *gin.Context) {
	h.svc.CloseVideo()
	c.JSON(http.StatusOK, modalResponse{Open: false})
}

// GetCategories lists categories with their entry counts
func (h *Handler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Categories())
}

// GetDestinations lists the destination guide
func (h *Handler) GetDestinations(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Destinations())
}

// GetDestination returns one destination with its vlogs
func (h *Handler) GetDestination(c *gin.Context) {
	detail, err := h.svc.Destination(c.Param("key"))
	if errors.Is(err, services.ErrDestinationNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// PlanTrip returns a day-by-day itinerary for the requested trip
func (h *Handler) PlanTrip(c *gin.Context) {
	var req planner.Request
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	itinerary, err := h.svc.PlanTrip(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, itinerary)
}

// GetNotifications lists notifications that have not expired yet
func (h *Handler) GetNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Notifications())
}

// Export writes the full collection as JSON or YAML
func (h *Handler) Export(c *gin.Context) {
	format := dataset.Format(c.DefaultQuery("format", string(dataset.FormatJSON)))

	var buf bytes.Buffer
	if err := dataset.Encode(&buf, h.svc.Entries(), format); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contentType := "application/json"
	if format == dataset.FormatYAML {
		contentType = "application/yaml"
	}
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// Chat answers a travel question after the configured typing delay
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.cfg.ChatDelay > 0 {
		select {
		case <-time.After(h.cfg.ChatDelay):
		case <-c.Request.Context().Done():
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"name": chat.BotName, "reply": h.svc.Reply(req.Message)})
}

// Healthz returns OK for health checks
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
