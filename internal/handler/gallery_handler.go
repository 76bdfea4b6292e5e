package handler

import (
	"net/http"
	"time"

	"gramseva/internal/domain"
	"gramseva/internal/middleware"
	"gramseva/internal/models"
	"gramseva/internal/repository"
	"gramseva/pkg/images"
	"gramseva/pkg/storage"

	"github.com/gin-gonic/gin"
)

type GalleryHandler struct {
	repo  *repository.GalleryRepository
	store *storage.Store
}

func NewGalleryHandler(repo *repository.GalleryRepository, store *storage.Store) *GalleryHandler {
	return &GalleryHandler{repo: repo, store: store}
}

// GalleryForm is the typed input for gallery writes (multipart).
type GalleryForm struct {
	Title            string `form:"title" binding:"required,max=200"`
	Description      string `form:"description"`
	Category         string `form:"category" binding:"required"`
	PhotographerName string `form:"photographer_name" binding:"max=200"`
	EventDate        string `form:"event_date"`
	Location         string `form:"location" binding:"max=200"`
	Featured         bool   `form:"featured"`
	DisplayOrder     int    `form:"display_order"`
}

func (f *GalleryForm) apply(c *gin.Context, g *models.GalleryImage) bool {
	if !domain.ValidGalleryCategory(f.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
		return false
	}
	eventDate, err := parseDate(f.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event_date (use YYYY-MM-DD)"})
		return false
	}
	g.Title = f.Title
	g.Description = f.Description
	g.Category = f.Category
	g.PhotographerName = f.PhotographerName
	g.EventDate = eventDate
	g.Location = f.Location
	g.Featured = f.Featured
	g.DisplayOrder = f.DisplayOrder
	return true
}

// List narrows to featured images for non-staff callers; staff see the
// unfiltered set. ?category= narrows further.
func (h *GalleryHandler) List(c *gin.Context) {
	category := c.Query("category")
	if category != "" && !domain.ValidGalleryCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
		return
	}
	featuredOnly := !middleware.IsStaff(c)
	list, err := h.repo.List(featuredOnly, category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"images": list})
}

func (h *GalleryHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	g, err := h.repo.GetByID(id)
	if !getOrNotFound(c, err) {
		return
	}
	c.JSON(http.StatusOK, g)
}

func (h *GalleryHandler) Create(c *gin.Context) {
	var form GalleryForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g := &models.GalleryImage{}
	if !form.apply(c, g) {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	res, ok := normalizedUpload(c, file, images.GalleryPhoto)
	if !ok {
		return
	}
	path, err := h.store.Save(storage.GalleryPath(time.Now()), file.Filename, res.Data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store image"})
		return
	}
	g.ImagePath = path

	if err := h.repo.Create(g); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, g)
}

func (h *GalleryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	g, err := h.repo.GetByID(id)
	if !getOrNotFound(c, err) {
		return
	}
	var form GalleryForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !form.apply(c, g) {
		return
	}

	var oldImage string
	if file, err := c.FormFile("image"); err == nil {
		res, ok := normalizedUpload(c, file, images.GalleryPhoto)
		if !ok {
			return
		}
		path, err := h.store.Save(storage.GalleryPath(time.Now()), file.Filename, res.Data)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store image"})
			return
		}
		oldImage = g.ImagePath
		g.ImagePath = path
	}

	if err := h.repo.Update(g); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	if oldImage != "" && oldImage != g.ImagePath {
		_ = h.store.Remove(oldImage)
	}
	c.JSON(http.StatusOK, g)
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	g, err := h.repo.GetByID(id)
	if !getOrNotFound(c, err) {
		return
	}
	if err := h.repo.Delete(g.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if g.ImagePath != "" {
		_ = h.store.Remove(g.ImagePath)
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
