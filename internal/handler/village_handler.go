package handler

import (
	"net/http"

	"gramseva/internal/models"
	"gramseva/internal/repository"
	"gramseva/pkg/images"
	"gramseva/pkg/storage"

	"github.com/gin-gonic/gin"
)

type VillageHandler struct {
	repo  *repository.VillageRepository
	store *storage.Store
}

func NewVillageHandler(repo *repository.VillageRepository, store *storage.Store) *VillageHandler {
	return &VillageHandler{repo: repo, store: store}
}

// VillageForm is the typed input for village writes. Writes are
// multipart/form-data because they may carry the photo.
type VillageForm struct {
	Name            string   `form:"village_name" binding:"required,max=200"`
	State           string   `form:"state" binding:"required,max=100"`
	District        string   `form:"district" binding:"required,max=100"`
	Taluka          string   `form:"taluka" binding:"required,max=100"`
	Population      *int     `form:"population"`
	TotalArea       *float64 `form:"total_area"`
	EstablishedYear *int     `form:"established_year"`
	Description     string   `form:"description"`
	History         string   `form:"history"`
	Culture         string   `form:"culture"`
	Agriculture     string   `form:"agriculture"`
	Phone           string   `form:"phone" binding:"max=20"`
	Email           string   `form:"email" binding:"omitempty,email"`
	Address         string   `form:"address"`
}

func (f *VillageForm) apply(v *models.Village) {
	v.Name = f.Name
	v.State = f.State
	v.District = f.District
	v.Taluka = f.Taluka
	v.Population = f.Population
	v.TotalArea = f.TotalArea
	v.EstablishedYear = f.EstablishedYear
	v.Description = f.Description
	v.History = f.History
	v.Culture = f.Culture
	v.Agriculture = f.Agriculture
	v.Phone = f.Phone
	v.Email = f.Email
	v.Address = f.Address
}

func (h *VillageHandler) List(c *gin.Context) {
	list, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"villages": list})
}

func (h *VillageHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	v, err := h.repo.GetByID(id)
	if !getOrNotFound(c, err) {
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *VillageHandler) Create(c *gin.Context) {
	var form VillageForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	exists, err := h.repo.NameExists(form.Name, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"error": "village name already exists"})
		return
	}

	v := &models.Village{}
	form.apply(v)

	if file, err := c.FormFile("village_photo"); err == nil {
		res, ok := normalizedUpload(c, file, images.VillagePhoto)
		if !ok {
			return
		}
		path, err := h.store.Save(storage.VillageDir, file.Filename, res.Data)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store photo"})
			return
		}
		v.PhotoPath = path
	}

	if err := h.repo.Create(v); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *VillageHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	v, err := h.repo.GetByID(id)
	if !getOrNotFound(c, err) {
		return
	}
	var form VillageForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	exists, err := h.repo.NameExists(form.Name, v.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"error": "village name already exists"})
		return
	}
	form.apply(v)

	var oldPhoto string
	if file, err := c.FormFile("village_photo"); err == nil {
		res, ok := normalizedUpload(c, file, images.VillagePhoto)
		if !ok {
			return
		}
		path, err := h.store.Save(storage.VillageDir, file.Filename, res.Data)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store photo"})
			return
		}
		oldPhoto = v.PhotoPath
		v.PhotoPath = path
	}

	if err := h.repo.Update(v); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	if oldPhoto != "" && oldPhoto != v.PhotoPath {
		_ = h.store.Remove(oldPhoto)
	}
	c.JSON(http.StatusOK, v)
}

func (h *VillageHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	v, err := h.repo.GetByID(id)
	if !getOrNotFound(c, err) {
		return
	}
	if err := h.repo.Delete(v.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if v.PhotoPath != "" {
		_ = h.store.Remove(v.PhotoPath)
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
