package handler

import (
	"net/http"
	"time"

	"gramseva/internal/domain"
	"gramseva/internal/models"
	"gramseva/internal/repository"
	"gramseva/pkg/images"
	"gramseva/pkg/storage"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	repo  *repository.MemberRepository
	store *storage.Store
}

func NewMemberHandler(repo *repository.MemberRepository, store *storage.Store) *MemberHandler {
	return &MemberHandler{repo: repo, store: store}
}

// MemberForm is the typed input for member writes (multipart, the
// photo travels with it). Dates use YYYY-MM-DD.
type MemberForm struct {
	Name           string `form:"name" binding:"required,max=200"`
	Position       string `form:"position" binding:"required"`
	ContactNumber  string `form:"contact_number" binding:"max=20"`
	Email          string `form:"email" binding:"omitempty,email"`
	Address        string `form:"address"`
	Bio            string `form:"bio"`
	TermStartDate  string `form:"term_start_date"`
	TermEndDate    string `form:"term_end_date"`
	FacebookURL    string `form:"facebook_url" binding:"omitempty,url"`
	WhatsappNumber string `form:"whatsapp_number" binding:"max=20"`
	IsActive       *bool  `form:"is_active"`
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (f *MemberForm) apply(c *gin.Context, m *models.Member) bool {
	if !domain.ValidPosition(f.Position) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid position"})
		return false
	}
	start, err := parseDate(f.TermStartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid term_start_date (use YYYY-MM-DD)"})
		return false
	}
	end, err := parseDate(f.TermEndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid term_end_date (use YYYY-MM-DD)"})
		return false
	}
	m.Name = f.Name
	m.Position = f.Position
	m.ContactNumber = f.ContactNumber
	m.Email = f.Email
	m.Address = f.Address
	m.Bio = f.Bio
	m.TermStartDate = start
	m.TermEndDate = end
	m.FacebookURL = f.FacebookURL
	m.WhatsappNumber = f.WhatsappNumber
	if f.IsActive != nil {
		m.IsActive = *f.IsActive
	}
	return true
}

// List returns active members ordered by (position, name); ?position=
// narrows to one position.
func (h *MemberHandler) List(c *gin.Context) {
	position := c.Query("position")
	if position != "" && !domain.ValidPosition(position) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid position"})
		return
	}
	list, err := h.repo.List(true, position)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": list})
}

func (h *MemberHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := h.repo.GetByID(id)
	if !getOrNotFound(c, err) {
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *MemberHandler) Create(c *gin.Context) {
	var form MemberForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m := &models.Member{IsActive: true}
	if !form.apply(c, m) {
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo is required"})
		return
	}
	res, ok := normalizedUpload(c, file, images.MemberPhoto)
	if !ok {
		return
	}
	path, err := h.store.Save(storage.MemberDir, file.Filename, res.Data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store photo"})
		return
	}
	m.PhotoPath = path

	if err := h.repo.Create(m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *MemberHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := h.repo.GetByID(id)
	if !getOrNotFound(c, err) {
		return
	}
	var form MemberForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !form.apply(c, m) {
		return
	}

	var oldPhoto string
	if file, err := c.FormFile("photo"); err == nil {
		res, ok := normalizedUpload(c, file, images.MemberPhoto)
		if !ok {
			return
		}
		path, err := h.store.Save(storage.MemberDir, file.Filename, res.Data)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store photo"})
			return
		}
		oldPhoto = m.PhotoPath
		m.PhotoPath = path
	}

	if err := h.repo.Update(m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	// the replaced file goes only once the row points at the new one
	if oldPhoto != "" && oldPhoto != m.PhotoPath {
		_ = h.store.Remove(oldPhoto)
	}
	c.JSON(http.StatusOK, m)
}

func (h *MemberHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := h.repo.GetByID(id)
	if !getOrNotFound(c, err) {
		return
	}
	if err := h.repo.Delete(m.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if m.PhotoPath != "" {
		_ = h.store.Remove(m.PhotoPath)
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
