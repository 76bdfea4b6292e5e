package handler

import (
	"net/http"

	"gramseva/internal/domain"
	"gramseva/internal/models"
	"gramseva/internal/repository"

	"github.com/gin-gonic/gin"
)

type SchemeHandler struct {
	repo *repository.SchemeRepository
}

func NewSchemeHandler(repo *repository.SchemeRepository) *SchemeHandler {
	return &SchemeHandler{repo: repo}
}

// SchemeRequest is the typed input for scheme writes (JSON; schemes
// carry no image). LaunchDate uses YYYY-MM-DD.
type SchemeRequest struct {
	SchemeName          string `json:"scheme_name" binding:"required,max=200"`
	SchemeCode          string `json:"scheme_code" binding:"required,max=100"`
	Category            string `json:"category" binding:"required"`
	Ministry            string `json:"ministry" binding:"required,max=200"`
	Description         string `json:"description" binding:"required"`
	Objectives          string `json:"objectives" binding:"required"`
	EligibilityCriteria string `json:"eligibility_criteria" binding:"required"`
	Benefits            string `json:"benefits" binding:"required"`
	ApplicationProcess  string `json:"application_process" binding:"required"`
	RequiredDocuments   string `json:"required_documents" binding:"required"`
	ApplicationLink     string `json:"application_link" binding:"omitempty,url"`
	NodalOfficerName    string `json:"nodal_officer_name" binding:"max=200"`
	NodalOfficerContact string `json:"nodal_officer_contact" binding:"max=20"`
	LaunchDate          string `json:"launch_date"`
	IsActive            *bool  `json:"is_active"`
}

func (r *SchemeRequest) apply(c *gin.Context, s *models.Scheme) bool {
	if !domain.ValidSchemeCategory(r.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
		return false
	}
	launch, err := parseDate(r.LaunchDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid launch_date (use YYYY-MM-DD)"})
		return false
	}
	s.SchemeName = r.SchemeName
	s.SchemeCode = r.SchemeCode
	s.Category = r.Category
	s.Ministry = r.Ministry
	s.Description = r.Description
	s.Objectives = r.Objectives
	s.EligibilityCriteria = r.EligibilityCriteria
	s.Benefits = r.Benefits
	s.ApplicationProcess = r.ApplicationProcess
	s.RequiredDocuments = r.RequiredDocuments
	s.ApplicationLink = r.ApplicationLink
	s.NodalOfficerName = r.NodalOfficerName
	s.NodalOfficerContact = r.NodalOfficerContact
	s.LaunchDate = launch
	if r.IsActive != nil {
		s.IsActive = *r.IsActive
	}
	return true
}

// List returns active schemes newest-launch first; ?category= narrows.
func (h *SchemeHandler) List(c *gin.Context) {
	category := c.Query("category")
	if category != "" && !domain.ValidSchemeCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
		return
	}
	list, err := h.repo.List(true, category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"schemes": list})
}

func (h *SchemeHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s, err := h.repo.GetByID(id)
	if !getOrNotFound(c, err) {
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SchemeHandler) Create(c *gin.Context) {
	var req SchemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	exists, err := h.repo.CodeExists(req.SchemeCode, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"error": "scheme code already exists"})
		return
	}
	s := &models.Scheme{IsActive: true}
	if !req.apply(c, s) {
		return
	}
	if err := h.repo.Create(s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *SchemeHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s, err := h.repo.GetByID(id)
	if !getOrNotFound(c, err) {
		return
	}
	var req SchemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	exists, err := h.repo.CodeExists(req.SchemeCode, s.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"error": "scheme code already exists"})
		return
	}
	if !req.apply(c, s) {
		return
	}
	if err := h.repo.Update(s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SchemeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s, err := h.repo.GetByID(id)
	if !getOrNotFound(c, err) {
		return
	}
	if err := h.repo.Delete(s.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
