package handler

import (
	"net/http"

	"gramseva/internal/domain"
	"gramseva/internal/models"
	"gramseva/internal/repository"
	"gramseva/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PagesHandler renders the public HTML pages.
type PagesHandler struct {
	villageRepo *repository.VillageRepository
	memberRepo  *repository.MemberRepository
	schemeRepo  *repository.SchemeRepository
	galleryRepo *repository.GalleryRepository
	messageRepo *repository.MessageRepository
	notify      *service.NotifyService
	log         *zap.Logger
}

func NewPagesHandler(
	villageRepo *repository.VillageRepository,
	memberRepo *repository.MemberRepository,
	schemeRepo *repository.SchemeRepository,
	galleryRepo *repository.GalleryRepository,
	messageRepo *repository.MessageRepository,
	notify *service.NotifyService,
	log *zap.Logger,
) *PagesHandler {
	return &PagesHandler{
		villageRepo: villageRepo,
		memberRepo:  memberRepo,
		schemeRepo:  schemeRepo,
		galleryRepo: galleryRepo,
		messageRepo: messageRepo,
		notify:      notify,
		log:         log,
	}
}

// currentVillage resolves the configuration-singleton village row; nil
// means none is configured yet and templates render a placeholder.
func (h *PagesHandler) currentVillage() *models.Village {
	v, err := h.villageRepo.First()
	if err != nil {
		h.log.Error("load village", zap.Error(err))
		return nil
	}
	return v
}

func (h *PagesHandler) Home(c *gin.Context) {
	featured, err := h.galleryRepo.Featured(6)
	if err != nil {
		h.log.Error("load featured images", zap.Error(err))
	}
	schemes, err := h.schemeRepo.Recent(3)
	if err != nil {
		h.log.Error("load recent schemes", zap.Error(err))
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Village":        h.currentVillage(),
		"FeaturedImages": featured,
		"Schemes":        schemes,
	})
}

func (h *PagesHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{"Village": h.currentVillage()})
}

func (h *PagesHandler) Members(c *gin.Context) {
	members, err := h.memberRepo.List(true, "")
	if err != nil {
		h.log.Error("load members", zap.Error(err))
	}
	var sarpanch *models.Member
	others := make([]models.Member, 0, len(members))
	for i := range members {
		if sarpanch == nil && members[i].Position == domain.PositionSarpanch {
			sarpanch = &members[i]
			continue
		}
		others = append(others, members[i])
	}
	c.HTML(http.StatusOK, "members.html", gin.H{
		"Sarpanch": sarpanch,
		"Members":  others,
	})
}

func (h *PagesHandler) Schemes(c *gin.Context) {
	category := c.Query("category")
	if category != "" && !domain.ValidSchemeCategory(category) {
		category = ""
	}
	schemes, err := h.schemeRepo.List(true, category)
	if err != nil {
		h.log.Error("load schemes", zap.Error(err))
	}
	c.HTML(http.StatusOK, "schemes.html", gin.H{
		"Schemes":          schemes,
		"Categories":       domain.SchemeCategories,
		"CategoryLabels":   domain.SchemeCategoryLabels,
		"SelectedCategory": category,
	})
}

func (h *PagesHandler) Gallery(c *gin.Context) {
	category := c.Query("category")
	if category != "" && !domain.ValidGalleryCategory(category) {
		category = ""
	}
	images, err := h.galleryRepo.List(false, category)
	if err != nil {
		h.log.Error("load gallery", zap.Error(err))
	}
	c.HTML(http.StatusOK, "gallery.html", gin.H{
		"Images":           images,
		"Categories":       domain.GalleryCategories,
		"CategoryLabels":   domain.GalleryCategoryLabels,
		"SelectedCategory": category,
	})
}

func (h *PagesHandler) Contact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{"Village": h.currentVillage()})
}

type contactForm struct {
	Name    string `form:"name" binding:"required,max=200"`
	Email   string `form:"email" binding:"required,email"`
	Phone   string `form:"phone" binding:"max=20"`
	Subject string `form:"subject" binding:"required,max=300"`
	Message string `form:"message" binding:"required"`
}

// SubmitContact stores the message and always answers with a success
// indicator, never the created record.
func (h *PagesHandler) SubmitContact(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "contact.html", gin.H{
			"Village": h.currentVillage(),
			"Error":   "Please fill in all required fields.",
		})
		return
	}
	m := &models.ContactMessage{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Subject: form.Subject,
		Message: form.Message,
	}
	if err := h.messageRepo.Create(m); err != nil {
		h.log.Error("store contact message", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "contact.html", gin.H{
			"Village": h.currentVillage(),
			"Error":   "Something went wrong, please try again.",
		})
		return
	}
	h.notify.ContactReceived(m)
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"Village": h.currentVillage(),
		"Success": true,
	})
}
