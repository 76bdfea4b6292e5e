package handler

import (
	"errors"
	"net/http"

	"gramseva/config"
	"gramseva/internal/auth"
	"gramseva/internal/domain"
	"gramseva/internal/middleware"
	"gramseva/internal/models"
	"gramseva/internal/repository"
	"gramseva/pkg/images"
	"gramseva/pkg/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminHandler serves the staff-only HTML admin area. Pages are gated
// by the same JWT the API uses, carried in a cookie.
type AdminHandler struct {
	cfg         *config.Config
	userRepo    *repository.UserRepository
	villageRepo *repository.VillageRepository
	memberRepo  *repository.MemberRepository
	schemeRepo  *repository.SchemeRepository
	galleryRepo *repository.GalleryRepository
	messageRepo *repository.MessageRepository
	store       *storage.Store
	log         *zap.Logger
}

func NewAdminHandler(
	cfg *config.Config,
	userRepo *repository.UserRepository,
	villageRepo *repository.VillageRepository,
	memberRepo *repository.MemberRepository,
	schemeRepo *repository.SchemeRepository,
	galleryRepo *repository.GalleryRepository,
	messageRepo *repository.MessageRepository,
	store *storage.Store,
	log *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		cfg:         cfg,
		userRepo:    userRepo,
		villageRepo: villageRepo,
		memberRepo:  memberRepo,
		schemeRepo:  schemeRepo,
		galleryRepo: galleryRepo,
		messageRepo: messageRepo,
		store:       store,
		log:         log,
	}
}

func (h *AdminHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.html", gin.H{})
}

func (h *AdminHandler) Login(c *gin.Context) {
	var form struct {
		Email    string `form:"email" binding:"required,email"`
		Password string `form:"password" binding:"required"`
	}
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "admin_login.html", gin.H{"Error": "Email and password are required."})
		return
	}
	u, err := h.userRepo.GetByEmail(form.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			h.log.Error("admin login lookup", zap.Error(err))
		}
		c.HTML(http.StatusUnauthorized, "admin_login.html", gin.H{"Error": "Invalid email or password."})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(form.Password)) != nil {
		c.HTML(http.StatusUnauthorized, "admin_login.html", gin.H{"Error": "Invalid email or password."})
		return
	}
	if !u.IsStaff() {
		c.HTML(http.StatusForbidden, "admin_login.html", gin.H{"Error": "Access denied."})
		return
	}
	token, err := auth.GenerateToken(&h.cfg.JWT, u.ID, u.Email, u.Role)
	if err != nil {
		h.log.Error("admin login token", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "admin_login.html", gin.H{"Error": "Login failed, please try again."})
		return
	}
	c.SetCookie(middleware.TokenCookie, token, int(h.cfg.JWT.Expiry.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (h *AdminHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/admin/login")
}

// Dashboard shows aggregate counts and the five most recent messages.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	memberCount, _ := h.memberRepo.Count()
	schemeCount, _ := h.schemeRepo.Count()
	galleryCount, _ := h.galleryRepo.Count()
	unreadCount, _ := h.messageRepo.CountUnread()
	recent, err := h.messageRepo.Recent(5)
	if err != nil {
		h.log.Error("load recent messages", zap.Error(err))
	}
	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"MemberCount":    memberCount,
		"SchemeCount":    schemeCount,
		"GalleryCount":   galleryCount,
		"UnreadCount":    unreadCount,
		"RecentMessages": recent,
	})
}

func (h *AdminHandler) VillagePage(c *gin.Context) {
	v, err := h.villageRepo.First()
	if err != nil {
		h.log.Error("load village", zap.Error(err))
	}
	c.HTML(http.StatusOK, "admin_village.html", gin.H{"Village": v})
}

// SaveVillage is a single upsert: update the first row if one exists,
// otherwise create it.
func (h *AdminHandler) SaveVillage(c *gin.Context) {
	var form VillageForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "admin_village.html", gin.H{"Error": err.Error()})
		return
	}
	v, err := h.villageRepo.First()
	if err != nil {
		h.log.Error("load village", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "admin_village.html", gin.H{"Error": "Could not load village."})
		return
	}
	creating := v == nil
	if creating {
		v = &models.Village{}
	}
	exists, err := h.villageRepo.NameExists(form.Name, v.ID)
	if err != nil {
		h.log.Error("check village name", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "admin_village.html", gin.H{"Village": v, "Error": "Could not save village."})
		return
	}
	if exists {
		c.HTML(http.StatusConflict, "admin_village.html", gin.H{"Village": v, "Error": "A village with that name already exists."})
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
			h.log.Error("store village photo", zap.Error(err))
			c.HTML(http.StatusInternalServerError, "admin_village.html", gin.H{"Village": v, "Error": "Could not store photo."})
			return
		}
		oldPhoto = v.PhotoPath
		v.PhotoPath = path
	}

	if creating {
		err = h.villageRepo.Create(v)
	} else {
		err = h.villageRepo.Update(v)
	}
	if err != nil {
		h.log.Error("save village", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "admin_village.html", gin.H{"Village": v, "Error": "Could not save village."})
		return
	}
	if oldPhoto != "" && oldPhoto != v.PhotoPath {
		_ = h.store.Remove(oldPhoto)
	}
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (h *AdminHandler) MembersPage(c *gin.Context) {
	members, err := h.memberRepo.List(false, "")
	if err != nil {
		h.log.Error("load members", zap.Error(err))
	}
	c.HTML(http.StatusOK, "admin_members.html", gin.H{
		"Members":        members,
		"Positions":      domain.Positions,
		"PositionLabels": domain.PositionLabels,
	})
}

// SaveMember creates a member, or updates one when member_id is posted.
func (h *AdminHandler) SaveMember(c *gin.Context) {
	var form struct {
		MemberForm
		MemberID uint `form:"member_id"`
	}
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "admin_members.html", gin.H{"Error": err.Error()})
		return
	}

	var m *models.Member
	if form.MemberID != 0 {
		var err error
		m, err = h.memberRepo.GetByID(form.MemberID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.HTML(http.StatusNotFound, "admin_members.html", gin.H{"Error": "Member not found."})
			} else {
				h.log.Error("load member", zap.Error(err))
				c.HTML(http.StatusInternalServerError, "admin_members.html", gin.H{"Error": "Could not load member."})
			}
			return
		}
	} else {
		m = &models.Member{IsActive: true}
	}
	if !form.MemberForm.apply(c, m) {
		return
	}

	var oldPhoto string
	file, err := c.FormFile("photo")
	if err == nil {
		res, ok := normalizedUpload(c, file, images.MemberPhoto)
		if !ok {
			return
		}
		path, err := h.store.Save(storage.MemberDir, file.Filename, res.Data)
		if err != nil {
			h.log.Error("store member photo", zap.Error(err))
			c.HTML(http.StatusInternalServerError, "admin_members.html", gin.H{"Error": "Could not store photo."})
			return
		}
		oldPhoto = m.PhotoPath
		m.PhotoPath = path
	} else if m.PhotoPath == "" {
		c.HTML(http.StatusBadRequest, "admin_members.html", gin.H{"Error": "A photo is required for new members."})
		return
	}

	if form.MemberID != 0 {
		err = h.memberRepo.Update(m)
	} else {
		err = h.memberRepo.Create(m)
	}
	if err != nil {
		h.log.Error("save member", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "admin_members.html", gin.H{"Error": "Could not save member."})
		return
	}
	if oldPhoto != "" && oldPhoto != m.PhotoPath {
		_ = h.store.Remove(oldPhoto)
	}
	c.Redirect(http.StatusFound, "/admin/members")
}

func (h *AdminHandler) DeleteMember(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := h.memberRepo.GetByID(id)
	if !getOrNotFound(c, err) {
		return
	}
	if err := h.memberRepo.Delete(m.ID); err != nil {
		h.log.Error("delete member", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if m.PhotoPath != "" {
		_ = h.store.Remove(m.PhotoPath)
	}
	c.Redirect(http.StatusFound, "/admin/members")
}
