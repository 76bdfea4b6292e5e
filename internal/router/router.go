package router

import (
	"time"

	"gramseva/config"
	"gramseva/internal/handler"
	"gramseva/internal/middleware"
	"gramseva/internal/repository"
	"gramseva/internal/service"
	"gramseva/pkg/mailer"
	"gramseva/pkg/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type handlers struct {
	auth    *handler.AuthHandler
	village *handler.VillageHandler
	member  *handler.MemberHandler
	scheme  *handler.SchemeHandler
	gallery *handler.GalleryHandler
	message *handler.MessageHandler
	pages   *handler.PagesHandler
	admin   *handler.AdminHandler
}

func buildHandlers(cfg *config.Config, db *gorm.DB, store *storage.Store, mail mailer.Mailer, log *zap.Logger) handlers {
	userRepo := repository.NewUserRepository(db)
	villageRepo := repository.NewVillageRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	schemeRepo := repository.NewSchemeRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	notifySvc := service.NewNotifyService(mail, log)

	return handlers{
		auth:    handler.NewAuthHandler(cfg, userRepo),
		village: handler.NewVillageHandler(villageRepo, store),
		member:  handler.NewMemberHandler(memberRepo, store),
		scheme:  handler.NewSchemeHandler(schemeRepo),
		gallery: handler.NewGalleryHandler(galleryRepo, store),
		message: handler.NewMessageHandler(messageRepo, notifySvc),
		pages:   handler.NewPagesHandler(villageRepo, memberRepo, schemeRepo, galleryRepo, messageRepo, notifySvc, log),
		admin:   handler.NewAdminHandler(cfg, userRepo, villageRepo, memberRepo, schemeRepo, galleryRepo, messageRepo, store, log),
	}
}

func newEngine(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))
	r.MaxMultipartMemory = cfg.Media.MaxUploadMB << 20
	return r
}

// Setup builds the full engine: public pages, admin area, REST API and
// media/static file serving.
func Setup(cfg *config.Config, db *gorm.DB, store *storage.Store, mail mailer.Mailer, log *zap.Logger) *gin.Engine {
	r := newEngine(cfg)
	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "web/static")
	r.Static("/media", store.Root())

	h := buildHandlers(cfg, db, store, mail, log)
	registerPages(r, cfg, h)
	registerAPI(r, cfg, h)
	return r
}

// SetupAPI builds an engine carrying only the REST API. Handler tests
// use it so no template directory is needed.
func SetupAPI(cfg *config.Config, db *gorm.DB, store *storage.Store, mail mailer.Mailer, log *zap.Logger) *gin.Engine {
	r := newEngine(cfg)
	registerAPI(r, cfg, buildHandlers(cfg, db, store, mail, log))
	return r
}

func registerPages(r *gin.Engine, cfg *config.Config, h handlers) {
	authMw := middleware.AuthRequired(&cfg.JWT)
	staffMw := middleware.StaffRequired()

	r.GET("/", h.pages.Home)
	r.GET("/about", h.pages.About)
	r.GET("/members", h.pages.Members)
	r.GET("/schemes", h.pages.Schemes)
	r.GET("/gallery", h.pages.Gallery)
	r.GET("/contact", h.pages.Contact)
	r.POST("/contact", h.pages.SubmitContact)

	r.GET("/admin/login", h.admin.LoginPage)
	r.POST("/admin/login", h.admin.Login)
	r.POST("/admin/logout", h.admin.Logout)
	adminPages := r.Group("/admin", authMw, staffMw)
	{
		adminPages.GET("/dashboard", h.admin.Dashboard)
		adminPages.GET("/village", h.admin.VillagePage)
		adminPages.POST("/village", h.admin.SaveVillage)
		adminPages.GET("/members", h.admin.MembersPage)
		adminPages.POST("/members", h.admin.SaveMember)
		adminPages.POST("/members/:id/delete", h.admin.DeleteMember)
	}
}

func registerAPI(r *gin.Engine, cfg *config.Config, h handlers) {
	authMw := middleware.AuthRequired(&cfg.JWT)
	optionalMw := middleware.OptionalAuth(&cfg.JWT)
	staffMw := middleware.StaffRequired()

	api := r.Group("/api/v1")
	{
		api.POST("/auth/login", h.auth.Login)

		village := api.Group("/village")
		{
			village.GET("", h.village.List)
			village.GET("/:id", h.village.Get)
			village.POST("", authMw, staffMw, h.village.Create)
			village.PUT("/:id", authMw, staffMw, h.village.Update)
			village.DELETE("/:id", authMw, staffMw, h.village.Delete)
		}

		members := api.Group("/members")
		{
			members.GET("", h.member.List)
			members.GET("/:id", h.member.Get)
			members.POST("", authMw, staffMw, h.member.Create)
			members.PUT("/:id", authMw, staffMw, h.member.Update)
			members.DELETE("/:id", authMw, staffMw, h.member.Delete)
		}

		schemes := api.Group("/schemes")
		{
			schemes.GET("", h.scheme.List)
			schemes.GET("/:id", h.scheme.Get)
			schemes.POST("", authMw, staffMw, h.scheme.Create)
			schemes.PUT("/:id", authMw, staffMw, h.scheme.Update)
			schemes.DELETE("/:id", authMw, staffMw, h.scheme.Delete)
		}

		gallery := api.Group("/gallery")
		{
			// list narrows to featured for non-staff, so it only needs
			// to know whether a staff token is present
			gallery.GET("", optionalMw, h.gallery.List)
			gallery.GET("/:id", h.gallery.Get)
			gallery.POST("", authMw, staffMw, h.gallery.Create)
			gallery.PUT("/:id", authMw, staffMw, h.gallery.Update)
			gallery.DELETE("/:id", authMw, staffMw, h.gallery.Delete)
		}

		messages := api.Group("/messages")
		{
			messages.POST("", h.message.Create) // public contact path
			messages.GET("", authMw, staffMw, h.message.List)
			messages.GET("/:id", authMw, staffMw, h.message.Get)
			messages.PUT("/:id", authMw, staffMw, h.message.Update)
			messages.DELETE("/:id", authMw, staffMw, h.message.Delete)
			messages.POST("/:id/read", authMw, staffMw, h.message.MarkRead)
		}
	}
}
