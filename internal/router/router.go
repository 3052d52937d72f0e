package router

import (
	"time"

	"github.com/madouyatt95/laserpark/internal/config"
	"github.com/madouyatt95/laserpark/internal/handler"
	"github.com/madouyatt95/laserpark/internal/middleware"
	"github.com/madouyatt95/laserpark/internal/model"
	"github.com/madouyatt95/laserpark/internal/repository"
	"github.com/madouyatt95/laserpark/internal/service"
	"github.com/madouyatt95/laserpark/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, loc *time.Location) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	parkRepo := repository.NewParkRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	stockRepo := repository.NewStockRepository(db)
	closureRepo := repository.NewClosureRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	planningRepo := repository.NewPlanningRepository(db)
	shortcutRepo := repository.NewShortcutRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	// Worker dispatcher — audit writes go through the redis queue
	dispatcher := worker.NewDispatcher(rdb)

	auditSvc := service.NewAuditService(auditRepo, dispatcher)
	authSvc := service.NewAuthService(userRepo, cfg)
	parkSvc := service.NewParkService(parkRepo)
	categorySvc := service.NewCategoryService(categoryRepo, stockRepo, auditSvc)
	activitySvc := service.NewActivityService(activityRepo, categoryRepo, stockRepo, auditSvc, loc)
	expenseSvc := service.NewExpenseService(expenseRepo, categoryRepo, auditSvc, loc)
	stockSvc := service.NewStockService(stockRepo, auditSvc)
	reportingSvc := service.NewReportingService(activityRepo, expenseRepo, categoryRepo, stockRepo, loc)
	closureSvc := service.NewClosureService(closureRepo, reportingSvc, auditSvc, loc)
	planningSvc := service.NewPlanningService(planningRepo, auditSvc, loc)
	shortcutSvc := service.NewShortcutService(shortcutRepo, categoryRepo, auditSvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	parksH := handler.NewParkHandler(parkSvc, rdb)
	categoriesH := handler.NewCategoryHandler(categorySvc)
	activitiesH := handler.NewActivityHandler(activitySvc)
	expensesH := handler.NewExpenseHandler(expenseSvc)
	stockH := handler.NewStockHandler(stockSvc)
	closuresH := handler.NewClosureHandler(closureSvc)
	reportsH := handler.NewReportHandler(reportingSvc, loc)
	auditH := handler.NewAuditHandler(auditSvc, loc)
	planningH := handler.NewPlanningHandler(planningSvc)
	shortcutsH := handler.NewShortcutHandler(shortcutSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	anyRole := middleware.RequireRole(model.RoleStaff, model.RoleManager, model.RoleSuperAdmin)
	managerUp := middleware.RequireRole(model.RoleManager, model.RoleSuperAdmin)
	superOnly := middleware.RequireRole(model.RoleSuperAdmin)

	v1 := r.Group("/v1", jwtMW)
	{
		// Activities — everyone records; cancellation needs a manager
		v1.POST("/activities", anyRole, activitiesH.Create)
		v1.GET("/activities", anyRole, activitiesH.List)
		v1.POST("/activities/:id/cancel", managerUp, activitiesH.Cancel)

		// Expenses — everyone records, append-only
		v1.POST("/expenses", anyRole, expensesH.Create)
		v1.GET("/expenses", anyRole, expensesH.List)

		// Categories — managers write, everyone reads
		v1.GET("/categories", anyRole, categoriesH.List)
		categories := v1.Group("/categories", managerUp)
		{
			categories.POST("", categoriesH.Create)
			categories.PUT("/:id", categoriesH.Update)
			categories.DELETE("/:id", categoriesH.Deactivate)
		}

		// Stock — everyone reads; movements and item management need a manager
		v1.GET("/stock", anyRole, stockH.List)
		v1.GET("/stock/:id/movements", anyRole, stockH.Movements)
		stock := v1.Group("/stock", managerUp)
		{
			stock.POST("", stockH.CreateItem)
			stock.PUT("/:id", stockH.UpdateItem)
			stock.DELETE("/:id", stockH.DeactivateItem)
			stock.POST("/:id/entry", stockH.Entry)
			stock.POST("/:id/adjust", stockH.Adjust)
		}

		// Closures — cash count is open to staff running the till; the
		// lifecycle itself is manager territory, locking super_admin only
		v1.GET("/team", anyRole, planningH.ListMembers)
		v1.GET("/shifts", anyRole, planningH.ListShifts)
		team := v1.Group("/team", managerUp)
		{
			team.POST("", planningH.CreateMember)
			team.PUT("/:id", planningH.UpdateMember)
			team.POST("/:id/toggle", planningH.ToggleMember)
		}
		shifts := v1.Group("/shifts", managerUp)
		{
			shifts.POST("", planningH.CreateShift)
			shifts.PUT("/:id", planningH.UpdateShift)
			shifts.DELETE("/:id", planningH.DeleteShift)
		}

		v1.GET("/shortcuts", anyRole, shortcutsH.List)
		shortcuts := v1.Group("/shortcuts", managerUp)
		{
			shortcuts.POST("", shortcutsH.Create)
			shortcuts.PUT("/:id", shortcutsH.Update)
			shortcuts.DELETE("/:id", shortcutsH.Delete)
			shortcuts.POST("/reorder", shortcutsH.Reorder)
		}

		v1.POST("/closures/cash-count", anyRole, closuresH.CashCount)
		v1.GET("/closures", anyRole, closuresH.List)
		v1.GET("/closures/date/:date", anyRole, closuresH.GetByDate)
		closures := v1.Group("/closures", managerUp)
		{
			closures.POST("", closuresH.Create)
			closures.POST("/:id/validate", closuresH.Validate)
			closures.POST("/:id/lock", superOnly, closuresH.Lock)
			closures.PUT("/:id/notes", closuresH.UpdateNotes)
			closures.GET("/:id/diff", closuresH.Diff)
		}

		// Reports
		v1.GET("/reports/dashboard", anyRole, reportsH.Dashboard)
		v1.GET("/reports/revenue-by-payment", anyRole, reportsH.RevenueByPayment)
		v1.GET("/reports/revenue-by-category", anyRole, reportsH.RevenueByCategory)

		// Audit trail — managers and above
		v1.GET("/audit", managerUp, auditH.Recent)

		// Parks and users — super_admin only
		parks := v1.Group("/parks", superOnly)
		{
			parks.POST("", parksH.Create)
			parks.GET("", parksH.List)
			parks.GET("/:id", parksH.Get)
			parks.PUT("/:id", parksH.Update)
		}
		users := v1.Group("/users", superOnly)
		{
			users.POST("", authH.CreateUser)
			users.GET("", authH.ListUsers)
			users.PUT("/:id", authH.UpdateUser)
			users.DELETE("/:id", authH.DeactivateUser)
			users.POST("/:id/reactivate", authH.ReactivateUser)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
