package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TallerHub/taller-quotes-api/internal/audit"
	"github.com/TallerHub/taller-quotes-api/internal/config"
	"github.com/TallerHub/taller-quotes-api/internal/handlers"
	infraRepo "github.com/TallerHub/taller-quotes-api/internal/infra/repository"
	"github.com/TallerHub/taller-quotes-api/internal/mailer"
	"github.com/TallerHub/taller-quotes-api/internal/middleware"
	"github.com/TallerHub/taller-quotes-api/internal/permissions"
	"github.com/TallerHub/taller-quotes-api/internal/render"
	"github.com/TallerHub/taller-quotes-api/internal/tokens"
	ucBudget "github.com/TallerHub/taller-quotes-api/internal/usecase/budget"
	ucClient "github.com/TallerHub/taller-quotes-api/internal/usecase/client"
)

type Deps struct {
	Resets   tokens.ResetStore
	Mail     mailer.Mailer
	Renderer render.Renderer
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, deps Deps) {

	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	budgetRepo := infraRepo.NewBudgetGormRepository(db)
	clientRepo := infraRepo.NewClientGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createBudgetUC := ucBudget.NewCreateBudget(budgetRepo, auditDispatcher)
	updateBudgetUC := ucBudget.NewUpdateBudget(budgetRepo, auditDispatcher)
	deleteBudgetUC := ucBudget.NewDeleteBudget(budgetRepo, auditDispatcher)
	previewNumberUC := ucBudget.NewPreviewNumber(budgetRepo)
	summarizeUC := ucBudget.NewSummarizeBudgets(budgetRepo)

	saveClientUC := ucClient.NewSaveClient(clientRepo, auditDispatcher, cfg.ReconcileTx)
	deleteClientUC := ucClient.NewDeleteClient(clientRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, deps.Resets, deps.Mail)
	meHandler := handlers.NewMeHandler(db)

	branchHandler := handlers.NewBranchHandler(db)
	supplierHandler := handlers.NewSupplierHandler(db)
	productHandler := handlers.NewProductHandler(db)

	clientHandler := handlers.NewClientHandler(db, saveClientUC, deleteClientUC)

	budgetHandler := handlers.NewBudgetHandler(
		db,
		createBudgetUC,
		updateBudgetUC,
		deleteBudgetUC,
		previewNumberUC,
		summarizeUC,
		deps.Renderer,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/forgot-password", authHandler.ForgotPassword)
		api.POST("/auth/reset-password", authHandler.ResetPassword)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// BRANCHES
			// ------------------------------
			secured.GET("/branches", branchHandler.List)
			branchesW := secured.Group("/")
			branchesW.Use(middleware.RequireCapability(permissions.CapManageBranches))
			{
				branchesW.POST("/branches", branchHandler.Create)
				branchesW.PATCH("/branches/:id", branchHandler.Update)
				branchesW.DELETE("/branches/:id", branchHandler.Delete)
			}

			// ------------------------------
			// CATALOG
			// ------------------------------
			secured.GET("/suppliers", supplierHandler.List)
			secured.GET("/products", productHandler.List)
			catalogW := secured.Group("/")
			catalogW.Use(middleware.RequireCapability(permissions.CapManageCatalog))
			{
				catalogW.POST("/suppliers", supplierHandler.Create)
				catalogW.PATCH("/suppliers/:id", supplierHandler.Update)
				catalogW.DELETE("/suppliers/:id", supplierHandler.Delete)

				catalogW.POST("/products", productHandler.Create)
				catalogW.PATCH("/products/:id", productHandler.Update)
				catalogW.DELETE("/products/:id", productHandler.Delete)
			}

			// ------------------------------
			// CLIENTS (+ vehicle reconciliation)
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.GET("/clients/:id", clientHandler.Get)
			clientsW := secured.Group("/")
			clientsW.Use(middleware.RequireCapability(permissions.CapManageClients))
			{
				clientsW.POST("/clients", clientHandler.Create)
				clientsW.PUT("/clients/:id", clientHandler.Update)
				clientsW.DELETE("/clients/:id", clientHandler.Delete)
			}

			// ------------------------------
			// BUDGETS
			// ------------------------------
			secured.GET("/budgets", budgetHandler.List)
			secured.GET("/budgets/next-number", budgetHandler.PreviewNumber)
			secured.GET("/budgets/:id", budgetHandler.Get)
			secured.GET("/budgets/:id/document", budgetHandler.Document)
			budgetsW := secured.Group("/")
			budgetsW.Use(middleware.RequireCapability(permissions.CapManageBudgets))
			{
				budgetsW.POST("/budgets", budgetHandler.Create)
				budgetsW.PUT("/budgets/:id", budgetHandler.Update)
				budgetsW.DELETE("/budgets/:id", budgetHandler.Delete)
			}

			// ------------------------------
			// AUDIT
			// ------------------------------
			auditR := secured.Group("/")
			auditR.Use(middleware.RequireCapability(permissions.CapViewAuditLogs))
			{
				auditR.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
