package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TallerHub/taller-quotes-api/internal/assembler"
	"github.com/TallerHub/taller-quotes-api/internal/httperr"
	"github.com/TallerHub/taller-quotes-api/internal/httpresp"
	"github.com/TallerHub/taller-quotes-api/internal/middleware"
	"github.com/TallerHub/taller-quotes-api/internal/models"
	"github.com/TallerHub/taller-quotes-api/internal/render"
	ucBudget "github.com/TallerHub/taller-quotes-api/internal/usecase/budget"
)

type BudgetHandler struct {
	db        *gorm.DB
	create    *ucBudget.CreateBudget
	update    *ucBudget.UpdateBudget
	remove    *ucBudget.DeleteBudget
	preview   *ucBudget.PreviewNumber
	summarize *ucBudget.SummarizeBudgets
	renderer  render.Renderer
}

func NewBudgetHandler(
	db *gorm.DB,
	create *ucBudget.CreateBudget,
	update *ucBudget.UpdateBudget,
	remove *ucBudget.DeleteBudget,
	preview *ucBudget.PreviewNumber,
	summarize *ucBudget.SummarizeBudgets,
	renderer render.Renderer,
) *BudgetHandler {
	return &BudgetHandler{
		db:        db,
		create:    create,
		update:    update,
		remove:    remove,
		preview:   preview,
		summarize: summarize,
		renderer:  renderer,
	}
}

// ======================================================
// CREATE / UPDATE
// ======================================================

// The budget form posts a loose shape (nested cliente object, legacy
// Spanish keys); it is bound as a raw map and normalized in one place.
func (h *BudgetHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	draft := assembler.NormalizeBudget(payload)

	b, err := h.create.Execute(c.Request.Context(), actorID, draft)
	if err != nil {
		writeBudgetError(c, err)
		return
	}

	summary, err := h.summarize.One(c.Request.Context(), b.ID)
	if err != nil {
		writeBudgetError(c, err)
		return
	}

	c.JSON(http.StatusCreated, summary)
}

func (h *BudgetHandler) Update(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	draft := assembler.NormalizeBudget(payload)

	b, err := h.update.Execute(c.Request.Context(), actorID, uint(id), draft)
	if err != nil {
		writeBudgetError(c, err)
		return
	}

	summary, err := h.summarize.One(c.Request.Context(), b.ID)
	if err != nil {
		writeBudgetError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ======================================================
// READ
// ======================================================

func (h *BudgetHandler) List(c *gin.Context) {
	var branchID *uint
	if s := c.Query("branch_id"); s != "" {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_branch_id"})
			return
		}
		id := uint(n)
		branchID = &id
	}

	summaries, err := h.summarize.List(c.Request.Context(), branchID)
	if err != nil {
		httperr.Internal(c, "budget_list_failed", "No se pudieron listar los presupuestos.")
		return
	}

	httpresp.List(c, summaries)
}

func (h *BudgetHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	summary, err := h.summarize.One(c.Request.Context(), uint(id))
	if err != nil {
		writeBudgetError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// PreviewNumber returns the display number the next budget of a branch
// would get. Informative only; the saved budget may differ under
// concurrent creation.
func (h *BudgetHandler) PreviewNumber(c *gin.Context) {
	n, err := strconv.ParseUint(c.Query("branch_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_branch_id"})
		return
	}

	numero, err := h.preview.Execute(c.Request.Context(), uint(n))
	if err != nil {
		httperr.Internal(c, "preview_failed", "No se pudo calcular el próximo número.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"numero": numero})
}

// ======================================================
// DELETE
// ======================================================

func (h *BudgetHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	if err := h.remove.Execute(c.Request.Context(), actorID, uint(id)); err != nil {
		httperr.Internal(c, "budget_delete_failed", "No se pudo eliminar el presupuesto.")
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// DOCUMENT (print boundary)
// ======================================================

func (h *BudgetHandler) Document(c *gin.Context) {
	if h.renderer == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "renderer_not_configured"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	var b models.Budget
	if err := h.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, id ASC")
		}).
		First(&b, uint(id)).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "budget_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_budget"})
		return
	}

	summary, err := h.summarize.One(c.Request.Context(), b.ID)
	if err != nil {
		writeBudgetError(c, err)
		return
	}

	var branch *models.Branch
	var found models.Branch
	if err := h.db.First(&found, b.BranchID).Error; err == nil {
		branch = &found
	}

	doc := render.BuildDocument(&b, branch, summary.Numero)

	artifact, err := h.renderer.Render(c.Request.Context(), doc)
	if err != nil {
		httperr.Internal(c, "render_failed", "No se pudo generar el documento.")
		return
	}

	c.Data(http.StatusOK, "application/pdf", artifact)
}

// --------- helpers ---------

func writeBudgetError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "client_name_required"):
		httperr.BadRequest(c, "client_name_required", "El nombre del cliente es obligatorio.")
	case httperr.IsBusiness(err, "branch_not_found"):
		httperr.BadRequest(c, "branch_not_found", "Sucursal inexistente.")
	case httperr.IsBusiness(err, "budget_not_found"):
		httperr.NotFound(c, "budget_not_found", "Presupuesto inexistente.")
	default:
		httperr.Internal(c, "budget_save_failed", "No se pudo guardar el presupuesto.")
	}
}
