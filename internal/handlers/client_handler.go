package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TallerHub/taller-quotes-api/internal/assembler"
	"github.com/TallerHub/taller-quotes-api/internal/httperr"
	"github.com/TallerHub/taller-quotes-api/internal/middleware"
	"github.com/TallerHub/taller-quotes-api/internal/models"
	ucClient "github.com/TallerHub/taller-quotes-api/internal/usecase/client"
)

type ClientHandler struct {
	db     *gorm.DB
	save   *ucClient.SaveClient
	remove *ucClient.DeleteClient
}

func NewClientHandler(
	db *gorm.DB,
	save *ucClient.SaveClient,
	remove *ucClient.DeleteClient,
) *ClientHandler {
	return &ClientHandler{
		db:     db,
		save:   save,
		remove: remove,
	}
}

// --------- Requests ---------

// Vehicles come in loose: the old form sends Spanish field names and may
// omit ids for new vehicles. Normalization happens once, in the assembler.
type SaveClientRequest struct {
	Name     string           `json:"name" binding:"required"`
	Phone    string           `json:"phone"`
	Email    string           `json:"email"`
	Address  string           `json:"address"`
	Vehicles []map[string]any `json:"vehicles"`
}

// --------- Handlers ---------

func (h *ClientHandler) List(c *gin.Context) {
	query := c.Query("query")

	q := h.db.Preload("Vehicles")
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE LOWER(?) OR phone LIKE ? OR LOWER(email) LIKE LOWER(?)",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("name ASC").
		Find(&clients).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_clients"})
		return
	}

	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	var client models.Client
	if err := h.db.Preload("Vehicles").First(&client, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "client_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_client"})
		return
	}

	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	h.saveClient(c, 0)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}
	h.saveClient(c, uint(id))
}

func (h *ClientHandler) saveClient(c *gin.Context, id uint) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req SaveClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	client, err := h.save.Execute(c.Request.Context(), actorID, ucClient.SaveClientInput{
		ID:       id,
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Address:  req.Address,
		Vehicles: assembler.NormalizeVehicles(anySlice(req.Vehicles)),
	})
	if err != nil {
		writeClientError(c, err)
		return
	}

	status := http.StatusOK
	if id == 0 {
		status = http.StatusCreated
	}
	c.JSON(status, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	if err := h.remove.Execute(c.Request.Context(), actorID, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_client"})
		return
	}

	c.Status(http.StatusNoContent)
}

// --------- helpers ---------

func anySlice(in []map[string]any) []any {
	out := make([]any, 0, len(in))
	for _, m := range in {
		out = append(out, m)
	}
	return out
}

func writeClientError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "client_name_required"):
		httperr.BadRequest(c, "client_name_required", "El nombre del cliente es obligatorio.")
	case httperr.IsBusiness(err, "client_not_found"):
		httperr.NotFound(c, "client_not_found", "Cliente inexistente.")
	default:
		httperr.Internal(c, "client_save_failed", "No se pudo guardar el cliente.")
	}
}
