package wine

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Handler 持有wine模块的全部HTTP入口。
// UI端只负责呈现，这里是它与持久化核心之间的唯一边界。
type Handler struct {
	store   *Store
	service *Service
	codec   *Codec
}

// NewHandler 构造wine模块的控制器。
func NewHandler(store *Store, service *Service, codec *Codec) *Handler {
	return &Handler{store: store, service: service, codec: codec}
}

// --- API请求/响应模型 ---

type createResponse struct {
	ID uint `json:"id"`
}

type importResponse struct {
	Added int `json:"added"`
}

// CreateWine 处理 POST /wines
func (h *Handler) CreateWine(c *gin.Context) {
	var record Wine
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求体格式错误"})
		return
	}
	if record.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "酒名不能为空"})
		return
	}

	id, err := h.store.Create(c.Request.Context(), record)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, createResponse{ID: id})
}

// UpdateWine 处理 PUT /wines/:id（整条替换，沿用put的upsert语义）
func (h *Handler) UpdateWine(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var record Wine
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求体格式错误"})
		return
	}

	if err := h.store.Update(c.Request.Context(), id, record); err != nil {
		abortWithStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetWine 处理 GET /wines/:id
func (h *Handler) GetWine(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	record, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "记录不存在"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// DeleteWine 处理 DELETE /wines/:id
func (h *Handler) DeleteWine(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.store.Remove(c.Request.Context(), id); err != nil {
		abortWithStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListWines 处理 GET /wines?q=&filter=&sort=
func (h *Handler) ListWines(c *gin.Context) {
	cards, err := h.service.ListCards(
		c.Request.Context(),
		c.Query("q"),
		c.Query("filter"),
		c.Query("sort"),
	)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

// ClearWines 处理 DELETE /wines（精确恢复流程在restore前调用）
func (h *Handler) ClearWines(c *gin.Context) {
	if err := h.store.Clear(c.Request.Context()); err != nil {
		abortWithStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetStatistics 处理 GET /stats
func (h *Handler) GetStatistics(c *gin.Context) {
	stats, err := h.service.Statistics(c.Request.Context())
	if err != nil {
		abortWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ExportData 处理 GET /export
func (h *Handler) ExportData(c *gin.Context) {
	data, err := h.codec.ExportAll(c.Request.Context())
	if err != nil {
		abortWithStoreError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="wine-backup.json"`)
	c.Data(http.StatusOK, "application/json", data)
}

// ImportData 处理 POST /import，请求体即导出文档
func (h *Handler) ImportData(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无法读取请求体"})
		return
	}

	added, err := h.codec.ImportAll(c.Request.Context(), data)
	if err != nil {
		if errors.Is(err, ErrImportParse) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "导入文档格式非法"})
			return
		}
		abortWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, importResponse{Added: added})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "非法的记录ID"})
		return 0, false
	}
	return uint(id), true
}

func abortWithStoreError(c *gin.Context, err error) {
	if errors.Is(err, ErrNotInitialized) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "存储尚未就绪"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
