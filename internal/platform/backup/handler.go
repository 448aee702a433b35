package backup

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Handler 暴露备份世代的查询与恢复入口。
type Handler struct {
	scheduler *Scheduler
}

// NewHandler 构造备份模块的控制器。
func NewHandler(scheduler *Scheduler) *Handler {
	return &Handler{scheduler: scheduler}
}

type restoreResponse struct {
	Restored int `json:"restored"`
}

// ListBackups 处理 GET /backups，返回各世代的摘要信息。
func (h *Handler) ListBackups(c *gin.Context) {
	infos, err := h.scheduler.Info()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, infos)
}

// RestoreBackup 处理 POST /backups/:index/restore。
// 恢复是累加式的；想要精确还原的前端应先调用 DELETE /wines。
func (h *Handler) RestoreBackup(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "非法的世代序号"})
		return
	}

	restored, err := h.scheduler.Restore(c.Request.Context(), index)
	if err != nil {
		if errors.Is(err, ErrGenerationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "备份世代不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, restoreResponse{Restored: restored})
}
