package localstore

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler 暴露两个标量偏好开关的HTTP入口。
type Handler struct {
	db *gorm.DB
}

// NewHandler 构造偏好设置的控制器。
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

type flagResponse struct {
	Enabled bool `json:"enabled"`
}

type flagRequest struct {
	Enabled bool `json:"enabled"`
}

// GetTheme 处理 GET /prefs/theme
func (h *Handler) GetTheme(c *gin.Context) {
	enabled, err := GetDarkMode(h.db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flagResponse{Enabled: enabled})
}

// PutTheme 处理 PUT /prefs/theme
func (h *Handler) PutTheme(c *gin.Context) {
	var req flagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求体格式错误"})
		return
	}
	if err := SetDarkMode(h.db, req.Enabled); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// GetTutorial 处理 GET /prefs/tutorial
func (h *Handler) GetTutorial(c *gin.Context) {
	shown, err := GetTutorialShown(h.db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flagResponse{Enabled: shown})
}

// PutTutorial 处理 PUT /prefs/tutorial
func (h *Handler) PutTutorial(c *gin.Context) {
	var req flagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求体格式错误"})
		return
	}
	if err := SetTutorialShown(h.db, req.Enabled); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
