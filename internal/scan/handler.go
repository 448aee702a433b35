package scan

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler 暴露扫描回填策略的HTTP入口。
type Handler struct{}

// NewHandler 构造scan模块的控制器。
func NewHandler() *Handler {
	return &Handler{}
}

type autofillRequest struct {
	Form  Form  `json:"form"`
	Guess Guess `json:"guess"`
}

type autofillResponse struct {
	Form    Form     `json:"form"`
	Applied []string `json:"applied"`
}

// Autofill 处理 POST /scan/autofill：
// 前端提交当前表单与识别猜测，返回按策略回填后的表单。
func (h *Handler) Autofill(c *gin.Context) {
	var req autofillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求体格式错误"})
		return
	}

	applied := Apply(&req.Form, req.Guess)
	c.JSON(http.StatusOK, autofillResponse{Form: req.Form, Applied: applied})
}
