package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/folio/internal/contract"
	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, contract.ErrorBody{Message: message})
}

// bindInput 解析请求体并执行契约校验
// 校验失败时返回带字段信息的 400
func bindInput(c *gin.Context, dst contract.Input) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "请求体格式错误")
		return false
	}

	if err := dst.Validate(); err != nil {
		var ve *contract.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, contract.ErrorBody{Message: ve.Message, Field: ve.Field})
		} else {
			respondError(c, http.StatusBadRequest, err.Error())
		}
		return false
	}

	return true
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}
