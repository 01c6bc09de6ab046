package util

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// MustParseUint 将字符串转换为无符号整数，解析失败时返回 0
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}

// ParamID 读取路径中的正整数 ID
func ParamID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, NewValidationError("invalid %s", name)
	}
	return uint(id), nil
}

// QueryID 读取可选的查询参数 ID，缺省时返回 nil
func QueryID(c *gin.Context, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, NewValidationError("invalid %s", name)
	}
	v := uint(id)
	return &v, nil
}

// ParseDate 解析 YYYY-MM-DD 日期
func ParseDate(field, value string) (datatypes.Date, error) {
	t, err := time.Parse(DateFormat, value)
	if err != nil {
		return datatypes.Date{}, NewValidationError("%s must be a date in YYYY-MM-DD format", field)
	}
	return datatypes.Date(t), nil
}

// ParseOptionalDate 空值返回 nil
func ParseOptionalDate(field string, value *string) (*datatypes.Date, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	d, err := ParseDate(field, *value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
