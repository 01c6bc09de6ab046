package controller

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// mcqOption 选项只能是 A/B/C/D，忽略大小写
func mcqOption(fl validator.FieldLevel) bool {
	switch strings.ToUpper(strings.TrimSpace(fl.Field().String())) {
	case "A", "B", "C", "D":
		return true
	}
	return false
}

// RegisterValidators 在 gin 的校验引擎上注册自定义规则
func RegisterValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("mcq_option", mcqOption)
		}
	})
}
