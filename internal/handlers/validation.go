package handlers

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"rentdesk/internal/documents"
	"rentdesk/internal/store"
	"rentdesk/internal/views"
	"rentdesk/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/ttacon/libphonenumber"
)

// DefaultPhoneRegion 号码不带国家码时按此地区解析
const DefaultPhoneRegion = "US"

var registerOnce sync.Once

// RegisterValidators 在 gin 的校验器上注册自定义标签 phone
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("phone", validatePhone)
	})
}

// validatePhone 空值交给 required 处理
func validatePhone(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if value == "" {
		return true
	}
	num, err := libphonenumber.Parse(value, DefaultPhoneRegion)
	if err != nil {
		return false
	}
	return libphonenumber.IsPossibleNumber(num)
}

// fieldMessages 字段校验失败时的提示
var fieldMessages = map[string]string{
	"Name":            "姓名不能为空",
	"Phone":           "电话号码格式错误",
	"RoomNumber":      "房间号不能为空",
	"RentAmount":      "租金不能为负数",
	"Deposit":         "押金不能为负数",
	"StartDate":       "开始日期格式应为 YYYY-MM-DD",
	"EndDate":         "结束日期格式应为 YYYY-MM-DD",
	"Date":            "日期格式应为 YYYY-MM-DD",
	"Status":          "状态取值错误",
	"TenantID":        "请选择租客",
	"Amount":          "金额必须大于0",
	"Units":           "用电度数不能为负数",
	"Month":           "月份不能为空",
	"Mode":            "付款方式只能是 cash、online 或 cheque",
	"Email":           "邮箱格式错误",
	"OldPassword":     "请输入当前密码",
	"NewPassword":     "Password must be at least 6 characters",
	"ConfirmPassword": "New passwords do not match",
	"Language":        "语言代码不能为空",
	"Screen":          "页面不能为空",
	"RoomID":          "房间不能为空",
}

// bindError 把绑定错误转换为统一的 400 返回
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if msg, ok := fieldMessages[fe.Field()]; ok {
			response.BadRequest(c, msg)
			return
		}
		response.BadRequest(c, fmt.Sprintf("字段 %s 验证失败", fe.Field()))
		return
	}
	response.BadRequest(c, "请求参数格式错误")
}

// storeError 把领域错误转换为统一返回
func storeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, documents.ErrNotFound):
		response.NotFound(c, "记录不存在")
	case errors.Is(err, views.ErrUnknownTab):
		response.BadRequest(c, err.Error())
	default:
		response.ServerError(c, fallback)
	}
}
