package errors

// ========== 错误码常量定义 ==========

// CodeSuccess 成功码
const (
	CodeSuccess = 200
)

// HTTP层错误码 (400-599)
const (
	CodeInvalidParam = 400
	CodeUnauthorized = 401
	CodeNotFound     = 404
	CodeServerError  = 500
)

// 业务错误码 (1000+)
const (
	CodePasswordIncorrect = 1001 // 当前密码错误
	CodeUnsupportedFile   = 1002 // 不支持的文件类型
	CodeFileTooLarge      = 1003 // 文件过大
)
