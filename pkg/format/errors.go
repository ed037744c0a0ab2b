package format

// ErrorKind enumerates the user-facing failure categories of the pipeline
type ErrorKind string

const (
	ErrInvalidLink ErrorKind = "invalid_url"
	ErrNotFound    ErrorKind = "product_not_found"
	ErrAPI         ErrorKind = "api_error"
	ErrNetwork     ErrorKind = "network_error"
	ErrGeneric     ErrorKind = "general_error"
)

var errorMessages = map[ErrorKind]string{
	ErrInvalidLink: "❌ **رابط غير صحيح**\nيرجى إرسال رابط صحيح من علي إكسبريس.",
	ErrNotFound:    "❌ **المنتج غير موجود**\nلم أتمكن من العثور على هذا المنتج. قد يكون غير متاح أو منتهي الصلاحية.",
	ErrAPI:         "❌ **خطأ في الخدمة**\nحدث خطأ أثناء جلب معلومات المنتج. يرجى المحاولة مرة أخرى.",
	ErrNetwork:     "❌ **خطأ في الاتصال**\nتحقق من اتصالك بالإنترنت وحاول مرة أخرى.",
	ErrGeneric:     "❌ **خطأ عام**\nحدث خطأ غير متوقع. يرجى المحاولة مرة أخرى.",
}

// ErrorMessage maps an error category to its canned localized message,
// appending the optional free-text detail
func ErrorMessage(kind ErrorKind, details string) string {
	msg, ok := errorMessages[kind]
	if !ok {
		msg = errorMessages[ErrGeneric]
	}
	if details != "" {
		msg += "\n\n**تفاصيل الخطأ:** " + details
	}
	return msg
}
