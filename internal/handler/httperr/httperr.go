package httperr

import (
	"net/http"
	"reflect"
	"strings"

	"nagoyameshi/internal/domain/subscription"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target error
	status int
	msg    string
}

// checked in order; the first match wins
var mappings = []mapping{
	{errs.ErrDomainValidation, http.StatusUnprocessableEntity, "入力内容に誤りがあります"},
	{commands.ErrInvalidCredentials, http.StatusUnprocessableEntity, "メールアドレスまたはパスワードが正しくありません"},
	{errs.ErrRestaurantNotFound, http.StatusNotFound, "店舗が見つかりません"},
	{errs.ErrReservationNotFound, http.StatusNotFound, "予約が見つかりません"},
	{errs.ErrReviewNotFound, http.StatusNotFound, "レビューが見つかりません"},
	{errs.ErrUserNotFound, http.StatusNotFound, "会員が見つかりません"},
	{errs.ErrCategoryNotFound, http.StatusNotFound, "カテゴリが見つかりません"},
	{errs.ErrSubscriptionMissing, http.StatusNotFound, "有料プランの登録情報が見つかりません"},
	{subscription.ErrAlreadyCanceled, http.StatusConflict, "有料プランはすでに解約済みです"},
	{commands.ErrInvalidWebhook, http.StatusBadRequest, "不正なWebhookです"},
	{errs.ErrBillingFailed, http.StatusInternalServerError, "決済処理に失敗しました"},
}

// Abort writes the response for a use case error. Unknown errors become 500.
func Abort(c *gin.Context, err error) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			var detail any
			if m.status == http.StatusUnprocessableEntity {
				if d := errs.ValidationDetail(err); d != nil {
					detail = d
				}
			}
			AbortWithError(c, m.status, err, m.msg, detail)
			return
		}
	}
	AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

// BindFailed answers a payload that did not bind. Rule violations are validation
// failures with per-field detail; malformed input is a bad request.
func BindFailed(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errs.As(err, &ve) {
		detail := make(map[string]string, len(ve))
		for _, fe := range ve {
			detail[fe.Field()] = fe.Tag()
		}
		AbortWithError(c, http.StatusUnprocessableEntity, errs.Mark(err, errs.ErrDomainValidation), "入力内容に誤りがあります", detail)
		return
	}
	AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", err.Error())
}

// UseJSONFieldNames makes binding errors report json names instead of Go field names.
func UseJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		}
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
}
