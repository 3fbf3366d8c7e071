package respond

import (
	"net/http"
	"strconv"

	"nagoyameshi/internal/domain/access"
	"nagoyameshi/internal/handler/httperr"
	"nagoyameshi/internal/infra/session"
	"nagoyameshi/internal/pkg/errs"

	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
)

// RedirectBody is returned alongside every 302 so API clients can follow without parsing headers.
type RedirectBody struct {
	RedirectTo string `json:"redirect_to"`
	Reason     string `json:"reason,omitempty"`
	Message    string `json:"message,omitempty"`
}

// DoneBody is the result of a successful mutation.
type DoneBody struct {
	Message    string `json:"message"`
	RedirectTo string `json:"redirect_to,omitempty"`
	Data       any    `json:"data,omitempty"`
}

var flashByReason = map[access.Reason]string{
	access.ReasonUnauthenticated:         "ログインしてください。",
	access.ReasonWrongRealm:              "管理者は会員向けページを利用できません。",
	access.ReasonInsufficientEntitlement: "有料プランに登録すると利用できます。",
	access.ReasonAlreadySubscribed:       "すでに有料プランに登録済みです。",
	access.ReasonAlreadyAuthenticated:    "すでにログインしています。",
	access.ReasonNotOwner:                "不正なアクセスです。",
}

// Path turns a named route into a URL path.
func Path(t access.Target) string {
	switch t.Route {
	case access.RouteLogin:
		return "/login"
	case access.RouteAdminLogin:
		return "/admin/login"
	case access.RouteAdminHome:
		return "/admin/home"
	case access.RouteSubscriptionNew:
		return "/subscription/create"
	case access.RouteSubscriptionEdit:
		return "/subscription/edit"
	case access.RouteReservations:
		return "/reservations"
	case access.RouteRestaurantReviews:
		return "/restaurants/" + strconv.FormatInt(t.ID, 10) + "/reviews"
	case access.RouteUser:
		return "/user"
	default:
		return "/"
	}
}

type Responder struct {
	sessions *scs.SessionManager
}

func NewResponder(sessions *scs.SessionManager) *Responder {
	return &Responder{sessions: sessions}
}

// Redirect performs a redirect verdict and leaves a flash for the next page.
func (r *Responder) Redirect(c *gin.Context, v access.Verdict) {
	path := Path(v.Target)
	r.Flash(c, flashByReason[v.Reason])
	c.Header("Location", path)
	c.AbortWithStatusJSON(http.StatusFound, RedirectBody{
		RedirectTo: path,
		Reason:     string(v.Reason),
		Message:    string(v.Message),
	})
}

// Error renders a use case error; denials become redirects.
func (r *Responder) Error(c *gin.Context, err error) {
	var denied *access.DeniedError
	if errs.As(err, &denied) {
		r.Redirect(c, denied.Verdict)
		return
	}
	httperr.Abort(c, err)
}

// Done answers a successful mutation. A zero target means no follow-up page.
func (r *Responder) Done(c *gin.Context, status int, target access.Target, message string, data any) {
	r.Flash(c, message)
	body := DoneBody{Message: message, Data: data}
	if target.Route != "" {
		body.RedirectTo = Path(target)
	}
	c.JSON(status, body)
}

func (r *Responder) Flash(c *gin.Context, message string) {
	if message == "" {
		return
	}
	r.sessions.Put(c.Request.Context(), session.KeyFlash, message)
}

// PopFlash returns and clears the pending flash message.
func (r *Responder) PopFlash(c *gin.Context) string {
	return r.sessions.PopString(c.Request.Context(), session.KeyFlash)
}

// PageBody wraps data for read-only pages together with any pending flash.
type PageBody struct {
	Flash string `json:"flash,omitempty"`
	Data  any    `json:"data"`
}

func (r *Responder) Page(c *gin.Context, data any) {
	c.JSON(http.StatusOK, PageBody{Flash: r.PopFlash(c), Data: data})
}
