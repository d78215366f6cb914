package httpapi

import (
	"net/http"

	"campus-rewards/pkg/config"
	"campus-rewards/pkg/errutil"
	"campus-rewards/pkg/health"
	"campus-rewards/pkg/middleware"
	"campus-rewards/services/buddy"
	"campus-rewards/services/catalog"
	"campus-rewards/services/leaderboard"
	"campus-rewards/services/member"
	"campus-rewards/services/redemption"
	"campus-rewards/services/rewards"
	"campus-rewards/services/rsvp"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var Module = fx.Module("httpapi",
	fx.Provide(NewRouter),
)

type RouterParams struct {
	fx.In
	Config      *config.Config
	Health      health.HealthService
	Catalog     *catalog.Service
	Members     *member.Service
	RSVP        *rsvp.Service
	Rewards     *rewards.Service
	Leaderboard *leaderboard.Service
	Redemption  *redemption.Service
	Buddy       *buddy.Service
}

// NewRouter builds the gin engine serving the campus rewards API. Thin
// marshaling only: every operation delegates to a service and domain
// errors flow through the error middleware.
func NewRouter(p RouterParams) http.Handler {
	if p.Config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.Error())

	r.GET("/healthz", p.Health.Liveness)
	r.GET("/readyz", p.Health.Readiness)

	api := r.Group("/api")
	h := &handlers{p: p}

	api.GET("/events", h.listEvents)
	api.POST("/events/:id/rsvp", h.rsvp)
	api.GET("/users", h.listUsers)
	api.GET("/users/:id/prizes", h.eligiblePrizes)
	api.GET("/users/:id/history", h.pointHistory)
	api.GET("/leaderboard", h.leaderboard)
	api.GET("/prizes", h.listPrizes)
	api.POST("/checkin", h.checkIn)
	api.POST("/buddy", h.buddy)

	return r
}

type handlers struct {
	p RouterParams
}

func (h *handlers) listEvents(c *gin.Context) {
	events, err := h.p.Catalog.ListEvents(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *handlers) rsvp(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	result, err := h.p.RSVP.AttemptRSVP(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handlers) listUsers(c *gin.Context) {
	members, err := h.p.Members.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *handlers) leaderboard(c *gin.Context) {
	ranked, err := h.p.Leaderboard.Rank(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ranked)
}

func (h *handlers) listPrizes(c *gin.Context) {
	prizes, err := h.p.Catalog.ListPrizes(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, prizes)
}

type checkInRequest struct {
	UserID  int64 `json:"user_id" binding:"required"`
	EventID int64 `json:"event_id"`
}

func (h *handlers) checkIn(c *gin.Context) {
	var req checkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errutil.BadRequest("invalid check-in payload", errutil.WithErr(err)))
		return
	}

	result, err := h.p.Rewards.CheckIn(c.Request.Context(), req.UserID, req.EventID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handlers) eligiblePrizes(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	prizes, err := h.p.Redemption.EligiblePrizes(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, prizes)
}

func (h *handlers) pointHistory(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	entries, err := h.p.Rewards.History(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

type buddyRequest struct {
	Prompt string `json:"prompt"`
}

func (h *handlers) buddy(c *gin.Context) {
	var req buddyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errutil.BadRequest("invalid buddy payload", errutil.WithErr(err)))
		return
	}

	reply, err := h.p.Buddy.Respond(req.Prompt)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, reply)
}
