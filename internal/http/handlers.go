package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/xeipuuv/gojsonschema"

	"github.com/GiannisClipper/payments/internal/auth"
	"github.com/GiannisClipper/payments/internal/config"
	"github.com/GiannisClipper/payments/internal/logging"
	"github.com/GiannisClipper/payments/internal/service"
	"github.com/GiannisClipper/payments/internal/token"
)

type Server struct {
	cfg      *config.Config
	log      zerolog.Logger
	codec    *token.Codec
	gate     *auth.Gate
	users    *service.UserService
	funds    *service.FundService
	genres   *service.GenreService
	payments *service.PaymentService
	schemas  map[string]*gojsonschema.Schema
}

func NewServer(
	cfg *config.Config,
	log zerolog.Logger,
	codec *token.Codec,
	gate *auth.Gate,
	users *service.UserService,
	funds *service.FundService,
	genres *service.GenreService,
	payments *service.PaymentService,
) *gin.Engine {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	s := &Server{
		cfg:      cfg,
		log:      log,
		codec:    codec,
		gate:     gate,
		users:    users,
		funds:    funds,
		genres:   genres,
		payments: payments,
		schemas:  loadSchemas(),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logging.RequestLogger(log))

	r.GET("/", s.root)
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	api := r.Group("/api")

	api.POST("/users/signup", s.signup)
	api.POST("/users/signin", s.signin)

	protected := api.Group("")
	protected.Use(s.authRequired())
	{
		protected.GET("/users", s.listUsers)
		protected.GET("/users/current", s.getCurrentUser)
		protected.PATCH("/users/current", s.updateCurrentUser)
		protected.DELETE("/users/current", s.deleteCurrentUser)
		protected.GET("/users/:id", s.getUser)
		protected.PATCH("/users/:id", s.updateUser)
		protected.DELETE("/users/:id", s.deleteUser)

		protected.POST("/funds", s.createFund)
		protected.GET("/funds", s.listFunds)
		protected.GET("/funds/:id", s.getFund)
		protected.PATCH("/funds/:id", s.updateFund)
		protected.DELETE("/funds/:id", s.deleteFund)

		protected.POST("/genres", s.createGenre)
		protected.GET("/genres", s.listGenres)
		protected.GET("/genres/:id", s.getGenre)
		protected.PATCH("/genres/:id", s.updateGenre)
		protected.DELETE("/genres/:id", s.deleteGenre)

		protected.POST("/payments", s.createPayment)
		protected.GET("/payments", s.listPayments)
		protected.GET("/payments/:id", s.getPayment)
		protected.PATCH("/payments/:id", s.updatePayment)
		protected.DELETE("/payments/:id", s.deletePayment)
	}

	return r
}

const rootContent = `Payments bookkeeping API.
........................................
Available API requests:
/api/users/signup POST
/api/users/signin POST
/api/users/current GET PATCH DELETE
/api/users/:id GET PATCH DELETE
/api/users GET
/api/funds POST GET
/api/funds/:id GET PATCH DELETE
/api/genres POST GET
/api/genres/:id GET PATCH DELETE
/api/payments POST GET
/api/payments/:id GET PATCH DELETE
........................................
`

func (s *Server) root(c *gin.Context) {
	c.String(http.StatusOK, rootContent)
}
