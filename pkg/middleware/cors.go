package middleware

import (
	"strconv"
	"strings"

	"github.com/NeuralTrust/toxicity-api/pkg/common"
	"github.com/NeuralTrust/toxicity-api/pkg/config"
	"github.com/gofiber/fiber/v2"
)

type corsMiddleware struct {
	allowOrigins []string
	allowMethods string
	maxAge       string
	wildcard     bool
}

// NewCORSMiddleware lets browsers call the API from the configured origins. With no origins
// configured it is a pass-through.
func NewCORSMiddleware(cfg config.CORSConfig) Middleware {
	m := &corsMiddleware{
		allowOrigins: cfg.AllowOrigins,
		allowMethods: strings.Join(cfg.AllowMethods, ", "),
	}
	if cfg.MaxAge > 0 {
		m.maxAge = strconv.Itoa(cfg.MaxAge)
	}
	for _, o := range cfg.AllowOrigins {
		if o == "*" {
			m.wildcard = true
		}
	}
	return m
}

func (m *corsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get(fiber.HeaderOrigin)
		if origin == "" || !m.allowed(origin) {
			return c.Next()
		}

		c.Vary(fiber.HeaderOrigin)
		if m.wildcard {
			c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
		} else {
			c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
		}
		c.Set(fiber.HeaderAccessControlExposeHeaders, common.RequestIDHeader)

		if c.Method() != fiber.MethodOptions || c.Get(fiber.HeaderAccessControlRequestMethod) == "" {
			return c.Next()
		}

		// preflight
		c.Set(fiber.HeaderAccessControlAllowMethods, m.allowMethods)
		if reqHeaders := c.Get(fiber.HeaderAccessControlRequestHeaders); reqHeaders != "" {
			c.Set(fiber.HeaderAccessControlAllowHeaders, reqHeaders)
		} else {
			c.Set(fiber.HeaderAccessControlAllowHeaders, fiber.HeaderContentType)
		}
		if m.maxAge != "" {
			c.Set(fiber.HeaderAccessControlMaxAge, m.maxAge)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func (m *corsMiddleware) allowed(origin string) bool {
	if m.wildcard {
		return true
	}
	for _, o := range m.allowOrigins {
		if strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}
