package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/streetbite/internal/helpers"
	"github.com/joshua-takyi/streetbite/internal/middleware"
	"github.com/joshua-takyi/streetbite/internal/models"
	"github.com/joshua-takyi/streetbite/internal/services"
)

type loginResponse struct {
	User      models.User `json:"user"`
	Token     string      `json:"token"`
	ExpiresIn int         `json:"expires_in"`
}

// Login selects a role for this browser. The token is set as an http-only
// cookie and also returned for clients that prefer the Authorization header.
func Login(s *services.SessionService, secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.LoginInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		user, token, err := s.Login(in)
		if err != nil {
			respondError(c, err)
			return
		}

		maxAge := int(s.TTL().Seconds())
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(helpers.SessionCookie, token, maxAge, "/", "", secureCookie, true)
		c.JSON(http.StatusOK, models.SuccessResponse(loginResponse{
			User:      user,
			Token:     token,
			ExpiresIn: maxAge,
		}, "Logged in"))
	}
}

func Logout(secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(helpers.SessionCookie, "", -1, "/", "", secureCookie, true)
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Logged out"))
	}
}

func Me(s *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(s.Me(middleware.CurrentUser(c)), ""))
	}
}
