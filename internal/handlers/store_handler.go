package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/streetbite/internal/helpers"
	"github.com/joshua-takyi/streetbite/internal/middleware"
	"github.com/joshua-takyi/streetbite/internal/models"
	"github.com/joshua-takyi/streetbite/internal/services"
)

// ListStores answers GET /stores?menu=a,b. Without a menu filter every store
// is returned.
func ListStores(s *services.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters := helpers.SplitList(c.Query("menu"))
		stores := s.ListStores(filters)
		c.JSON(http.StatusOK, models.PaginatedResponse(stores, 1, len(stores), len(stores)))
	}
}

// GetStore returns one store and counts the visit.
func GetStore(s *services.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		st, err := s.ViewStore(id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(st, ""))
	}
}

func CreateStore(s *services.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.NewStoreInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		st, err := s.RegisterStore(middleware.CurrentUser(c), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(st, "Store registered successfully"))
	}
}

type statusRequest struct {
	IsOpen *bool `json:"is_open" binding:"required"`
}

func UpdateStoreStatus(s *services.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var req statusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		st, err := s.SetStatus(middleware.CurrentUser(c), id, *req.IsOpen)
		if err != nil {
			respondError(c, err)
			return
		}
		msg := "Store closed"
		if st.IsOpen {
			msg = "Store opened"
		}
		c.JSON(http.StatusOK, models.SuccessResponse(st, msg))
	}
}

func UpdateStoreLocation(s *services.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var in models.LocationInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		st, err := s.UpdateLocation(middleware.CurrentUser(c), id, in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(st, "Location updated"))
	}
}

func UpdateStoreSchedule(s *services.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var schedule models.WeeklySchedule
		if err := c.ShouldBindJSON(&schedule); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		st, err := s.UpdateSchedule(middleware.CurrentUser(c), id, schedule)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(st, "Schedule updated"))
	}
}

func ListStoresByOwner(s *services.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := pathID(c, "owner_id")
		if !ok {
			return
		}
		stores := s.StoresByOwner(ownerID)
		c.JSON(http.StatusOK, models.PaginatedResponse(stores, 1, len(stores), len(stores)))
	}
}

func StoreAnalytics(s *services.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		summary, err := s.Analytics(middleware.CurrentUser(c), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(summary, ""))
	}
}
