package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/streetbite/internal/middleware"
	"github.com/joshua-takyi/streetbite/internal/models"
	"github.com/joshua-takyi/streetbite/internal/services"
)

type reservationStatusRequest struct {
	Status models.ReservationStatus `json:"status" binding:"required"`
}

func CreateReservation(s *services.ReservationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.ReservationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		r, err := s.Create(middleware.CurrentUser(c), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(r, "Reservation requested"))
	}
}

func ListMyReservations(s *services.ReservationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := s.ListMine(middleware.CurrentUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(list, ""))
	}
}

func ListStoreReservations(s *services.ReservationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		list, err := s.ListForStore(middleware.CurrentUser(c), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(list, ""))
	}
}

func UpdateReservationStatus(s *services.ReservationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var req reservationStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		if !req.Status.Valid() {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("status must be one of pending, confirmed, cancelled"))
			return
		}

		r, err := s.UpdateStatus(middleware.CurrentUser(c), id, req.Status)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(r, "Reservation "+string(r.Status)))
	}
}
