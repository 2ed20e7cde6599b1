package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/evently/hotel-booking-service/internal/dto"
	"github.com/evently/hotel-booking-service/internal/middleware"
	"github.com/evently/hotel-booking-service/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = validator.New()

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	g := e.Group("/booking", middleware.JWTAuth(jwtSecret))
	g.GET("", h.GetBooking)
	g.POST("", h.CreateBooking)
	g.PUT("/:bookingId", h.UpdateBooking)
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing user identity")
	}

	booking, err := h.svc.GetBooking(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing user identity")
	}

	req, err := bindBookingRequest(c)
	if err != nil {
		return err
	}

	bookingID, err := h.svc.CreateBooking(c.Request().Context(), userID, req.RoomID)
	if err != nil {
		return mapBookingError(err)
	}

	return c.JSON(http.StatusOK, dto.BookingIDResponse{BookingID: bookingID})
}

func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing user identity")
	}

	bookingID, err := strconv.ParseUint(c.Param("bookingId"), 10, 64)
	if err != nil || bookingID < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	req, err := bindBookingRequest(c)
	if err != nil {
		return err
	}

	updatedID, err := h.svc.UpdateBooking(c.Request().Context(), userID, req.RoomID, uint(bookingID))
	if err != nil {
		return mapBookingError(err)
	}

	return c.JSON(http.StatusOK, dto.BookingIDResponse{BookingID: updatedID})
}

func bindBookingRequest(c echo.Context) (*dto.BookingRequest, error) {
	var req dto.BookingRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "roomId must be a positive integer")
	}
	return &req, nil
}

// mapBookingError translates the allocator's failure kinds to HTTP statuses:
// missing resources map to 404, every policy rejection maps to 403.
func mapBookingError(err error) error {
	switch {
	case errors.Is(err, service.ErrEnrollmentNotFound),
		errors.Is(err, service.ErrRoomNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrTicketIneligible),
		errors.Is(err, service.ErrRoomCapacityExceeded),
		errors.Is(err, service.ErrAlreadyBooked),
		errors.Is(err, service.ErrBookingForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
