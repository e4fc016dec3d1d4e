package handler

import (
	"net/http"

	"github.com/immortalfoodie/Ecosphere/internal/identityctx"
	"github.com/immortalfoodie/Ecosphere/internal/model"
	"github.com/immortalfoodie/Ecosphere/internal/service"
	"github.com/labstack/echo/v4"
)

// LedgerHandler exposes the state store's operation set over HTTP. Every
// route works for guests (shared guest slot) and authenticated identities
// alike; the identity middleware decides which.
type LedgerHandler struct {
	svc service.LedgerService
}

func NewLedgerHandler(svc service.LedgerService) *LedgerHandler {
	return &LedgerHandler{svc: svc}
}

func identityEmail(c echo.Context) string {
	return identityctx.Email(c.Request().Context())
}

func (h *LedgerHandler) GetState(c echo.Context) error {
	state := h.svc.State(c.Request().Context(), identityEmail(c))
	return c.JSON(http.StatusOK, state)
}

func (h *LedgerHandler) RsvpEvent(c echo.Context) error {
	eventID := c.Param("id")
	if eventID == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "event id is required"))
	}
	state, applied := h.svc.RsvpEvent(c.Request().Context(), identityEmail(c), eventID)
	return c.JSON(http.StatusOK, NewSnapshotResponse(state, applied))
}

func (h *LedgerHandler) CancelRsvp(c echo.Context) error {
	eventID := c.Param("id")
	if eventID == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "event id is required"))
	}
	state, applied := h.svc.CancelRsvp(c.Request().Context(), identityEmail(c), eventID)
	return c.JSON(http.StatusOK, NewSnapshotResponse(state, applied))
}

type RecordScanRequest struct {
	ProductID string `json:"productId"`
}

func (h *LedgerHandler) RecordScan(c echo.Context) error {
	var req RecordScanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if req.ProductID == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "productId is required"))
	}
	state, applied := h.svc.RecordScan(c.Request().Context(), identityEmail(c), req.ProductID)
	return c.JSON(http.StatusOK, NewSnapshotResponse(state, applied))
}

type AddToCartRequest struct {
	ProductID string `json:"productId"`
}

func (h *LedgerHandler) AddToCart(c echo.Context) error {
	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if req.ProductID == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "productId is required"))
	}
	state, applied := h.svc.AddToCart(c.Request().Context(), identityEmail(c), req.ProductID)
	return c.JSON(http.StatusOK, NewSnapshotResponse(state, applied))
}

type UpdateCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *LedgerHandler) UpdateCartQuantity(c echo.Context) error {
	productID := c.Param("productId")
	if productID == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "product id is required"))
	}
	var req UpdateCartQuantityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	state, applied := h.svc.UpdateCartQuantity(c.Request().Context(), identityEmail(c), productID, req.Quantity)
	return c.JSON(http.StatusOK, NewSnapshotResponse(state, applied))
}

func (h *LedgerHandler) RemoveFromCart(c echo.Context) error {
	productID := c.Param("productId")
	if productID == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "product id is required"))
	}
	state, applied := h.svc.RemoveFromCart(c.Request().Context(), identityEmail(c), productID)
	return c.JSON(http.StatusOK, NewSnapshotResponse(state, applied))
}

func (h *LedgerHandler) CheckoutCart(c echo.Context) error {
	state, applied := h.svc.CheckoutCart(c.Request().Context(), identityEmail(c))
	return c.JSON(http.StatusOK, NewSnapshotResponse(state, applied))
}

type SaveTrackerSnapshotRequest struct {
	CarbonData    model.CarbonData    `json:"carbonData"`
	WasteData     model.WasteData     `json:"wasteData"`
	TransportData model.TransportData `json:"transportData"`
}

func (h *LedgerHandler) SaveTrackerSnapshot(c echo.Context) error {
	var req SaveTrackerSnapshotRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	state, applied := h.svc.SaveTrackerSnapshot(c.Request().Context(), identityEmail(c), req.CarbonData, req.WasteData, req.TransportData)
	return c.JSON(http.StatusOK, NewSnapshotResponse(state, applied))
}

type UpdateCourseProgressRequest struct {
	Progress int `json:"progress"`
}

func (h *LedgerHandler) UpdateCourseProgress(c echo.Context) error {
	courseID := c.Param("id")
	if courseID == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "course id is required"))
	}
	var req UpdateCourseProgressRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	state, applied := h.svc.UpdateCourseProgress(c.Request().Context(), identityEmail(c), courseID, req.Progress)
	return c.JSON(http.StatusOK, NewSnapshotResponse(state, applied))
}
