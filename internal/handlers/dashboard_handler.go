package handlers

import (
	"context"
	"net/http"
	"sync"

	"poisar-hisap/internal/dto"
	"poisar-hisap/internal/errors"
	"poisar-hisap/internal/models"
	"poisar-hisap/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RefresherFactory builds the background refresh loop for one owner's
// default dashboard
type RefresherFactory func(ownerID uuid.UUID) services.DashboardRefresherInterface

// DashboardHandler serves the aggregated dashboard. The default window is
// kept warm by a per-owner refresh loop; explicit windows are built on
// demand.
type DashboardHandler struct {
	dashboard    services.DashboardServiceInterface
	newRefresher RefresherFactory

	mu         sync.Mutex
	refreshers map[uuid.UUID]services.DashboardRefresherInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboard services.DashboardServiceInterface, newRefresher RefresherFactory) *DashboardHandler {
	return &DashboardHandler{
		dashboard:    dashboard,
		newRefresher: newRefresher,
		refreshers:   make(map[uuid.UUID]services.DashboardRefresherInterface),
	}
}

// GetDashboard retrieves the aggregated spending view
// @Summary Get dashboard
// @Description Retrieve the aggregated spending view and recent expenses for a time window
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param window query string false "Time window" Enums(7, 30, 90, all) default(30)
// @Success 200 {object} dto.DashboardResponse "Aggregated view with recent expenses"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - Invalid window"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	window, err := models.ParseWindow(c.QueryParam("window"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidWindow)
	}

	var snapshot *services.DashboardSnapshot
	if window == models.WindowMonth {
		snapshot = h.refresherFor(userID).Snapshot()
	}
	if snapshot == nil {
		snapshot, err = h.dashboard.BuildSnapshot(userID, window)
		if err != nil {
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.DashboardResponse{
		Window:    snapshot.Window,
		View:      snapshot.View,
		Recent:    dto.FromExpenses(snapshot.Recent),
		FetchedAt: snapshot.FetchedAt,
	})
}

// KickOwner asks an owner's refresh loop to reload now. Owners without a
// running loop have no warm snapshot to invalidate, so this is a no-op for
// them.
func (h *DashboardHandler) KickOwner(ownerID uuid.UUID) {
	h.mu.Lock()
	refresher, ok := h.refreshers[ownerID]
	h.mu.Unlock()

	if ok {
		refresher.Kick()
	}
}

// Shutdown stops all refresh loops
func (h *DashboardHandler) Shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, refresher := range h.refreshers {
		refresher.Stop()
	}
	h.refreshers = make(map[uuid.UUID]services.DashboardRefresherInterface)
}

// refresherFor returns the owner's refresh loop, starting it on first use
func (h *DashboardHandler) refresherFor(ownerID uuid.UUID) services.DashboardRefresherInterface {
	h.mu.Lock()
	defer h.mu.Unlock()

	refresher, ok := h.refreshers[ownerID]
	if !ok {
		refresher = h.newRefresher(ownerID)
		refresher.Start(context.Background())
		h.refreshers[ownerID] = refresher
	}
	return refresher
}
