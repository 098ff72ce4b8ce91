package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/MounTainVSCO/oceans-api/internal/application/command"
	"github.com/MounTainVSCO/oceans-api/internal/application/interfaces"
)

type SiteHandler struct {
	siteService interfaces.SiteService
}

func NewSiteHandler(siteService interfaces.SiteService) *SiteHandler {
	return &SiteHandler{siteService: siteService}
}

func (h *SiteHandler) Create(c echo.Context) error {
	var cmd command.CreateSiteCommand
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.siteService.CreateSite(c.Request().Context(), actorId(c), &cmd)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, result)
}

func (h *SiteHandler) Get(c echo.Context) error {
	siteId, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid site id")
	}

	result, err := h.siteService.GetSite(c.Request().Context(), actorId(c), siteId)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *SiteHandler) GetBySlug(c echo.Context) error {
	ownerId, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	result, err := h.siteService.GetSiteBySlug(c.Request().Context(), actorId(c), ownerId, c.Param("slug"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *SiteHandler) List(c echo.Context) error {
	result, err := h.siteService.ListSites(c.Request().Context(), actorId(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *SiteHandler) Update(c echo.Context) error {
	siteId, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid site id")
	}

	var cmd command.UpdateSiteCommand
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.siteService.UpdateSite(c.Request().Context(), actorId(c), siteId, &cmd)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *SiteHandler) Delete(c echo.Context) error {
	siteId, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid site id")
	}

	if err := h.siteService.DeleteSite(c.Request().Context(), actorId(c), siteId); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
