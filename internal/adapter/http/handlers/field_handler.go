package handlers

import (
	"errors"
	"net/http"

	request "pesquisa_pbr/internal/adapter/http/dto/request"
	response "pesquisa_pbr/internal/adapter/http/dto/response"
	"pesquisa_pbr/internal/adapter/http/middleware"
	"pesquisa_pbr/internal/domain/entities"
	"pesquisa_pbr/internal/usecase"
	"pesquisa_pbr/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidFieldPayload = pkg.NewDomainErrorSimple("INVALID_FIELD_INPUT", "Invalid field collection payload", http.StatusBadRequest)

// FieldHandler serves the researcher's field flow: area assignments, draft
// collection sessions and the sync affordance.
type FieldHandler struct {
	collection usecase.ICollectionUseCase
	areas      usecase.IAreaUseCase
}

func NewFieldHandler(collection usecase.ICollectionUseCase, areas usecase.IAreaUseCase) *FieldHandler {
	return &FieldHandler{collection: collection, areas: areas}
}

// ListAssignments returns the areas of the authenticated researcher.
// Coordinators see every area.
func (h *FieldHandler) ListAssignments(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var (
		areas []entities.SurveyAreaAssignment
		err   error
	)
	if user.Role == entities.RolePesquisadorCampo {
		areas, err = h.areas.ListByResearcher(c.Request.Context(), user.ID)
	} else {
		areas, err = h.areas.List(c.Request.Context())
	}
	if err != nil {
		appErr := mapFieldError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAreas(areas))
}

func (h *FieldHandler) GetArea(c *gin.Context) {
	area, err := h.areas.Get(c.Request.Context(), c.Param("area_id"))
	if err != nil {
		appErr := mapFieldError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromArea(area))
}

func (h *FieldHandler) StartSession(c *gin.Context) {
	var payload request.StartSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFieldPayload.HTTPStatus, errInvalidFieldPayload.ToHTTPError())
		return
	}

	user, _ := middleware.CurrentUser(c)
	session, err := h.collection.StartSession(c.Request.Context(), payload.ResolveAreaID(), user.ID)
	if err != nil {
		appErr := mapFieldError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(session))
}

func (h *FieldHandler) GetSession(c *gin.Context) {
	session, err := h.collection.GetSession(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapFieldError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *FieldHandler) SetAnswer(c *gin.Context) {
	var payload request.AnswerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFieldPayload.HTTPStatus, errInvalidFieldPayload.ToHTTPError())
		return
	}

	session, err := h.collection.SetAnswer(c.Request.Context(), c.Param("session_id"), payload.QuestionID, payload.Value)
	if err != nil {
		appErr := mapFieldError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *FieldHandler) ToggleOption(c *gin.Context) {
	var payload request.ToggleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFieldPayload.HTTPStatus, errInvalidFieldPayload.ToHTTPError())
		return
	}

	session, err := h.collection.ToggleOption(c.Request.Context(), c.Param("session_id"), payload.QuestionID, payload.Option, *payload.Selected)
	if err != nil {
		appErr := mapFieldError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *FieldHandler) SubmitSession(c *gin.Context) {
	surveyResponse, err := h.collection.Submit(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		var incomplete *usecase.IncompleteError
		if errors.As(err, &incomplete) {
			appErr := pkg.NewDomainErrorSimple("INCOMPLETE_QUESTIONNAIRE", "One or more questions are unanswered or invalid", http.StatusUnprocessableEntity)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithDetails(gin.H{"questionIds": incomplete.QuestionIDs}))
			return
		}
		appErr := mapFieldError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, surveyResponse)
}

func (h *FieldHandler) CancelSession(c *gin.Context) {
	if err := h.collection.Cancel(c.Request.Context(), c.Param("session_id")); err != nil {
		appErr := mapFieldError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FieldHandler) Sync(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	report, err := h.collection.Sync(c.Request.Context(), user.ID)
	if err != nil {
		appErr := mapFieldError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, report)
}

func mapFieldError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAreaID), errors.Is(err, usecase.ErrUnknownQuestion),
		errors.Is(err, usecase.ErrNotMultipleChoice), errors.Is(err, usecase.ErrOptionNotInSchema):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAreaNotFound):
		return pkg.NewDomainErrorSimple("AREA_NOT_FOUND", "Survey area not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Collection session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAreaNotAssigned):
		return pkg.NewDomainErrorSimple("AREA_NOT_ASSIGNED", "This area is not assigned to you", http.StatusForbidden)
	case errors.Is(err, usecase.ErrAreaTargetReached):
		return pkg.NewDomainErrorSimple("AREA_TARGET_REACHED", "Interview target for this area has been reached", http.StatusConflict)
	case errors.Is(err, usecase.ErrProjectForAreaGone):
		return pkg.NewDomainErrorSimple("PROJECT_GONE", "The project owning this area no longer exists", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
