package handler

import (
	"errors"
	"net/http"
	"time"

	"notely/api/middleware"
	"notely/internal/dto"
	"notely/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type NoteHandler struct {
	Service  *service.NoteService
	Validate *validator.Validate
}

func NewNoteHandler(svc *service.NoteService, validate *validator.Validate) *NoteHandler {
	return &NoteHandler{Service: svc, Validate: validate}
}

func (h *NoteHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	var req dto.CreateNoteRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	note, err := h.Service.CreateNote(c.Request().Context(), userID, service.NoteInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Date:     req.Date,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.NoteResponseFromEntity(note))
}

func (h *NoteHandler) List(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	notes, err := h.Service.ListNotes(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NoteResponsesFromEntities(notes))
}

func (h *NoteHandler) ListByDate(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	day, err := time.Parse("2006-01-02", c.QueryParam("date"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("date must be YYYY-MM-DD"))
	}
	notes, err := h.Service.ListNotesByDate(c.Request().Context(), userID, day)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NoteResponsesFromEntities(notes))
}

func (h *NoteHandler) Get(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid note id"))
	}
	note, err := h.Service.GetNote(c.Request().Context(), userID, noteID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NoteResponseFromEntity(note))
}

func (h *NoteHandler) Update(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid note id"))
	}
	var req dto.UpdateNoteRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	note, err := h.Service.UpdateNote(c.Request().Context(), userID, noteID, service.NoteInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Date:     req.Date,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NoteResponseFromEntity(note))
}

func (h *NoteHandler) Delete(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid note id"))
	}
	if err := h.Service.DeleteNote(c.Request().Context(), userID, noteID); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "note deleted successfully"})
}

func (h *NoteHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}
