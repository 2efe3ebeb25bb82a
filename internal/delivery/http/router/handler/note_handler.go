package handler

import (
	"net/http"

	"chamabook/internal/delivery/http/response"
	"chamabook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createNoteRequest is the wire shape of a new note.
type createNoteRequest struct {
	AdminID string `json:"adminId" validate:"required"`
	Content string `json:"content"`
}

// updateNoteRequest enumerates the patchable note fields.
type updateNoteRequest struct {
	Content *string `json:"content"`
}

// NoteHandler holds dependencies for note handlers.
type NoteHandler struct {
	uc usecase.NoteUsecase
}

// NewNoteHandler is the constructor for NoteHandler, injected by Fx.
func NewNoteHandler(uc usecase.NoteUsecase) *NoteHandler {
	return &NoteHandler{uc: uc}
}

// Get handles GET /api/notes?adminId=. Returns null when the admin has no
// note yet.
func (h *NoteHandler) Get(c echo.Context) error {
	adminID := c.QueryParam("adminId")
	if adminID == "" {
		return response.BadRequest(c, "adminId is required")
	}

	note, err := h.uc.GetNoteByAdmin(c.Request().Context(), adminID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, note)
}

// Create handles POST /api/notes.
func (h *NoteHandler) Create(c echo.Context) error {
	var req createNoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	note, err := h.uc.CreateNote(c.Request().Context(), usecase.CreateNoteInput{
		AdminID: req.AdminID,
		Content: req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, note)
}

// Update handles PATCH /api/notes/:id.
func (h *NoteHandler) Update(c echo.Context) error {
	var req updateNoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	note, err := h.uc.UpdateNote(c.Request().Context(), c.Param("id"), usecase.UpdateNoteInput{
		Content: req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, note)
}
