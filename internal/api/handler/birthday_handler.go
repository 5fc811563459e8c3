package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/birthdaybook/birthday-api/internal/core/domain"
	"github.com/birthdaybook/birthday-api/internal/core/ports"
	"github.com/birthdaybook/birthday-api/internal/pkg/dates"
)

type BirthdayHandler struct {
	birthdayService ports.BirthdayService
	now             func() time.Time
}

func NewBirthdayHandler(birthdayService ports.BirthdayService) *BirthdayHandler {
	return &BirthdayHandler{birthdayService: birthdayService, now: time.Now}
}

type birthdayRequest struct {
	Birthday string `json:"birthday" validate:"required,birthdate"`
}

func (r birthdayRequest) date() (time.Time, error) {
	d, err := dates.Parse(r.Birthday)
	if err != nil {
		return time.Time{}, domain.Validation("birthday must be a date (YYYY-MM-DD)")
	}
	return d, nil
}

// ListUpcoming returns every birthday with the days left until it comes round.
//
// @Summary      List upcoming birthdays
// @Tags         birthdays
// @Produce      json
// @Security     CookieAuth
// @Security     BearerAuth
// @Success      200  {object}  Envelope{data=[]domain.UpcomingBirthday}
// @Failure      401  {object}  ErrorEnvelope
// @Router       /birthdays/upcomingBirthdays [get]
func (h *BirthdayHandler) ListUpcoming(c echo.Context) error {
	list, err := h.birthdayService.ListUpcoming(c.Request().Context(), h.now().UTC())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, list, "Upcoming birthdays fetched successfully")
}

// Register stores the current user's birthday.
//
// @Summary      Register a birthday
// @Tags         birthdays
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Security     BearerAuth
// @Param        body  body      birthdayRequest  true  "Birthday (YYYY-MM-DD)"
// @Success      200   {object}  Envelope{data=domain.Birthday}
// @Failure      400   {object}  ErrorEnvelope
// @Failure      401   {object}  ErrorEnvelope
// @Router       /birthdays/registerBirthday [post]
func (h *BirthdayHandler) Register(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req birthdayRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	date, err := req.date()
	if err != nil {
		return err
	}

	created, err := h.birthdayService.Register(c.Request().Context(), user.ID, date)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, created, "Birthday registered successfully")
}

// Get returns one birthday joined with its owner.
//
// @Summary      Get a birthday
// @Tags         birthdays
// @Produce      json
// @Security     CookieAuth
// @Security     BearerAuth
// @Param        birthdayId  path      string  true  "Birthday ID"
// @Success      200         {object}  Envelope{data=domain.BirthdayDetail}
// @Failure      400         {object}  ErrorEnvelope
// @Failure      404         {object}  ErrorEnvelope
// @Router       /birthdays/c/{birthdayId} [get]
func (h *BirthdayHandler) Get(c echo.Context) error {
	detail, err := h.birthdayService.GetByID(c.Request().Context(), c.Param("birthdayId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, detail, "Birthday fetched successfully")
}

// Delete removes a birthday.
//
// @Summary      Delete a birthday
// @Tags         birthdays
// @Produce      json
// @Security     CookieAuth
// @Security     BearerAuth
// @Param        birthdayId  path      string  true  "Birthday ID"
// @Success      200         {object}  Envelope
// @Failure      400         {object}  ErrorEnvelope
// @Failure      404         {object}  ErrorEnvelope
// @Router       /birthdays/c/{birthdayId} [post]
func (h *BirthdayHandler) Delete(c echo.Context) error {
	if err := h.birthdayService.Delete(c.Request().Context(), c.Param("birthdayId")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, struct{}{}, "Birthday deleted successfully")
}

// Update changes the date of a birthday.
//
// @Summary      Update a birthday
// @Tags         birthdays
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Security     BearerAuth
// @Param        birthdayId  path      string           true  "Birthday ID"
// @Param        body        body      birthdayRequest  true  "New date (YYYY-MM-DD)"
// @Success      200         {object}  Envelope{data=domain.Birthday}
// @Failure      400         {object}  ErrorEnvelope
// @Failure      404         {object}  ErrorEnvelope
// @Router       /birthdays/c/{birthdayId} [patch]
func (h *BirthdayHandler) Update(c echo.Context) error {
	id := c.Param("birthdayId")
	if id == "" {
		return domain.Validation("birthday id is missing")
	}

	var req birthdayRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	date, err := req.date()
	if err != nil {
		return err
	}

	updated, err := h.birthdayService.Update(c.Request().Context(), id, date)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, updated, "Birthday updated successfully")
}
