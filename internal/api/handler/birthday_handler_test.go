package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/birthdaybook/birthday-api/internal/core/domain"
)

type stubBirthdayService struct {
	registerFn func(ctx context.Context, ownerID string, date time.Time) (*domain.Birthday, error)
	updateFn   func(ctx context.Context, id string, date time.Time) (*domain.Birthday, error)
	deleteFn   func(ctx context.Context, id string) error
	getFn      func(ctx context.Context, id string) (*domain.BirthdayDetail, error)
	listFn     func(ctx context.Context, now time.Time) ([]domain.UpcomingBirthday, error)
}

func (s *stubBirthdayService) Register(ctx context.Context, ownerID string, date time.Time) (*domain.Birthday, error) {
	return s.registerFn(ctx, ownerID, date)
}

func (s *stubBirthdayService) Update(ctx context.Context, id string, date time.Time) (*domain.Birthday, error) {
	return s.updateFn(ctx, id, date)
}

func (s *stubBirthdayService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubBirthdayService) GetByID(ctx context.Context, id string) (*domain.BirthdayDetail, error) {
	return s.getFn(ctx, id)
}

func (s *stubBirthdayService) ListUpcoming(ctx context.Context, now time.Time) ([]domain.UpcomingBirthday, error) {
	return s.listFn(ctx, now)
}

func TestBirthdayHandler_Register(t *testing.T) {
	stub := &stubBirthdayService{
		registerFn: func(_ context.Context, ownerID string, date time.Time) (*domain.Birthday, error) {
			if ownerID != "u1" {
				t.Fatalf("expected owner u1, got %s", ownerID)
			}
			want := time.Date(1990, time.May, 17, 0, 0, 0, 0, time.UTC)
			if !date.Equal(want) {
				t.Fatalf("expected %s, got %s", want, date)
			}
			return &domain.Birthday{ID: "b1", Owner: ownerID, Date: date}, nil
		},
	}
	h := NewBirthdayHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/api/v2/birthdays/registerBirthday", `{"birthday":"1990-05-17"}`)
	c.Set(UserContextKey, &domain.User{ID: "u1"})
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decodeEnvelope(t, rec)
	if resp["message"] != "Birthday registered successfully" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestBirthdayHandler_Register_BadDate(t *testing.T) {
	h := NewBirthdayHandler(&stubBirthdayService{})

	for _, body := range []string{`{}`, `{"birthday":"17/05/1990"}`} {
		c, _ := newTestContext(http.MethodPost, "/api/v2/birthdays/registerBirthday", body)
		c.Set(UserContextKey, &domain.User{ID: "u1"})
		if err := h.Register(c); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("body %s: expected validation error, got %v", body, err)
		}
	}
}

func TestBirthdayHandler_ListUpcoming(t *testing.T) {
	fixed := time.Date(2023, time.January, 1, 12, 0, 0, 0, time.UTC)
	h := NewBirthdayHandler(&stubBirthdayService{
		listFn: func(_ context.Context, now time.Time) ([]domain.UpcomingBirthday, error) {
			if !now.Equal(fixed) {
				t.Fatalf("unexpected now: %s", now)
			}
			return []domain.UpcomingBirthday{{ID: "b1", Username: "ana", DaysLeft: 0}}, nil
		},
	})
	h.now = func() time.Time { return fixed }

	c, rec := newTestContext(http.MethodGet, "/api/v2/birthdays/upcomingBirthdays", "")
	if err := h.ListUpcoming(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	list, ok := decodeEnvelope(t, rec)["data"].([]any)
	if !ok || len(list) != 1 {
		t.Fatalf("unexpected data: %s", rec.Body.String())
	}
	if entry := list[0].(map[string]any); entry["daysLeft"] != float64(0) || entry["username"] != "ana" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestBirthdayHandler_GetDeleteUpdate(t *testing.T) {
	stub := &stubBirthdayService{
		getFn: func(_ context.Context, id string) (*domain.BirthdayDetail, error) {
			if id != "b1" {
				return nil, domain.ErrBirthdayNotFound
			}
			return &domain.BirthdayDetail{ID: id, Owner: "u1", Username: "ana", Email: "a@x.com"}, nil
		},
		deleteFn: func(_ context.Context, id string) error {
			if id != "b1" {
				return domain.ErrBirthdayNotFound
			}
			return nil
		},
		updateFn: func(_ context.Context, id string, date time.Time) (*domain.Birthday, error) {
			return &domain.Birthday{ID: id, Date: date}, nil
		},
	}
	h := NewBirthdayHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/api/v2/birthdays/c/b1", "")
	c.SetParamNames("birthdayId")
	c.SetParamValues("b1")
	if err := h.Get(c); err != nil {
		t.Fatalf("get: %v", err)
	}
	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	if data["username"] != "ana" {
		t.Fatalf("unexpected data: %+v", data)
	}
	if _, leaked := data["email"]; leaked {
		t.Fatalf("owner email must not be exposed")
	}

	c, _ = newTestContext(http.MethodGet, "/api/v2/birthdays/c/zz", "")
	c.SetParamNames("birthdayId")
	c.SetParamValues("zz")
	if err := h.Get(c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	c, _ = newTestContext(http.MethodPost, "/api/v2/birthdays/c/b1", "")
	c.SetParamNames("birthdayId")
	c.SetParamValues("b1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("delete: %v", err)
	}

	c, rec = newTestContext(http.MethodPatch, "/api/v2/birthdays/c/b1", `{"birthday":"2000-02-29"}`)
	c.SetParamNames("birthdayId")
	c.SetParamValues("b1")
	if err := h.Update(c); err != nil {
		t.Fatalf("update: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
