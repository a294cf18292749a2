package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/VarshaKulal/CODECRAFT-FS-02/internal/core/domain"
	"github.com/VarshaKulal/CODECRAFT-FS-02/internal/core/ports"
)

type stubEmployeeService struct {
	createFn func(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Employee, error)
	listFn   func(ctx context.Context) ([]*domain.Employee, error)
	getFn    func(ctx context.Context, id string) (*domain.Employee, error)
	updateFn func(ctx context.Context, id string, input ports.UpdateEmployeeInput) (*domain.Employee, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubEmployeeService) Create(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Employee, error) {
	return s.createFn(ctx, input)
}

func (s *stubEmployeeService) List(ctx context.Context) ([]*domain.Employee, error) {
	return s.listFn(ctx)
}

func (s *stubEmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	return s.getFn(ctx, id)
}

func (s *stubEmployeeService) Update(ctx context.Context, id string, input ports.UpdateEmployeeInput) (*domain.Employee, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubEmployeeService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestEmployeeHandler_Create_Success(t *testing.T) {
	e := newEcho()
	now := time.Now().UTC()
	stub := &stubEmployeeService{
		createFn: func(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Employee, error) {
			if input.Name != "Ana" || input.Email != "a@x.com" || input.Position != "Eng" || input.Salary != 50000 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Employee{
				ID: "e1", Name: input.Name, Email: input.Email,
				Position: input.Position, Salary: input.Salary, CreatedAt: now,
			}, nil
		},
	}
	h := NewEmployeeHandler(stub)

	c, rec := postJSON(e, "/api/employees", `{"name":"Ana","email":"a@x.com","position":"Eng","salary":50000}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "e1" {
		t.Fatalf("expected assigned id, got %v", resp)
	}
}

func TestEmployeeHandler_Create_Validation(t *testing.T) {
	e := newEcho()
	stub := &stubEmployeeService{
		createFn: func(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Employee, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewEmployeeHandler(stub)

	cases := []string{
		`{"email":"a@x.com","position":"Eng","salary":50000}`,
		`{"name":"Ana","email":"not-an-email","position":"Eng","salary":50000}`,
		`{"name":"Ana","email":"a@x.com","position":"Eng","salary":-1}`,
	}
	for _, body := range cases {
		c, _ := postJSON(e, "/api/employees", body)
		err := h.Create(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %v", body, err)
		}
	}
}

func TestEmployeeHandler_List(t *testing.T) {
	e := newEcho()
	stub := &stubEmployeeService{
		listFn: func(ctx context.Context) ([]*domain.Employee, error) {
			return []*domain.Employee{
				{ID: "e2", Name: "newer"},
				{ID: "e1", Name: "older"},
			}, nil
		},
	}
	h := NewEmployeeHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[0]["id"] != "e2" || resp[1]["id"] != "e1" {
		t.Fatalf("order not preserved: %v", resp)
	}
}

func TestEmployeeHandler_List_Empty(t *testing.T) {
	e := newEcho()
	stub := &stubEmployeeService{
		listFn: func(ctx context.Context) ([]*domain.Employee, error) {
			return []*domain.Employee{}, nil
		},
	}
	h := NewEmployeeHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	// Empty list renders as [], not null.
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("expected [], got %s", got)
	}
}

func TestEmployeeHandler_Get_NotFound(t *testing.T) {
	e := newEcho()
	stub := &stubEmployeeService{
		getFn: func(ctx context.Context, id string) (*domain.Employee, error) {
			return nil, domain.ErrEmployeeNotFound
		},
	}
	h := NewEmployeeHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/employees/:id")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound to propagate, got %v", err)
	}
}

func TestEmployeeHandler_Update_PartialFields(t *testing.T) {
	e := newEcho()
	stub := &stubEmployeeService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateEmployeeInput) (*domain.Employee, error) {
			if id != "e1" {
				t.Fatalf("unexpected id: %s", id)
			}
			if input.Name != nil || input.Email != nil {
				t.Fatalf("absent fields must stay nil: %+v", input)
			}
			if input.Position == nil || *input.Position != "Lead" {
				t.Fatalf("position not carried: %+v", input)
			}
			if input.Salary == nil || *input.Salary != 70000 {
				t.Fatalf("salary not carried: %+v", input)
			}
			return &domain.Employee{ID: id, Name: "Ana", Position: "Lead", Salary: 70000}, nil
		},
	}
	h := NewEmployeeHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"position":"Lead","salary":70000}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/employees/:id")
	c.SetParamNames("id")
	c.SetParamValues("e1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestEmployeeHandler_Delete(t *testing.T) {
	e := newEcho()
	var deleted string
	stub := &stubEmployeeService{
		deleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	h := NewEmployeeHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/employees/:id")
	c.SetParamNames("id")
	c.SetParamValues("e1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted != "e1" {
		t.Fatalf("expected delete of e1, got %q", deleted)
	}
}
