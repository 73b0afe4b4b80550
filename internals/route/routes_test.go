package routes_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"

	"hrms_backend/internals/testfixtures"
)

func do(t *testing.T, app *fiber.App, method, path string, body any) (int, []byte) {
	t.Helper()

	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	return v
}

type employee struct {
	ID         uint   `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	CreatedAt  string `json:"created_at"`
}

type errorBody struct {
	Detail    string              `json:"detail"`
	ErrorCode string              `json:"error_code"`
	Errors    map[string][]string `json:"errors"`
}

func createEmployee(t *testing.T, app *fiber.App, id, email string) employee {
	t.Helper()
	code, raw := do(t, app, http.MethodPost, "/employees/", map[string]string{
		"employee_id": id,
		"full_name":   "Employee " + id,
		"email":       email,
		"department":  "Engineering",
	})
	if code != http.StatusCreated {
		t.Fatalf("create %s: %d %s", id, code, raw)
	}
	return decode[employee](t, raw)
}

func TestEmployeeRoutes(t *testing.T) {
	t.Parallel()

	t.Run("create then list", func(t *testing.T) {
		t.Parallel()
		app, _ := testfixtures.NewApp(t)

		e := createEmployee(t, app, "EMP001", "e1@x.com")
		if e.ID == 0 || e.CreatedAt == "" || e.EmployeeID != "EMP001" {
			t.Fatalf("unexpected create response %+v", e)
		}

		code, raw := do(t, app, http.MethodGet, "/employees/", nil)
		if code != http.StatusOK {
			t.Fatalf("list: %d %s", code, raw)
		}
		list := decode[[]employee](t, raw)
		if len(list) != 1 || list[0].ID != e.ID {
			t.Fatalf("unexpected list %+v", list)
		}
	})

	t.Run("duplicates are 409", func(t *testing.T) {
		t.Parallel()
		app, _ := testfixtures.NewApp(t)
		createEmployee(t, app, "EMP001", "e1@x.com")

		code, raw := do(t, app, http.MethodPost, "/employees/", map[string]string{
			"employee_id": "EMP001", "full_name": "X", "email": "new@x.com", "department": "Ops",
		})
		if code != http.StatusConflict || decode[errorBody](t, raw).Detail != "Employee ID already exists" {
			t.Fatalf("duplicate id: %d %s", code, raw)
		}

		code, raw = do(t, app, http.MethodPost, "/employees/", map[string]string{
			"employee_id": "EMP002", "full_name": "X", "email": "e1@x.com", "department": "Ops",
		})
		if code != http.StatusConflict || decode[errorBody](t, raw).Detail != "Email already exists" {
			t.Fatalf("duplicate email: %d %s", code, raw)
		}
	})

	t.Run("invalid email is a validation error", func(t *testing.T) {
		t.Parallel()
		app, _ := testfixtures.NewApp(t)

		code, raw := do(t, app, http.MethodPost, "/employees/", map[string]string{
			"employee_id": "EMP001", "full_name": "X", "email": "not-an-email", "department": "Ops",
		})
		if code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d %s", code, raw)
		}
		if _, ok := decode[errorBody](t, raw).Errors["email"]; !ok {
			t.Fatalf("expected email field error, got %s", raw)
		}
	})

	t.Run("missing field is a validation error", func(t *testing.T) {
		t.Parallel()
		app, _ := testfixtures.NewApp(t)

		code, raw := do(t, app, http.MethodPost, "/employees/", map[string]string{
			"employee_id": "EMP001", "email": "a@x.com", "department": "Ops",
		})
		if code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d %s", code, raw)
		}
		if _, ok := decode[errorBody](t, raw).Errors["full_name"]; !ok {
			t.Fatalf("expected full_name field error, got %s", raw)
		}
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()
		app, _ := testfixtures.NewApp(t)

		code, _ := do(t, app, http.MethodDelete, "/employees/999", nil)
		if code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", code)
		}

		code, _ = do(t, app, http.MethodDelete, "/employees/abc", nil)
		if code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 for non-integer id, got %d", code)
		}

		e := createEmployee(t, app, "EMP001", "e1@x.com")
		code, raw := do(t, app, http.MethodPost, "/attendance/", map[string]any{
			"employee_db_id": e.ID, "attendance_date": "2024-01-01", "status": "Present",
		})
		if code != http.StatusCreated {
			t.Fatalf("mark: %d %s", code, raw)
		}

		code, _ = do(t, app, http.MethodDelete, "/employees/"+itoa(e.ID), nil)
		if code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", code)
		}
		code, _ = do(t, app, http.MethodGet, "/attendance/"+itoa(e.ID), nil)
		if code != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", code)
		}
		_, raw = do(t, app, http.MethodGet, "/dashboard/summary", nil)
		if s := decode[map[string]int](t, raw); s["total_attendance_records"] != 0 || s["total_employees"] != 0 {
			t.Fatalf("expected cascade, got %s", raw)
		}
	})
}

func TestAttendanceRoutes(t *testing.T) {
	t.Parallel()

	t.Run("mark validates and reports 404/409", func(t *testing.T) {
		t.Parallel()
		app, _ := testfixtures.NewApp(t)

		code, _ := do(t, app, http.MethodPost, "/attendance/", map[string]any{
			"employee_db_id": 12345, "attendance_date": "2024-01-01", "status": "Present",
		})
		if code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", code)
		}

		e := createEmployee(t, app, "EMP001", "e1@x.com")
		code, raw := do(t, app, http.MethodPost, "/attendance/", map[string]any{
			"employee_db_id": e.ID, "attendance_date": "2024-01-01", "status": "Present",
		})
		if code != http.StatusCreated {
			t.Fatalf("mark: %d %s", code, raw)
		}
		rec := decode[map[string]any](t, raw)
		if rec["attendance_date"] != "2024-01-01" || rec["status"] != "Present" || rec["id"] == nil || rec["created_at"] == nil {
			t.Fatalf("unexpected mark response %s", raw)
		}

		code, raw = do(t, app, http.MethodPost, "/attendance/", map[string]any{
			"employee_db_id": e.ID, "attendance_date": "2024-01-01", "status": "Absent",
		})
		if code != http.StatusConflict || decode[errorBody](t, raw).Detail != "Attendance already marked for this date" {
			t.Fatalf("expected 409, got %d %s", code, raw)
		}

		code, _ = do(t, app, http.MethodPost, "/attendance/", map[string]any{
			"employee_db_id": e.ID, "attendance_date": "01/02/2024", "status": "Present",
		})
		if code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 for bad date, got %d", code)
		}
	})

	t.Run("filter rejects inverted range", func(t *testing.T) {
		t.Parallel()
		app, _ := testfixtures.NewApp(t)

		code, raw := do(t, app, http.MethodGet, "/attendance/filter/?start_date=2024-02-01&end_date=2024-01-01", nil)
		if code != http.StatusBadRequest || decode[errorBody](t, raw).Detail != "start_date cannot be after end_date" {
			t.Fatalf("expected 400, got %d %s", code, raw)
		}

		code, _ = do(t, app, http.MethodGet, "/attendance/filter/?start_date=2024-02-01", nil)
		if code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 for missing end_date, got %d", code)
		}
	})

	t.Run("filter on empty range is an empty list", func(t *testing.T) {
		t.Parallel()
		app, _ := testfixtures.NewApp(t)

		code, raw := do(t, app, http.MethodGet, "/attendance/filter/?start_date=2024-01-01&end_date=2024-01-31", nil)
		if code != http.StatusOK || string(bytes.TrimSpace(raw)) != "[]" {
			t.Fatalf("expected [], got %d %s", code, raw)
		}
	})
}

// Two days for one employee, then filter and dashboard over the same data.
func TestAttendanceScenario(t *testing.T) {
	t.Parallel()
	app, _ := testfixtures.NewApp(t)

	e1 := createEmployee(t, app, "EMP001", "e1@x.com")
	for _, m := range []map[string]any{
		{"employee_db_id": e1.ID, "attendance_date": "2024-01-01", "status": "Present"},
		{"employee_db_id": e1.ID, "attendance_date": "2024-01-02", "status": "Absent"},
	} {
		if code, raw := do(t, app, http.MethodPost, "/attendance/", m); code != http.StatusCreated {
			t.Fatalf("mark: %d %s", code, raw)
		}
	}

	code, raw := do(t, app, http.MethodGet, "/attendance/"+itoa(e1.ID), nil)
	if code != http.StatusOK {
		t.Fatalf("list: %d %s", code, raw)
	}
	list := decode[[]map[string]any](t, raw)
	if len(list) != 2 || list[0]["attendance_date"] != "2024-01-02" || list[0]["employee_business_id"] != "EMP001" {
		t.Fatalf("unexpected list %s", raw)
	}

	code, raw = do(t, app, http.MethodGet, "/attendance/filter/?start_date=2024-01-01&end_date=2024-01-02", nil)
	if code != http.StatusOK {
		t.Fatalf("filter: %d %s", code, raw)
	}
	rows := decode[[]map[string]any](t, raw)
	if len(rows) != 1 {
		t.Fatalf("expected one summary row, got %s", raw)
	}
	if rows[0]["employee_id"] != float64(e1.ID) || rows[0]["total_present_days"] != float64(1) || rows[0]["total_records"] != float64(2) {
		t.Fatalf("unexpected summary %s", raw)
	}
	if rows[0]["employee_email"] != "e1@x.com" || rows[0]["department"] != "Engineering" {
		t.Fatalf("unexpected identity %s", raw)
	}

	code, raw = do(t, app, http.MethodGet, "/dashboard/summary", nil)
	if code != http.StatusOK {
		t.Fatalf("summary: %d %s", code, raw)
	}
	s := decode[map[string]int](t, raw)
	if s["total_employees"] != 1 || s["total_attendance_records"] != 2 || s["present_today"] != 0 || s["absent_today"] != 0 {
		t.Fatalf("unexpected summary %s", raw)
	}

	createEmployee(t, app, "EMP002", "e2@x.com")
	code, raw = do(t, app, http.MethodGet, "/dashboard/present-days", nil)
	if code != http.StatusOK {
		t.Fatalf("present-days: %d %s", code, raw)
	}
	pd := decode[[]map[string]any](t, raw)
	if len(pd) != 2 || pd[0]["present_days"] != float64(1) || pd[1]["present_days"] != float64(0) {
		t.Fatalf("unexpected present-days %s", raw)
	}
}

func TestBaseRoutes(t *testing.T) {
	t.Parallel()
	app, _ := testfixtures.NewApp(t)

	code, raw := do(t, app, http.MethodGet, "/db-check", nil)
	if code != http.StatusOK || decode[map[string]string](t, raw)["status"] != "Database connected successfully" {
		t.Fatalf("db-check: %d %s", code, raw)
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health: %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Fatal("expected X-Request-ID header")
	}
}

func itoa(n uint) string {
	return strconv.FormatUint(uint64(n), 10)
}
