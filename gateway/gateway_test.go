package gateway

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/vitechbot/vitech-client/models"
	"github.com/vitechbot/vitech-client/testutil"
)

const testID int64 = 123456789

func newTestClient(b *testutil.Backend) *Client {
	return NewClient(b.URL(), testID)
}

func TestGetCarriesTelegramID(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodGet, "/api/user", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("telegram_id"); got != "123456789" {
			t.Errorf("telegram_id = %q, want 123456789", got)
		}
		testutil.WriteJSON(t, w, http.StatusOK, models.UserResponse{
			FullName:   "Иванов Иван",
			Registered: true,
		})
	})

	user, err := newTestClient(backend).User(context.Background())
	if err != nil {
		t.Fatalf("User() error = %v", err)
	}
	if user.FullName != "Иванов Иван" || !user.Registered {
		t.Errorf("User() = %+v", user)
	}
}

func TestBodyErrorEnvelopeBecomesAPIError(t *testing.T) {
	backend := testutil.NewBackend(t)
	// 200 with a body-level error field.
	backend.HandleError(http.MethodGet, "/api/user", http.StatusOK, "пользователь не найден")

	_, err := newTestClient(backend).User(context.Background())
	var apiError *APIError
	if !errors.As(err, &apiError) {
		t.Fatalf("User() error = %v, want *APIError", err)
	}
	if apiError.Message != "пользователь не найден" {
		t.Errorf("Message = %q", apiError.Message)
	}
	if apiError.Status != http.StatusOK {
		t.Errorf("Status = %d, want 200 (body-level error)", apiError.Status)
	}
}

func TestNon2xxBecomesAPIError(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.HandleError(http.MethodGet, "/api/duties", http.StatusForbidden, "нет доступа")

	_, err := newTestClient(backend).Duties(context.Background())
	var apiError *APIError
	if !errors.As(err, &apiError) {
		t.Fatalf("Duties() error = %v, want *APIError", err)
	}
	if apiError.Status != http.StatusForbidden || apiError.Message != "нет доступа" {
		t.Errorf("APIError = %+v", apiError)
	}
}

func TestTasksBareArray(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodGet, "/api/tasks", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("user_id"); got != "123456789" {
			t.Errorf("user_id = %q, want 123456789", got)
		}
		testutil.WriteJSON(t, w, http.StatusOK, []models.Task{
			{ID: 1, Text: "выучить устав"},
			{ID: 2, Text: "подшить воротничок", Done: true},
		})
	})

	tasks, err := newTestClient(backend).Tasks(context.Background())
	if err != nil {
		t.Fatalf("Tasks() error = %v", err)
	}
	if len(tasks) != 2 || tasks[1].Done != true {
		t.Errorf("Tasks() = %+v", tasks)
	}
}

func TestTasksErrorEnvelope(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.HandleError(http.MethodGet, "/api/tasks", http.StatusOK, "user_id required")

	_, err := newTestClient(backend).Tasks(context.Background())
	var apiError *APIError
	if !errors.As(err, &apiError) {
		t.Fatalf("Tasks() error = %v, want *APIError", err)
	}
}

func TestSubmitPairVoteBody(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodPost, "/api/survey/pair-vote", func(w http.ResponseWriter, r *http.Request) {
		var req models.PairVoteRequest
		testutil.DecodeBody(t, r, &req)
		if req.UserID != testID || req.ObjectAID != 3 || req.ObjectBID != 7 ||
			req.Choice != models.ChoiceA || req.Stage != models.StageMain {
			t.Errorf("vote body = %+v", req)
		}
		testutil.WriteJSON(t, w, http.StatusOK, models.StatusResponse{Status: "ok"})
	})

	err := newTestClient(backend).SubmitPairVote(context.Background(), models.PairVoteRequest{
		UserID:    testID,
		ObjectAID: 3,
		ObjectBID: 7,
		Choice:    models.ChoiceA,
		Stage:     models.StageMain,
	})
	if err != nil {
		t.Fatalf("SubmitPairVote() error = %v", err)
	}
}

func TestDutiesForMonthParams(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodGet, "/api/duties", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("year") != "2025" || q.Get("month") != "12" {
			t.Errorf("query = %v", q)
		}
		testutil.WriteJSON(t, w, http.StatusOK, models.DutiesResponse{
			Duties: []models.Duty{{Date: "2025-12-20", Role: "к"}},
			Total:  1,
		})
	})

	resp, err := newTestClient(backend).DutiesForMonth(context.Background(), 2025, 12)
	if err != nil {
		t.Fatalf("DutiesForMonth() error = %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("Total = %d, want 1", resp.Total)
	}
}

func TestUploadScheduleMultipart(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodPost, "/api/schedule/upload", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm() error = %v", err)
		}
		if got := r.FormValue("telegram_id"); got != "123456789" {
			t.Errorf("telegram_id field = %q", got)
		}
		if got := r.FormValue("overwrite"); got != "1" {
			t.Errorf("overwrite field = %q, want 1", got)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("FormFile() error = %v", err)
		}
		defer file.Close()
		if header.Filename != "december.xlsx" {
			t.Errorf("filename = %q", header.Filename)
		}
		var buf bytes.Buffer
		buf.ReadFrom(file)
		if buf.String() != "xlsx-bytes" {
			t.Errorf("file content = %q", buf.String())
		}
		testutil.WriteJSON(t, w, http.StatusOK, models.UploadResponse{Message: "ok", Rows: 42})
	})

	resp, err := newTestClient(backend).UploadSchedule(
		context.Background(), "december.xlsx", strings.NewReader("xlsx-bytes"), true)
	if err != nil {
		t.Fatalf("UploadSchedule() error = %v", err)
	}
	if resp.Rows != 42 {
		t.Errorf("Rows = %d, want 42", resp.Rows)
	}
}

func TestUploadScheduleDetailIsError(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.HandleJSON(http.MethodPost, "/api/schedule/upload", models.UploadResponse{
		Detail: "месяц уже загружен",
	})

	_, err := newTestClient(backend).UploadSchedule(
		context.Background(), "a.xlsx", strings.NewReader("x"), false)
	var apiError *APIError
	if !errors.As(err, &apiError) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiError.Message != "месяц уже загружен" {
		t.Errorf("Message = %q", apiError.Message)
	}
}

func TestDownloadTemplateStreams(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodGet, "/api/schedule/template", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("template-bytes"))
	})

	var buf bytes.Buffer
	if err := newTestClient(backend).DownloadTemplate(context.Background(), &buf); err != nil {
		t.Fatalf("DownloadTemplate() error = %v", err)
	}
	if buf.String() != "template-bytes" {
		t.Errorf("template = %q", buf.String())
	}
}

func TestSurveyPairs(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodGet, "/api/survey/pairs", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("stage"); got != models.StageCanteen {
			t.Errorf("stage = %q, want canteen", got)
		}
		testutil.WriteJSON(t, w, http.StatusOK, models.PairsResponse{
			Pairs: []models.Pair{{ObjectAID: 1, ObjectBID: 2}},
		})
	})

	resp, err := newTestClient(backend).SurveyPairs(context.Background(), models.StageCanteen)
	if err != nil {
		t.Fatalf("SurveyPairs() error = %v", err)
	}
	if len(resp.Pairs) != 1 || resp.AlreadyVoted {
		t.Errorf("SurveyPairs() = %+v", resp)
	}
}

func TestSetRoleBody(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodPost, "/api/users/set-role", func(w http.ResponseWriter, r *http.Request) {
		var req models.SetRoleRequest
		testutil.DecodeBody(t, r, &req)
		if req.ActorTelegramID != testID || req.TargetTelegramID != 555 || req.Role != models.RoleSergeant {
			t.Errorf("body = %+v", req)
		}
		testutil.WriteJSON(t, w, http.StatusOK, models.StatusResponse{Status: "ok"})
	})

	if err := newTestClient(backend).SetRole(context.Background(), 555, models.RoleSergeant); err != nil {
		t.Fatalf("SetRole() error = %v", err)
	}
}
