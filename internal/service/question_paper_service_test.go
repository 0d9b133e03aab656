package service

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/sheetscan/omr-backend/internal/dto"
)

func detailsOf(t *testing.T, raw json.RawMessage) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal details: %v", err)
	}
	return m
}

func TestCreateQuestionPaperValidation(t *testing.T) {
	cases := []struct {
		name    string
		details string
	}{
		{"missing answers", `{"questions": [1, 2, 3]}`},
		{"missing questions", `{"answers": [1, 2, 1]}`},
		{"not an object", `[1, 2, 3]`},
		{"not valid JSON", `{"questions": `},
		{"string wrapping invalid JSON", `"not json at all"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakePaperRepo(nil)
			svc := NewQuestionPaperService(repo)

			_, err := svc.Create(dto.QuestionPaperCreateRequest{Details: json.RawMessage(tc.details)})
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if len(repo.papers) != 0 {
				t.Fatalf("no record should be created on validation failure, found %d", len(repo.papers))
			}
		})
	}
}

func TestCreateQuestionPaperAcceptsSerializedDetails(t *testing.T) {
	repo := newFakePaperRepo(nil)
	svc := NewQuestionPaperService(repo)

	resp, err := svc.Create(dto.QuestionPaperCreateRequest{
		Details: json.RawMessage(`"{\"questions\": [1, 2], \"answers\": [1, 1]}"`),
	})
	if err != nil {
		t.Fatalf("create with serialized details: %v", err)
	}

	got := detailsOf(t, resp.Details)
	if _, ok := got["questions"]; !ok {
		t.Fatal("normalized details lost the questions key")
	}
	if _, ok := got["answers"]; !ok {
		t.Fatal("normalized details lost the answers key")
	}
}

func TestGetAfterCreateRoundTrip(t *testing.T) {
	repo := newFakePaperRepo(nil)
	svc := NewQuestionPaperService(repo)

	created, err := svc.Create(dto.QuestionPaperCreateRequest{
		Details: json.RawMessage(`{"questions": [1, 2, 3], "answers": [1, 2, 1], "subject": "physics"}`),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("create must assign an id")
	}

	fetched, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("get after create: %v", err)
	}
	if fetched.ID != created.ID {
		t.Fatalf("id mismatch: %s vs %s", fetched.ID, created.ID)
	}
	if !reflect.DeepEqual(detailsOf(t, fetched.Details), detailsOf(t, created.Details)) {
		t.Fatal("details returned by Get differ from those returned by Create")
	}
}

func TestGetUnknownPaper(t *testing.T) {
	svc := NewQuestionPaperService(newFakePaperRepo(nil))

	_, err := svc.Get("missing-id")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateReplacesDetails(t *testing.T) {
	repo := newFakePaperRepo(nil)
	svc := NewQuestionPaperService(repo)

	created, err := svc.Create(dto.QuestionPaperCreateRequest{
		Details: json.RawMessage(`{"questions": [1], "answers": [1], "note": "v1"}`),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(created.ID, dto.QuestionPaperCreateRequest{
		Details: json.RawMessage(`{"questions": [1, 2], "answers": [2, 2]}`),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	got := detailsOf(t, updated.Details)
	if _, ok := got["note"]; ok {
		t.Fatal("update must replace details wholesale, old keys survived")
	}

	if _, err := svc.Update(created.ID, dto.QuestionPaperCreateRequest{
		Details: json.RawMessage(`{"questions": [1]}`),
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("update with incomplete details should fail validation, got %v", err)
	}
}

func TestUpdateUnknownPaper(t *testing.T) {
	svc := NewQuestionPaperService(newFakePaperRepo(nil))

	_, err := svc.Update("missing-id", dto.QuestionPaperCreateRequest{
		Details: json.RawMessage(`{"questions": [], "answers": []}`),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteUnknownPaper(t *testing.T) {
	svc := NewQuestionPaperService(newFakePaperRepo(nil))

	if err := svc.Delete("missing-id"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteCascadesToResults(t *testing.T) {
	resultRepo := newFakeResultRepo()
	paperRepo := newFakePaperRepo(resultRepo)
	paperSvc := NewQuestionPaperService(paperRepo)
	resultSvc := NewResultService(resultRepo)

	created, err := paperSvc.Create(dto.QuestionPaperCreateRequest{
		Details: json.RawMessage(`{"questions": [1, 2, 3], "answers": [1, 2, 1]}`),
	})
	if err != nil {
		t.Fatalf("create paper: %v", err)
	}

	scorer := NewRandomSheetScorer(paperRepo)
	storage := newTestStorage(t)
	evalSvc := NewEvaluationService(resultRepo, scorer, storage)

	var resultIDs []uint
	for _, roll := range []string{"R1", "R2", "R3"} {
		resp := evaluateSheet(t, evalSvc, roll, created.ID)
		resultIDs = append(resultIDs, resp.ID)
	}

	if err := paperSvc.Delete(created.ID); err != nil {
		t.Fatalf("delete paper: %v", err)
	}

	if _, err := paperSvc.Get(created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted paper should be gone, got %v", err)
	}
	for _, id := range resultIDs {
		if _, err := resultSvc.Get(id); !errors.Is(err, ErrNotFound) {
			t.Fatalf("result %d should be deleted with its paper, got %v", id, err)
		}
	}
}

func TestListPagination(t *testing.T) {
	repo := newFakePaperRepo(nil)
	svc := NewQuestionPaperService(repo)

	for i := 0; i < 5; i++ {
		if _, err := svc.Create(dto.QuestionPaperCreateRequest{
			Details: json.RawMessage(`{"questions": [1], "answers": [1]}`),
		}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	all, err := svc.List(0, 10)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("expected 5 papers, got %d", len(all))
	}

	page, err := svc.List(2, 2)
	if err != nil {
		t.Fatalf("list page: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("limit=2 must return at most 2 records, got %d", len(page))
	}
	for i := range page {
		if page[i].ID != all[i+2].ID {
			t.Fatalf("page entry %d does not match offset view: %s vs %s", i, page[i].ID, all[i+2].ID)
		}
	}

	tail, err := svc.List(10, 2)
	if err != nil {
		t.Fatalf("list past end: %v", err)
	}
	if len(tail) != 0 {
		t.Fatalf("skip past end must return nothing, got %d", len(tail))
	}
}
