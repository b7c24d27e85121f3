package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"summarizer/internal/domain/entity"
	pg "summarizer/internal/infra/adapter/persistence/postgres"
)

/* ─────────────────────────── ヘルパ ─────────────────────────── */

var columns = []string{"id", "url", "summary", "created_at"}

func sumRow(s *entity.Summary) *sqlmock.Rows {
	return sqlmock.NewRows(columns).AddRow(s.ID, s.URL, s.Summary, s.CreatedAt)
}

func fixture() *entity.Summary {
	return &entity.Summary{
		ID:        1,
		URL:       "https://testdriven.io/",
		Summary:   "summary",
		CreatedAt: time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC),
	}
}

/* ─────────────────────────── 1. Create ─────────────────────────── */

func TestSummaryRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	in := fixture()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO text_summary")).
		WithArgs(in.URL, in.Summary, in.CreatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	id, err := pg.NewSummaryRepo(db).Create(context.Background(), in)
	if err != nil || id != 7 {
		t.Fatalf("Create id=%d err=%v", id, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSummaryRepo_Create_Error(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	boom := errors.New("unique violation")
	mock.ExpectQuery("INSERT INTO text_summary").WillReturnError(boom)

	_, err := pg.NewSummaryRepo(db).Create(context.Background(), fixture())
	if !errors.Is(err, boom) {
		t.Fatalf("want wrapped error, got %v", err)
	}
}

/* ─────────────────────────── 2. Get ─────────────────────────── */

func TestSummaryRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := fixture()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, url, summary, created_at")).
		WithArgs(int64(1)).
		WillReturnRows(sumRow(want))

	got, err := pg.NewSummaryRepo(db).Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSummaryRepo_Get_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM text_summary").
		WithArgs(int64(999)).
		WillReturnError(sql.ErrNoRows)

	got, err := pg.NewSummaryRepo(db).Get(context.Background(), 999)
	if err != nil || got != nil {
		t.Fatalf("want (nil, nil), got (%v, %v)", got, err)
	}
}

/* ─────────────────────────── 3. List ─────────────────────────── */

func TestSummaryRepo_List(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	a := fixture()
	b := fixture()
	b.ID, b.URL = 2, "https://testdrivenn.io/"
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY id")).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(a.ID, a.URL, a.Summary, a.CreatedAt).
			AddRow(b.ID, b.URL, b.Summary, b.CreatedAt))

	got, err := pg.NewSummaryRepo(db).List(context.Background())
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if diff := cmp.Diff([]*entity.Summary{a, b}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSummaryRepo_List_Empty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM text_summary").WillReturnRows(sqlmock.NewRows(columns))

	got, err := pg.NewSummaryRepo(db).List(context.Background())
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("List = %#v, %v", got, err)
	}
}

func TestSummaryRepo_List_RowError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	boom := errors.New("conn reset")
	mock.ExpectQuery("FROM text_summary").
		WillReturnRows(sumRow(fixture()).RowError(0, boom))

	if _, err := pg.NewSummaryRepo(db).List(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("want row error, got %v", err)
	}
}

/* ─────────────────────────── 4. Update ─────────────────────────── */

func TestSummaryRepo_Update(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := fixture()
	want.Summary = "updated!"
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE text_summary SET")).
		WithArgs(want.URL, "updated!", int64(1)).
		WillReturnRows(sumRow(want))

	got, err := pg.NewSummaryRepo(db).Update(context.Background(), 1,
		entity.SummaryUpdate{URL: want.URL, Summary: "updated!"})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSummaryRepo_Update_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("UPDATE text_summary").WillReturnRows(sqlmock.NewRows(columns))

	got, err := pg.NewSummaryRepo(db).Update(context.Background(), 5, entity.SummaryUpdate{URL: "https://a.io/"})
	if err != nil || got != nil {
		t.Fatalf("want (nil, nil), got (%v, %v)", got, err)
	}
}

/* ─────────────────────────── 5. Delete ─────────────────────────── */

func TestSummaryRepo_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM text_summary WHERE id = $1 RETURNING id")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	id, err := pg.NewSummaryRepo(db).Delete(context.Background(), 3)
	if err != nil || id != 3 {
		t.Fatalf("Delete id=%d err=%v", id, err)
	}
}

func TestSummaryRepo_Delete_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("DELETE FROM text_summary").WillReturnRows(sqlmock.NewRows([]string{"id"}))

	id, err := pg.NewSummaryRepo(db).Delete(context.Background(), 3)
	if err != nil || id != 0 {
		t.Fatalf("Delete id=%d err=%v", id, err)
	}
}
