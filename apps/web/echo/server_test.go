package echoweb_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	echoweb "github.com/trezcool/escola/apps/web/echo"
	"github.com/trezcool/escola/core"
	"github.com/trezcool/escola/core/class"
	"github.com/trezcool/escola/core/integrity"
	"github.com/trezcool/escola/core/student"
	exportsvc "github.com/trezcool/escola/services/export"
	"github.com/trezcool/escola/storage/mockdb"
	"github.com/trezcool/escola/tests"
)

type httpTest struct {
	name         string
	path         string
	wantCode     int
	wantType     string
	wantData     []byte // JSON
	wantContains []string
}

func newServer(t *testing.T, studentSvc student.Service, classSvc class.Service) *echoweb.Server {
	t.Helper()
	conf := testutil.NewConfig()
	db, err := mockdb.Open()
	require.NoError(t, err)

	studentRepo := mockdb.NewStudentRepository(db)
	classRepo := mockdb.NewClassRepository(db)
	if studentSvc == nil {
		studentSvc = student.NewService(studentRepo, conf)
	}
	if classSvc == nil {
		classSvc = class.NewService(classRepo, conf)
	}

	validate, translator := testutil.NewValidator()

	srv := echoweb.NewServer(echoweb.ServerDeps{
		Conf:        conf,
		Logger:      testutil.NewLogger(),
		StudentSvc:  studentSvc,
		StudentRepo: studentRepo,
		ClassSvc:    classSvc,
		ClassRepo:   classRepo,
		Checker:     integrity.NewChecker(validate, translator),
		Translator:  translator,
	})
	t.Cleanup(func() { _ = srv.Close() })
	return srv
}

func marshal(t *testing.T, v interface{}) []byte {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func doRequest(srv http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestServer_routes(t *testing.T) {
	srv := newServer(t, nil, nil)

	seedReport := integrity.Report{Issues: []integrity.Issue{{
		Entity:  integrity.EntityStudent,
		ID:      "3",
		Kind:    integrity.KindDanglingReference,
		Field:   "class_id",
		Message: "class 2 does not exist",
	}}}

	tests := []httpTest{
		{name: "health", path: "/health", wantCode: http.StatusOK, wantContains: []string{"ok"}},
		{
			name:     "list students",
			path:     "/api/v1/students",
			wantCode: http.StatusOK,
			wantType: "application/json",
			wantData: marshal(t, mockdb.SeedStudents()),
		},
		{
			name:     "list classes",
			path:     "/api/v1/classes/",
			wantCode: http.StatusOK,
			wantType: "application/json",
			wantData: marshal(t, mockdb.SeedClasses()),
		},
		{
			name:     "integrity",
			path:     "/api/v1/integrity",
			wantCode: http.StatusOK,
			wantType: "application/json",
			wantData: marshal(t, seedReport),
		},
		{
			name:     "students page",
			path:     "/students",
			wantCode: http.StatusOK,
			wantType: "text/html",
			wantContains: []string{
				"<th>ID</th><th>Nome</th><th>Status</th><th>Série</th><th>Turno</th><th>Turma</th>",
				"<td>1</td><td>Ana Júlia Souza</td><td>Ativo</td><td>5º Ano</td><td>Manhã</td><td>1</td>",
				"<td>3</td><td>Mariana Costa Ribeiro</td><td>Inativo</td><td>4º Ano</td><td>Tarde</td><td>2</td>",
				`href="/students/export.xlsx"`,
				"Total: 3 | Ativos: 2",
			},
		},
		{
			name:     "classes page",
			path:     "/classes/",
			wantCode: http.StatusOK,
			wantType: "text/html",
			wantContains: []string{
				"<td>1</td><td>5º Ano A</td><td>Manhã</td><td>Segunda, Quarta, Sexta</td><td>07:30-11:30</td><td>Ativo</td><td>15</td><td>01/02/2024</td>",
				"Total: 1 | Ativos: 1",
			},
		},
		{
			name:         "openapi document",
			path:         "/api/docs/openapi.yaml",
			wantCode:     http.StatusOK,
			wantContains: []string{"openapi: 3.0.3", "/integrity:"},
		},
		{name: "docs ui", path: "/api/docs/", wantCode: http.StatusOK},
		{name: "unknown", path: "/teachers", wantCode: http.StatusNotFound, wantData: []byte(`{"error":"Not Found"}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(srv, http.MethodGet, tt.path)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantType != "" {
				assert.Contains(t, rec.Header().Get("Content-Type"), tt.wantType)
			}
			if tt.wantData != nil {
				assert.JSONEq(t, string(tt.wantData), rec.Body.String())
			}
			for _, s := range tt.wantContains {
				assert.Contains(t, rec.Body.String(), s)
			}
		})
	}
}

func TestServer_redirects(t *testing.T) {
	srv := newServer(t, nil, nil)

	rec := doRequest(srv, http.MethodGet, "/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/students", rec.Header().Get("Location"))

	rec = doRequest(srv, http.MethodGet, "/api/docs")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/api/docs/", rec.Header().Get("Location"))
}

func TestServer_requestID(t *testing.T) {
	srv := newServer(t, nil, nil)

	rec := doRequest(srv, http.MethodGet, "/health")
	assert.Len(t, rec.Header().Get("X-Request-Id"), 36)
}

func TestServer_export(t *testing.T) {
	srv := newServer(t, nil, nil)

	tests := []struct {
		name     string
		path     string
		filename string
		sheet    string
		wantRows [][]string
	}{
		{
			name:     "students",
			path:     "/students/export.xlsx",
			filename: "alunos.xlsx",
			sheet:    "Alunos",
			wantRows: append([][]string{student.Table.Headers()}, student.Table.Grid(mockdb.SeedStudents()).Rows...),
		},
		{
			name:     "classes",
			path:     "/classes/export.xlsx",
			filename: "turmas.xlsx",
			sheet:    "Turmas",
			wantRows: append([][]string{class.Table.Headers()}, class.Table.Grid(mockdb.SeedClasses()).Rows...),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(srv, http.MethodGet, tt.path)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, exportsvc.MIMEXLSX, rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Header().Get("Content-Disposition"), tt.filename)

			f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
			require.NoError(t, err)
			defer f.Close()

			rows, err := f.GetRows(tt.sheet)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRows, rows)
		})
	}
}

func TestServer_serviceErrors(t *testing.T) {
	stub := &testutil.APIClientStub{Err: &core.ValidationError{Fields: []core.FieldError{{Field: "id", Error: "bad id"}}}}
	srv := newServer(t, student.NewRemoteService(stub), class.NewRemoteService(stub))

	rec := doRequest(srv, http.MethodGet, "/api/v1/students")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"id":"bad id"}`, rec.Body.String())

	stub.Err = core.NewShutdownError("integrity lost")
	rec = doRequest(srv, http.MethodGet, "/api/v1/classes")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())

	select {
	case <-srv.ShutdownSignal():
	case <-time.After(time.Second):
		t.Fatal("shutdown was not signaled")
	}

	// pages do not go through the services
	rec = doRequest(srv, http.MethodGet, "/students")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_emptyCollections(t *testing.T) {
	stub := &testutil.APIClientStub{Responses: map[string]interface{}{"/students": nil}}
	srv := newServer(t, student.NewRemoteService(stub), class.NewRemoteService(stub))

	for _, path := range []string{"/api/v1/students", "/api/v1/classes"} {
		rec := doRequest(srv, http.MethodGet, path)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String(), path)
	}
	assert.Equal(t, []string{"/students", "/classes"}, stub.Paths)
}
