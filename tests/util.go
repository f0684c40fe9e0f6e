// Package testutil holds fixtures shared by the package tests.
package testutil

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/trezcool/escola/core"
	"github.com/trezcool/escola/core/class"
	"github.com/trezcool/escola/core/student"
	logsvc "github.com/trezcool/escola/services/logger"
	"github.com/trezcool/escola/storage/mockdb"
)

// NewConfig returns the default configuration in test mode, without mock latency.
func NewConfig() *core.Config {
	v := viper.New()
	v.Set("env", "TEST")
	v.Set("testMode", true)
	v.Set("debug", false)
	v.Set("server.disable_req_logs", true)
	v.Set("mock.latency", time.Duration(0))
	return core.LoadConfig(v)
}

// NewLogger returns a logger that discards its output and never reports to Rollbar.
func NewLogger() core.Logger {
	logger := logsvc.NewRollbarLogger(log.New(io.Discard, "TEST : ", 0), NewConfig())
	logger.Enable(false)
	return logger
}

// NewValidator returns a validator with every custom validation registered,
// along with the translator its messages are registered on.
func NewValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	class.InitValidators(validate, translator)
	return validate, translator
}

// OpenDB opens a mock DB holding the given records, failing the test on error.
func OpenDB(t *testing.T, students []student.Student, classes []class.Class) *mockdb.DB {
	db, err := mockdb.OpenWith(students, classes)
	if err != nil {
		t.Fatalf("OpenDB(): %v", err)
	}
	return db
}

func NewStudent(id, name, classID string) student.Student {
	return student.Student{
		ID:       id,
		FullName: name,
		Status:   core.StatusActive,
		Grade:    "5º Ano",
		Shift:    core.ShiftMorning,
		ClassID:  classID,
	}
}

func NewClass(id, name string, maxStudents int) class.Class {
	return class.Class{
		ID:          id,
		Name:        name,
		Shift:       core.ShiftMorning,
		Weekdays:    []string{"Segunda", "Quarta"},
		StartTime:   "08:00",
		EndTime:     "12:00",
		Status:      core.StatusActive,
		MaxStudents: maxStudents,
		CreatedAt:   time.Date(2024, time.March, 4, 12, 0, 0, 0, time.UTC),
	}
}

// APIClientStub is a core.APIClient serving canned responses keyed by path.
type APIClientStub struct {
	Responses map[string]interface{}
	Err       error

	mu    sync.Mutex
	Paths []string // requested paths, in order
}

var _ core.APIClient = (*APIClientStub)(nil)

func (c *APIClientStub) GetJSON(_ context.Context, path string, _ map[string]string, out interface{}) error {
	c.mu.Lock()
	c.Paths = append(c.Paths, path)
	c.mu.Unlock()

	if c.Err != nil {
		return c.Err
	}
	resp, ok := c.Responses[path]
	if !ok {
		return nil
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
