package logsvc

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/rapor/core"
)

func TestRollbarLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewRollbarLogger(log.New(&buf, "", 0), &core.Config{Env: "TEST", Debug: true})

	logger.Error("saving grade", errors.New("connection refused"), core.Person{ID: "guru-1"}, map[string]interface{}{"student_id": 101})
	assert.Equal(t, "[ERROR] saving grade\n  connection refused\n  person: guru-1\n  map[student_id:101]\n", buf.String())

	buf.Reset()
	logger.Info("sweeping sheets")
	assert.Equal(t, "[INFO] sweeping sheets\n", buf.String())
}

func TestRollbarLogger_prepare(t *testing.T) {
	logger := RollbarLogger{}
	args := logger.prepare("msg", []interface{}{core.Person{ID: "1"}, "extra", core.Person{ID: "2"}})
	assert.Equal(t, []interface{}{"msg", "extra"}, args)
}
