package database_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"pbxscope.dev/analyzer/internal/database"
	"pbxscope.dev/analyzer/internal/database/mock"
	"pbxscope.dev/analyzer/internal/entity"
)

func baseInitialize(instance *database.Database) {
	defer instance.Deinitialize()
	waitGroup := sync.WaitGroup{}
	waitGroup.Add(1)
	instance.Initialize(&waitGroup)
	waitGroup.Wait()
}

func TestInitializeUnreacheableDatabase(t *testing.T) {
	defer func() {
		errorString := recover().(error).Error()
		assert.Equal(t, "cannot open", errorString)
	}()
	instance := database.NewDatabase("pbx_analysis.db", &mock.MockDelegate{
		FailOpen: true,
		Error:    errors.New("cannot open"),
	})
	baseInitialize(instance)
	t.Fail()
}

func TestInitializeCannotMigrate(t *testing.T) {
	defer func() {
		errorString := recover().(error).Error()
		assert.Equal(t, "cannot migrate", errorString)
	}()
	instance := database.NewDatabase("pbx_analysis.db", &mock.MockDelegate{
		FailMigration: true,
		Error:         errors.New("cannot migrate"),
	})
	baseInitialize(instance)
	t.Fail()
}

func TestInitializeEmitsBooted(t *testing.T) {
	delegate := mock.MockDelegate{}
	instance := database.NewDatabase("pbx_analysis.db", &delegate)
	booted := make(chan bool, 1)
	instance.BootedEventEmitter.Subscribe(func(message bool) { booted <- message })
	baseInitialize(instance)
	assert.True(t, <-booted)
	assert.True(t, delegate.Opened)
	assert.True(t, delegate.Migrated)
	assert.True(t, delegate.Closed)
}

func TestHasData(t *testing.T) {
	delegate := mock.MockDelegate{}
	instance := database.NewDatabase("pbx_analysis.db", &delegate)

	hasData, err := instance.HasData()
	assert.NoError(t, err)
	assert.False(t, hasData)

	delegate.LogEntries = append(delegate.LogEntries, entity.LogEntry{Message: "a line"})
	hasData, err = instance.HasData()
	assert.NoError(t, err)
	assert.True(t, hasData)
}

func TestReopenSwitchesPath(t *testing.T) {
	delegate := mock.MockDelegate{}
	instance := database.NewDatabase("pbx_analysis.db", &delegate)

	assert.NoError(t, instance.Reopen("other.db"))
	assert.Equal(t, "other.db", instance.Path())
	assert.True(t, delegate.Closed)
	assert.True(t, delegate.Opened)
	assert.True(t, delegate.Migrated)
}

func TestMaintenancePassthrough(t *testing.T) {
	delegate := mock.MockDelegate{
		CallRecords: []entity.CallRecord{{SourceNumber: "100"}},
	}
	instance := database.NewDatabase("pbx_analysis.db", &delegate)

	assert.NoError(t, instance.ClearAll())
	assert.True(t, delegate.Cleared)
	assert.Empty(t, delegate.CallRecords)

	assert.NoError(t, instance.Vacuum())
	assert.True(t, delegate.Vacuumed)

	counts, err := instance.TableCounts()
	assert.NoError(t, err)
	assert.Len(t, counts, 5)
}
