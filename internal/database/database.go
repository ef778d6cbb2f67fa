package database

import (
	"sync"

	"github.com/sirupsen/logrus"
	"pbxscope.dev/analyzer/internal/database/delegate"
	"pbxscope.dev/analyzer/pkg/eventemitter"
)

// Database owns the storage backend lifecycle.
type Database struct {
	databasePath string
	delegate     delegate.DatabaseDelegate

	// Event emitters
	BootedEventEmitter *eventemitter.EventEmitter[bool]
}

func NewDatabase(databasePath string, databaseDelegate delegate.DatabaseDelegate) (instance *Database) {
	instance = &Database{
		databasePath:       databasePath,
		delegate:           databaseDelegate,
		BootedEventEmitter: &eventemitter.EventEmitter[bool]{},
	}
	return
}

func (d *Database) Initialize(waitGroup *sync.WaitGroup) {
	var err error
	// Create or update the database if needed
	logrus.Info("Connecting to database ", d.databasePath)
	if err = d.delegate.Open(d.databasePath); err != nil {
		panic(err)
	}
	logrus.Info("Applying database migrations")
	if err = d.delegate.Migrate(); err != nil {
		panic(err)
	}
	d.BootedEventEmitter.Emit(true)

	// End the routine
	waitGroup.Done()
}

func (d *Database) Deinitialize() {
	if err := d.delegate.Close(); err != nil {
		logrus.Error(err)
	}
}

// Reopen moves the engine to another database file. The old
// connection is closed before the new one is opened and migrated.
func (d *Database) Reopen(databasePath string) (err error) {
	if err = d.delegate.Close(); err != nil {
		return
	}
	d.databasePath = databasePath
	if err = d.delegate.Open(databasePath); err != nil {
		return
	}
	return d.delegate.Migrate()
}

func (d *Database) Path() string {
	return d.databasePath
}

func (d *Database) Delegate() delegate.DatabaseDelegate {
	return d.delegate
}
