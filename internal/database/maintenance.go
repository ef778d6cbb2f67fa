package database

import "pbxscope.dev/analyzer/internal/database/delegate"

func (d *Database) TableCounts() ([]delegate.TableCount, error) {
	return d.delegate.TableCounts()
}

// HasData reports whether at least one log entry has been stored.
func (d *Database) HasData() (bool, error) {
	counts, err := d.delegate.TableCounts()
	if err != nil {
		return false, err
	}
	for _, count := range counts {
		if count.Count > 0 {
			return true, nil
		}
	}
	return false, nil
}

func (d *Database) ClearAll() error {
	return d.delegate.ClearAll()
}

func (d *Database) Vacuum() error {
	return d.delegate.Vacuum()
}
