// Package db owns schema migration. Cascading deletes are a storage
// concern: the foreign keys created here carry ON DELETE CASCADE, so
// deleting a company removes its employees, projects, tasks and time
// entries without application code.
package db

import (
	"gorm.io/gorm"

	"github.com/luvremak/db-coursework/internal/model"
)

func Migrate(gdb *gorm.DB) error {
	models := []interface{}{
		&model.Company{},
		&model.Project{},
		&model.Employee{},
		&model.Task{},
		&model.TimeTrackingEntry{},
	}

	migrator := gdb.Migrator()

	for _, m := range models {
		if !migrator.HasTable(m) {
			if err := gdb.AutoMigrate(m); err != nil {
				return err
			}
		}
	}

	return nil
}
