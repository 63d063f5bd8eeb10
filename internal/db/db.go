package db

import (
	"fmt"

	"gifttrack/internal/gift"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&gift.Person{},
		&gift.Gift{},
	); err != nil {
		return err
	}

	// Board queries group gifts by owner; list defaults to newest first.
	stmts := []string{
		`create index if not exists idx_gifts_person on gifts(person_id);`,
		`create index if not exists idx_gifts_created on gifts(created_at desc);`,
		`create index if not exists idx_gifts_status on gifts(status);`,
		`create index if not exists idx_people_name on people(name);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
