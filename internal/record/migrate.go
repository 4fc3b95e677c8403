package record

import (
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"
)

// Migration is one versioned schema change applied to the record store.
type Migration struct {
	Version string
	Name    string
	Up      func(*gorm.DB) error
	Down    func(*gorm.DB) error
}

// MigrationRecord tracks an applied migration.
type MigrationRecord struct {
	Version   string    `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	AppliedAt time.Time `gorm:"not null"`
}

// Migrations returns the built-in record store migrations, oldest first.
func Migrations() []*Migration {
	return []*Migration{
		{
			Version: "20240101000001",
			Name:    "create_record_tables",
			Up: func(db *gorm.DB) error {
				return db.AutoMigrate(&storedRecord{}, &storedTag{})
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&storedTag{}, &storedRecord{})
			},
		},
	}
}

// Migrator applies record store schema migrations in version order, each
// inside its own transaction.
type Migrator struct {
	db         *gorm.DB
	migrations []*Migration
}

// NewMigrator creates a Migrator preloaded with the built-in migrations.
func NewMigrator(db *gorm.DB) *Migrator {
	return &Migrator{db: db, migrations: Migrations()}
}

// Register adds a migration to the migrator.
func (m *Migrator) Register(mig *Migration) {
	m.migrations = append(m.migrations, mig)
}

func (m *Migrator) ensureVersionTable() error {
	return m.db.AutoMigrate(&MigrationRecord{})
}

// AppliedVersions returns the set of migration versions already applied.
func (m *Migrator) AppliedVersions() (map[string]bool, error) {
	if err := m.ensureVersionTable(); err != nil {
		return nil, err
	}

	var records []MigrationRecord
	if err := m.db.Find(&records).Error; err != nil {
		return nil, err
	}

	versions := make(map[string]bool)
	for _, record := range records {
		versions[record.Version] = true
	}
	return versions, nil
}

// Up applies all pending migrations.
func (m *Migrator) Up() error {
	applied, err := m.AppliedVersions()
	if err != nil {
		return err
	}

	pending := make([]*Migration, 0, len(m.migrations))
	for _, mig := range m.migrations {
		if !applied[mig.Version] {
			pending = append(pending, mig)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].Version < pending[j].Version
	})

	for _, mig := range pending {
		err := m.db.Transaction(func(tx *gorm.DB) error {
			if err := mig.Up(tx); err != nil {
				return err
			}
			record := MigrationRecord{
				Version:   mig.Version,
				Name:      mig.Name,
				AppliedAt: time.Now(),
			}
			return tx.Create(&record).Error
		})
		if err != nil {
			return fmt.Errorf("apply migration %s (%s): %w", mig.Name, mig.Version, err)
		}
	}
	return nil
}

// Down reverts the most recently applied migration.
func (m *Migrator) Down() error {
	if err := m.ensureVersionTable(); err != nil {
		return err
	}

	var last MigrationRecord
	if err := m.db.Order("applied_at DESC").First(&last).Error; err != nil {
		return fmt.Errorf("no migrations to revert: %w", err)
	}

	var target *Migration
	for _, mig := range m.migrations {
		if mig.Version == last.Version {
			target = mig
			break
		}
	}
	if target == nil {
		return fmt.Errorf("migration for version %s not registered", last.Version)
	}

	return m.db.Transaction(func(tx *gorm.DB) error {
		if err := target.Down(tx); err != nil {
			return fmt.Errorf("revert migration %s: %w", target.Name, err)
		}
		return tx.Delete(&last).Error
	})
}
