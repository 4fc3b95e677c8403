package record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// storedRecord is the row shape of a persisted record. The serialized
// value never contains the identifier or the tag attributes.
type storedRecord struct {
	ID        string `gorm:"primaryKey;size:36"`
	Type      string `gorm:"size:64;index;not null"`
	State     string `gorm:"size:32"`
	Value     []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (storedRecord) TableName() string { return "records" }

// storedTag is one indexed tag attribute of a record.
type storedTag struct {
	RecordID string `gorm:"primaryKey;size:36"`
	Name     string `gorm:"primaryKey;size:64"`
	Value    string `gorm:"size:255;index"`
}

func (storedTag) TableName() string { return "record_tags" }

// Store is the generic record store backing all record types.
type Store struct {
	db *gorm.DB
}

// Open connects to the record store database. Supported drivers are
// "postgres" and "sqlite".
func Open(driver, dsn string) (*Store, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}
	return New(db), nil
}

// New wraps an existing database handle.
func New(db *gorm.DB) *Store { return &Store{db: db} }

// DB exposes the underlying handle, used for schema migrations.
func (s *Store) DB() *gorm.DB { return s.db }

// Session returns a non-transactional session on the store.
func (s *Store) Session() *Session { return &Session{db: s.db} }

// Transaction runs fn inside a database transaction, rolling back when fn
// returns an error.
func (s *Store) Transaction(ctx context.Context, fn func(*Session) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Session{db: tx})
	})
}

// Session scopes record reads and writes to one unit of work.
type Session struct {
	db *gorm.DB
}

// Save inserts the record on first use, assigning its identifier, and
// afterwards updates the stored value and state. The tag index is
// replaced on every save so it always reflects the current tag values.
func (s *Session) Save(ctx context.Context, rec Record) error {
	value, err := json.Marshal(rec.RecordValue())
	if err != nil {
		return fmt.Errorf("marshal %s value: %w", rec.RecordType(), err)
	}

	db := s.db.WithContext(ctx)
	if rec.RecordID() == "" {
		rec.SetRecordID(uuid.NewString())
		row := storedRecord{
			ID:    rec.RecordID(),
			Type:  rec.RecordType(),
			State: rec.RecordState(),
			Value: value,
		}
		if err := db.Create(&row).Error; err != nil {
			return fmt.Errorf("create %s record: %w", rec.RecordType(), err)
		}
	} else {
		res := db.Model(&storedRecord{}).
			Where("id = ? AND type = ?", rec.RecordID(), rec.RecordType()).
			Updates(map[string]any{"state": rec.RecordState(), "value": value})
		if res.Error != nil {
			return fmt.Errorf("update %s record: %w", rec.RecordType(), res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("update %s record %s: %w", rec.RecordType(), rec.RecordID(), ErrNotFound)
		}
	}

	if err := db.Where("record_id = ?", rec.RecordID()).Delete(&storedTag{}).Error; err != nil {
		return fmt.Errorf("clear %s tags: %w", rec.RecordType(), err)
	}
	for name, v := range rec.RecordTags() {
		tag := storedTag{RecordID: rec.RecordID(), Name: name, Value: v}
		if err := db.Create(&tag).Error; err != nil {
			return fmt.Errorf("index %s tag %s: %w", rec.RecordType(), name, err)
		}
	}
	return nil
}

// Get loads a record of T's type by its store-assigned identifier.
func Get[T any, PT interface {
	*T
	Record
}](ctx context.Context, s *Session, id string) (PT, error) {
	rec := PT(new(T))

	var row storedRecord
	err := s.db.WithContext(ctx).
		Where("id = ? AND type = ?", id, rec.RecordType()).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s %s: %w", rec.RecordType(), id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s record %s: %w", rec.RecordType(), id, err)
	}

	if err := decode(&row, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Query returns the records of T's type matching every tag in filter,
// oldest first. An empty filter returns all records of the type.
func Query[T any, PT interface {
	*T
	Record
}](ctx context.Context, s *Session, filter Tags) ([]PT, error) {
	probe := PT(new(T))

	q := s.db.WithContext(ctx).Model(&storedRecord{}).
		Select("records.*").
		Where("records.type = ?", probe.RecordType())
	i := 0
	for name, value := range filter {
		alias := fmt.Sprintf("t%d", i)
		join := fmt.Sprintf(
			"JOIN record_tags %s ON %s.record_id = records.id AND %s.name = ? AND %s.value = ?",
			alias, alias, alias, alias)
		q = q.Joins(join, name, value)
		i++
	}

	var rows []storedRecord
	if err := q.Order("records.created_at").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query %s records: %w", probe.RecordType(), err)
	}

	out := make([]PT, 0, len(rows))
	for i := range rows {
		rec := PT(new(T))
		if err := decode(&rows[i], rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// FindOne runs Query and enforces the at-most-one contract: zero matches
// is ErrNotFound, more than one is ErrDuplicate.
func FindOne[T any, PT interface {
	*T
	Record
}](ctx context.Context, s *Session, filter Tags) (PT, error) {
	matches, err := Query[T, PT](ctx, s, filter)
	if err != nil {
		return nil, err
	}

	probe := PT(new(T))
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no %s matches %v: %w", probe.RecordType(), filter, ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("more than one %s matches %v: %w", probe.RecordType(), filter, ErrDuplicate)
	}
}

func decode(row *storedRecord, rec Record) error {
	if len(row.Value) > 0 {
		if err := json.Unmarshal(row.Value, rec); err != nil {
			return fmt.Errorf("decode %s record %s: %w", row.Type, row.ID, err)
		}
	}
	rec.SetRecordID(row.ID)
	rec.SetRecordState(row.State)
	return nil
}
