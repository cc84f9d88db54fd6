package sqlstore

import (
	"fmt"
	"time"

	"fridge-inventory/internal/model"
)

// sqlTime scans timestamps from either driver. pgx hands back time.Time while
// sqlite may return the stored text.
type sqlTime struct {
	time.Time
}

var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
}

func (t *sqlTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		t.Time = time.Time{}
	case time.Time:
		t.Time = v.UTC()
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("sqlstore: cannot scan %T into time", src)
	}
	return nil
}

func (t *sqlTime) parse(s string) error {
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("sqlstore: unrecognised timestamp %q", s)
}

type containerRow struct {
	ID        string  `db:"id"`
	UserID    string  `db:"user_id"`
	Name      string  `db:"name"`
	Kind      string  `db:"kind"`
	CreatedAt sqlTime `db:"created_at"`
}

func (r containerRow) toModel() model.Container {
	return model.Container{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		Kind:      model.ContainerKind(r.Kind),
		CreatedAt: r.CreatedAt.Time,
	}
}

type shelfRow struct {
	ID          string  `db:"id"`
	ContainerID string  `db:"container_id"`
	Name        string  `db:"name"`
	Position    int     `db:"position"`
	CreatedAt   sqlTime `db:"created_at"`
}

func (r shelfRow) toModel() model.Shelf {
	return model.Shelf{
		ID:          r.ID,
		ContainerID: r.ContainerID,
		Name:        r.Name,
		Position:    r.Position,
		CreatedAt:   r.CreatedAt.Time,
	}
}

type itemRow struct {
	ID        string  `db:"id"`
	ShelfID   string  `db:"shelf_id"`
	Name      string  `db:"name"`
	Quantity  int     `db:"quantity"`
	CreatedAt sqlTime `db:"created_at"`
}

func (r itemRow) toModel() model.Item {
	return model.Item{
		ID:        r.ID,
		ShelfID:   r.ShelfID,
		Name:      r.Name,
		Quantity:  r.Quantity,
		CreatedAt: r.CreatedAt.Time,
	}
}

type itemLocationRow struct {
	ID            string  `db:"id"`
	ShelfID       string  `db:"shelf_id"`
	Name          string  `db:"name"`
	Quantity      int     `db:"quantity"`
	CreatedAt     sqlTime `db:"created_at"`
	ShelfName     string  `db:"shelf_name"`
	ShelfPosition int     `db:"shelf_position"`
	ContainerID   string  `db:"container_id"`
	ContainerName string  `db:"container_name"`
}

func (r itemLocationRow) toModel() model.ItemWithLocation {
	return model.ItemWithLocation{
		Item: model.Item{
			ID:        r.ID,
			ShelfID:   r.ShelfID,
			Name:      r.Name,
			Quantity:  r.Quantity,
			CreatedAt: r.CreatedAt.Time,
		},
		ShelfName:     r.ShelfName,
		ShelfPosition: r.ShelfPosition,
		ContainerID:   r.ContainerID,
		ContainerName: r.ContainerName,
	}
}

type shelfLocationRow struct {
	ID                 string  `db:"id"`
	ContainerID        string  `db:"container_id"`
	Name               string  `db:"name"`
	Position           int     `db:"position"`
	CreatedAt          sqlTime `db:"created_at"`
	ContainerUserID    string  `db:"container_user_id"`
	ContainerName      string  `db:"container_name"`
	ContainerKind      string  `db:"container_kind"`
	ContainerCreatedAt sqlTime `db:"container_created_at"`
}

func (r shelfLocationRow) toModel() model.ShelfLocation {
	return model.ShelfLocation{
		Shelf: model.Shelf{
			ID:          r.ID,
			ContainerID: r.ContainerID,
			Name:        r.Name,
			Position:    r.Position,
			CreatedAt:   r.CreatedAt.Time,
		},
		Container: model.Container{
			ID:        r.ContainerID,
			UserID:    r.ContainerUserID,
			Name:      r.ContainerName,
			Kind:      model.ContainerKind(r.ContainerKind),
			CreatedAt: r.ContainerCreatedAt.Time,
		},
	}
}
