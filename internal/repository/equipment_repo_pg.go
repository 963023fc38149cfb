package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avdeevra/equiprent/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EquipmentRepository interface {
	List(ctx context.Context) ([]domain.Equipment, error)
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	Create(ctx context.Context, equipment *domain.Equipment) error
	Update(ctx context.Context, id int64, patch domain.EquipmentPatch) (*domain.Equipment, error)
	Delete(ctx context.Context, id int64) error
}

type PGEquipmentRepository struct {
	db *pgxpool.Pool
}

func NewEquipmentRepository(db *pgxpool.Pool) EquipmentRepository {
	return &PGEquipmentRepository{db: db}
}

const equipmentColumns = `id, name, category, description, image_url, price_per_hour, available, created_at, updated_at`

func (r *PGEquipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	rows, err := r.db.Query(ctx, `SELECT `+equipmentColumns+` FROM equipment ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	equipment := make([]domain.Equipment, 0)
	for rows.Next() {
		var e domain.Equipment
		if err := rows.Scan(&e.ID, &e.Name, &e.Category, &e.Description, &e.ImageURL, &e.PricePerHour, &e.Available, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		equipment = append(equipment, e)
	}
	return equipment, rows.Err()
}

func (r *PGEquipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	row := r.db.QueryRow(ctx, `SELECT `+equipmentColumns+` FROM equipment WHERE id=$1`, id)
	var e domain.Equipment
	if err := row.Scan(&e.ID, &e.Name, &e.Category, &e.Description, &e.ImageURL, &e.PricePerHour, &e.Available, &e.CreatedAt, &e.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEquipmentNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *PGEquipmentRepository) Create(ctx context.Context, equipment *domain.Equipment) error {
	return r.db.QueryRow(ctx, `INSERT INTO equipment (name, category, description, image_url, price_per_hour, available)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		equipment.Name, equipment.Category, equipment.Description, equipment.ImageURL, equipment.PricePerHour, equipment.Available).
		Scan(&equipment.ID, &equipment.CreatedAt, &equipment.UpdatedAt)
}

// Update applies only the fields set on the patch. Nil means "leave as is",
// so an explicit zero value (empty string, false, 0) does overwrite.
func (r *PGEquipmentRepository) Update(ctx context.Context, id int64, patch domain.EquipmentPatch) (*domain.Equipment, error) {
	set := make([]string, 0, 7)
	args := make([]any, 0, 8)

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s=$%d", column, len(args)))
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.ImageURL != nil {
		add("image_url", *patch.ImageURL)
	}
	if patch.PricePerHour != nil {
		add("price_per_hour", *patch.PricePerHour)
	}
	if patch.Available != nil {
		add("available", *patch.Available)
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}
	set = append(set, "updated_at=now()")

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE equipment SET %s WHERE id=$%d RETURNING `+equipmentColumns, strings.Join(set, ", "), len(args))

	var e domain.Equipment
	if err := r.db.QueryRow(ctx, query, args...).
		Scan(&e.ID, &e.Name, &e.Category, &e.Description, &e.ImageURL, &e.PricePerHour, &e.Available, &e.CreatedAt, &e.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEquipmentNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *PGEquipmentRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM equipment WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrEquipmentNotFound
	}
	return nil
}

var _ EquipmentRepository = (*PGEquipmentRepository)(nil)
