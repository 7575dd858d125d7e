package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/TallerHub/taller-quotes-api/internal/domain/client"
	"github.com/TallerHub/taller-quotes-api/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *ClientGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Preload("Vehicles", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientGormRepository) CreateClient(
	ctx context.Context,
	c *models.Client,
) error {
	return r.db.WithContext(ctx).Omit("Vehicles").Create(c).Error
}

func (r *ClientGormRepository) UpdateClient(
	ctx context.Context,
	c *models.Client,
) error {
	return r.db.WithContext(ctx).Omit("Vehicles").Save(c).Error
}

// DeleteClient cascades to the client's vehicles inside one transaction so
// readers can never observe the client gone with its vehicles orphaned.
func (r *ClientGormRepository) DeleteClient(
	ctx context.Context,
	id uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("client_id = ?", id).
			Delete(&models.Vehicle{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Client{}, id).Error
	})
}

func (r *ClientGormRepository) ListClients(
	ctx context.Context,
	query string,
) ([]models.Client, error) {

	q := r.db.WithContext(ctx).
		Preload("Vehicles", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		})

	if query != "" {
		like := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("name ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// --------------------------------------------------
// Vehicle
// --------------------------------------------------

func (r *ClientGormRepository) ListVehicles(
	ctx context.Context,
	clientID uint,
) ([]models.Vehicle, error) {

	var vehicles []models.Vehicle
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at ASC, id ASC").
		Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *ClientGormRepository) CreateVehicle(
	ctx context.Context,
	v *models.Vehicle,
) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *ClientGormRepository) UpdateVehicle(
	ctx context.Context,
	v *models.Vehicle,
) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *ClientGormRepository) DeleteVehicle(
	ctx context.Context,
	id string,
) error {
	// Idempotent: gorm reports no error for zero affected rows.
	return r.db.WithContext(ctx).
		Delete(&models.Vehicle{}, "id = ?", id).Error
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *ClientGormRepository) InTransaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ClientGormRepository{db: tx})
	})
}
