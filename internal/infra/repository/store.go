package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/logger"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
)

// Store hands out the gorm repositories over one connection pool.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Appointments() *AppointmentGormRepository { return NewAppointmentGormRepository(s.db) }
func (s *Store) Catalog() *CatalogGormRepository           { return NewCatalogGormRepository(s.db) }
func (s *Store) Vehicles() *VehicleGormRepository          { return NewVehicleGormRepository(s.db) }
func (s *Store) Customers() *CustomerGormRepository        { return NewCustomerGormRepository(s.db) }
func (s *Store) Reports() *ReportGormRepository            { return NewReportGormRepository(s.db) }
func (s *Store) History() *HistoryGormRepository           { return NewHistoryGormRepository(s.db) }

// Seed creates the operator and the starting catalog when they are missing.
func (s *Store) Seed(operator models.Customer, offers []models.ServiceOffer) error {
	log := logger.WithService("seed")

	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Customer
		err := tx.Where("role = ?", models.RoleOperator).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if operator.ID == uuid.Nil {
				operator.ID = uuid.New()
			}
			operator.Role = models.RoleOperator
			if err := tx.Create(&operator).Error; err != nil {
				return err
			}
			log.Info("operator created", "customer_id", operator.ID)
		case err != nil:
			return err
		}

		for _, o := range offers {
			var n int64
			if err := tx.Model(&models.ServiceOffer{}).
				Where("name = ?", o.Name).
				Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				continue
			}
			if o.ID == uuid.Nil {
				o.ID = uuid.New()
			}
			if err := tx.Create(&o).Error; err != nil {
				return err
			}
			log.Info("service offer seeded", "name", o.Name)
		}
		return nil
	})
}
