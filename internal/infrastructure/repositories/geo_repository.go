package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/drax210310/jugueteria-backend/domain"
)

// DBMunicipality represents the database model for Municipality
type DBMunicipality struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:128;not null"`
}

func (DBMunicipality) TableName() string { return "municipalities" }

// DBDepartment represents the database model for Department
type DBDepartment struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"index;size:128;not null"`
	MunicipalityID uint   `gorm:"index"`
}

func (DBDepartment) TableName() string { return "departments" }

// GeoRepositoryImpl implements domain.GeoRepository using GORM.
type GeoRepositoryImpl struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewGeoRepository creates a new geographic reference repository.
func NewGeoRepository(db *gorm.DB, timeout time.Duration) domain.GeoRepository {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &GeoRepositoryImpl{db: db, timeout: timeout}
}

// ListMunicipalities implements domain.GeoRepository, ordered by name.
func (r *GeoRepositoryImpl) ListMunicipalities(ctx context.Context) ([]domain.Municipality, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var rows []DBMunicipality
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, storageErr("list municipalities", err)
	}

	municipalities := make([]domain.Municipality, 0, len(rows))
	for _, row := range rows {
		municipalities = append(municipalities, domain.Municipality{ID: row.ID, Name: row.Name})
	}
	return municipalities, nil
}

// ListDepartments implements domain.GeoRepository, joined with the
// municipality name, ordered by department name.
func (r *GeoRepositoryImpl) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var rows []departmentRow
	err := r.db.WithContext(ctx).
		Table("departments").
		Select("departments.*, municipalities.name AS municipality_name").
		Joins("LEFT JOIN municipalities ON municipalities.id = departments.municipality_id").
		Order("departments.name").
		Find(&rows).Error
	if err != nil {
		return nil, storageErr("list departments", err)
	}

	departments := make([]domain.Department, 0, len(rows))
	for _, row := range rows {
		departments = append(departments, domain.Department{
			ID:               row.ID,
			Name:             row.Name,
			MunicipalityID:   row.MunicipalityID,
			MunicipalityName: row.MunicipalityName,
		})
	}
	return departments, nil
}

// departmentRow is the scan target for the department/municipality join.
type departmentRow struct {
	DBDepartment
	MunicipalityName string
}
