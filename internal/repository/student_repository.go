package repository

import (
	"github.com/quizdeck/quizdeck/internal/model"
	"gorm.io/gorm"
)

type StudentRepository interface {
	Create(student *model.Student) error
	FindByPRN(prn string) (*model.Student, error)
	FindAll() ([]model.Student, error)
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(student *model.Student) error {
	return r.db.Create(student).Error
}

func (r *studentRepository) FindByPRN(prn string) (*model.Student, error) {
	var student model.Student
	err := r.db.Where("prn = ?", prn).First(&student).Error
	return &student, err
}

func (r *studentRepository) FindAll() ([]model.Student, error) {
	var students []model.Student
	err := r.db.Order("year ASC, name ASC").Find(&students).Error
	return students, err
}
