package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/model"
	"github.com/quizdeck/quizdeck/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// StudentService is the roster admin surface. The attempt flow never writes
// students; it only reads them through lookups here.
type StudentService interface {
	CreateStudent(req dto.StudentCreateDTO) (*dto.StudentDTO, error)
	ListStudents() ([]dto.StudentDTO, error)
	GetStudentByPRN(prn string) (*dto.StudentDTO, error)
}

type studentService struct {
	studentRepo repository.StudentRepository
}

func NewStudentService(studentRepo repository.StudentRepository) StudentService {
	return &studentService{studentRepo: studentRepo}
}

func (s *studentService) CreateStudent(req dto.StudentCreateDTO) (*dto.StudentDTO, error) {
	student := model.Student{
		Name:     req.Name,
		PRN:      req.PRN,
		Year:     req.Year,
		Branch:   req.Branch,
		Category: req.Category,
	}
	if err := s.studentRepo.Create(&student); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("a student with PRN %s already exists in category %q", req.PRN, req.Category)
		}
		log.Error().Err(err).Str("prn", req.PRN).Msg("CreateStudent: database error")
		return nil, fmt.Errorf("database error creating student: %w", err)
	}

	var resp dto.StudentDTO
	copier.Copy(&resp, &student)
	return &resp, nil
}

func (s *studentService) ListStudents() ([]dto.StudentDTO, error) {
	students, err := s.studentRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("error fetching students: %w", err)
	}

	dtos := make([]dto.StudentDTO, 0, len(students))
	for _, st := range students {
		var d dto.StudentDTO
		copier.Copy(&d, &st)
		dtos = append(dtos, d)
	}
	return dtos, nil
}

func (s *studentService) GetStudentByPRN(prn string) (*dto.StudentDTO, error) {
	student, err := s.studentRepo.FindByPRN(prn)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("error looking up student %s: %w", prn, err)
	}

	var resp dto.StudentDTO
	copier.Copy(&resp, student)
	return &resp, nil
}
