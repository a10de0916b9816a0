package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminStudentController struct {
	studentService service.StudentService
}

func NewAdminStudentController(studentService service.StudentService) *AdminStudentController {
	return &AdminStudentController{studentService: studentService}
}

// CreateStudent godoc
// @Summary (Admin) Add a student to the roster
// @Tags Admin - Students
// @Accept json
// @Produce json
// @Param body body dto.StudentCreateDTO true "Student record"
// @Success 201 {object} dto.StudentDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/students [post]
func (c *AdminStudentController) CreateStudent(ctx *gin.Context) {
	var req dto.StudentCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	student, err := c.studentService.CreateStudent(req)
	if err != nil {
		log.Error().Err(err).Str("prn", req.PRN).Msg("Admin CreateStudent: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create student", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, student)
}

// ListStudents godoc
// @Summary (Admin) List the student roster
// @Tags Admin - Students
// @Produce json
// @Success 200 {array} dto.StudentDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/students [get]
func (c *AdminStudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents()
	if err != nil {
		log.Error().Err(err).Msg("Admin ListStudents: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch students"})
		return
	}
	ctx.JSON(http.StatusOK, students)
}
