package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "hadirku_backend/internals/features/lembaga/educationals/dto"
	model "hadirku_backend/internals/features/lembaga/educationals/model"
	userDTO "hadirku_backend/internals/features/users/user/dto"
	userModel "hadirku_backend/internals/features/users/user/model"
	helper "hadirku_backend/internals/helpers"
)

type EducationalController struct {
	DB *gorm.DB
}

func NewEducationalController(db *gorm.DB) *EducationalController {
	return &EducationalController{DB: db}
}

func (ctrl *EducationalController) findByName(c *fiber.Ctx, name string) (*model.EducationalModel, error) {
	var educational model.EducationalModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Coordinate").
		First(&educational, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Educational Not Found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil institusi")
	}
	return &educational, nil
}

// GET /api/lembaga/educationals/:name
func (ctrl *EducationalController) GetByName(c *fiber.Ctx) error {
	educational, err := ctrl.findByName(c, c.Params("name"))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Educational Found", fiber.Map{
		"educational": dto.FromEducationalModel(*educational),
	})
}

// GET /api/lembaga/educationals/:name/students?page=&per_page=
func (ctrl *EducationalController) ListStudents(c *fiber.Ctx) error {
	educational, err := ctrl.findByName(c, c.Params("name"))
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)
	q := ctrl.DB.WithContext(c.UserContext()).Model(&userModel.UserModel{}).
		Where("educational_id = ? AND role = ?", educational.ID, userModel.RoleStudent)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung student")
	}

	var students []userModel.UserModel
	if err := q.Order("name ASC").Offset(p.Offset).Limit(p.Limit).Find(&students).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil student")
	}

	return helper.JsonList(c, "Students Found",
		userDTO.FromUserModels(students),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage),
	)
}
