package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "hadirku_backend/internals/features/lembaga/organizations/dto"
	model "hadirku_backend/internals/features/lembaga/organizations/model"
	userDTO "hadirku_backend/internals/features/users/user/dto"
	userModel "hadirku_backend/internals/features/users/user/model"
	helper "hadirku_backend/internals/helpers"
)

type OrganizationController struct {
	DB *gorm.DB
}

func NewOrganizationController(db *gorm.DB) *OrganizationController {
	return &OrganizationController{DB: db}
}

func (ctrl *OrganizationController) findByName(c *fiber.Ctx, name string) (*model.OrganizationModel, error) {
	var organization model.OrganizationModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Coordinate").
		First(&organization, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Organization Not Found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil organisasi")
	}
	return &organization, nil
}

// GET /api/lembaga/organizations/:name
func (ctrl *OrganizationController) GetByName(c *fiber.Ctx) error {
	organization, err := ctrl.findByName(c, c.Params("name"))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Organization Found", fiber.Map{
		"organization": dto.FromOrganizationModel(*organization),
	})
}

// GET /api/lembaga/organizations/:name/employees?page=&per_page=
func (ctrl *OrganizationController) ListEmployees(c *fiber.Ctx) error {
	organization, err := ctrl.findByName(c, c.Params("name"))
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)
	q := ctrl.DB.WithContext(c.UserContext()).Model(&userModel.UserModel{}).
		Where("organization_id = ? AND role = ?", organization.ID, userModel.RoleEmployee)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung employee")
	}

	var employees []userModel.UserModel
	if err := q.Order("name ASC").Offset(p.Offset).Limit(p.Limit).Find(&employees).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil employee")
	}

	return helper.JsonList(c, "Employees Found",
		userDTO.FromUserModels(employees),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage),
	)
}
