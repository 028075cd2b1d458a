package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authDTO "hadirku_backend/internals/features/users/auth/dto"
	authService "hadirku_backend/internals/features/users/auth/service"
	coordinateModel "hadirku_backend/internals/features/lembaga/coordinates/model"
	educationalModel "hadirku_backend/internals/features/lembaga/educationals/model"
	organizationModel "hadirku_backend/internals/features/lembaga/organizations/model"
	userDTO "hadirku_backend/internals/features/users/user/dto"
	userModel "hadirku_backend/internals/features/users/user/model"
	helper "hadirku_backend/internals/helpers"
)

type RegisterController struct {
	DB *gorm.DB
}

func NewRegisterController(db *gorm.DB) *RegisterController {
	return &RegisterController{DB: db}
}

// POST /api/auth/register
// Registrasi tenant: buat Coordinate (geofence) → tenant → akun pemilik.
func (ctrl *RegisterController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing Fields")
	}

	switch req.Type {
	case userModel.RoleOrganization, userModel.RoleEducational:
		// lanjut
	default:
		return fiber.NewError(fiber.StatusBadRequest, "Type Must Be O or E")
	}

	// username harus unik lintas tenant
	var sameUsername int64
	if err := ctrl.DB.WithContext(c.UserContext()).Model(&userModel.UserModel{}).
		Where("user_name = ?", req.Username).Count(&sameUsername).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa username")
	}
	if sameUsername > 0 {
		return fiber.NewError(fiber.StatusConflict, "Username Taken")
	}

	coordinate := coordinateModel.CoordinateModel{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Radius:    *req.Radius,
	}

	user := userModel.UserModel{
		Name:     req.Name,
		UserName: req.Username,
		Role:     req.Type,
	}

	if req.Type == userModel.RoleOrganization {
		var existing organizationModel.OrganizationModel
		err := ctrl.DB.WithContext(c.UserContext()).
			First(&existing, "name = ?", req.Name).Error
		if err == nil {
			return fiber.NewError(fiber.StatusConflict, "Organization Taken")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa organisasi")
		}

		if err := ctrl.DB.WithContext(c.UserContext()).Create(&coordinate).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat coordinate")
		}
		organization := organizationModel.OrganizationModel{
			Name:         req.Name,
			CoordinateID: coordinate.ID,
		}
		if err := ctrl.DB.WithContext(c.UserContext()).Create(&organization).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Organization Taken")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat organisasi")
		}
		user.OrganizationID = &organization.ID
	} else {
		var existing educationalModel.EducationalModel
		err := ctrl.DB.WithContext(c.UserContext()).
			First(&existing, "name = ?", req.Name).Error
		if err == nil {
			return fiber.NewError(fiber.StatusConflict, "Educational Taken")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa institusi")
		}

		if err := ctrl.DB.WithContext(c.UserContext()).Create(&coordinate).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat coordinate")
		}
		educational := educationalModel.EducationalModel{
			Name:         req.Name,
			CoordinateID: coordinate.ID,
		}
		if err := ctrl.DB.WithContext(c.UserContext()).Create(&educational).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Educational Taken")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat institusi")
		}
		user.EducationalID = &educational.ID
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal hash password")
	}
	user.HashedPassword = hashed

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Username Taken")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.JsonCreated(c, "User Created", fiber.Map{
		"user": userDTO.FromUserModel(user),
	})
}
