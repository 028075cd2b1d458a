package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authDTO "hadirku_backend/internals/features/users/auth/dto"
	authService "hadirku_backend/internals/features/users/auth/service"
	educationalModel "hadirku_backend/internals/features/lembaga/educationals/model"
	organizationModel "hadirku_backend/internals/features/lembaga/organizations/model"
	userDTO "hadirku_backend/internals/features/users/user/dto"
	userModel "hadirku_backend/internals/features/users/user/model"
	helper "hadirku_backend/internals/helpers"
)

// MemberController mengelola akun anggota tenant (employee/student).
type MemberController struct {
	DB *gorm.DB
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db}
}

func (ctrl *MemberController) usernameTaken(c *fiber.Ctx, username string) (bool, error) {
	var n int64
	if err := ctrl.DB.WithContext(c.UserContext()).Model(&userModel.UserModel{}).
		Where("user_name = ?", username).Count(&n).Error; err != nil {
		return false, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa username")
	}
	return n > 0, nil
}

// POST /api/auth/organization/createemployee
func (ctrl *MemberController) CreateEmployee(c *fiber.Ctx) error {
	var req authDTO.CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil || req.CurrentOrganization == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing Fields")
	}

	var organization organizationModel.OrganizationModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&organization, "name = ?", req.CurrentOrganization).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Organization Not Found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil organisasi")
	}

	if taken, err := ctrl.usernameTaken(c, req.Username); err != nil {
		return err
	} else if taken {
		return fiber.NewError(fiber.StatusConflict, "Username Taken")
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal hash password")
	}

	employee := userModel.UserModel{
		Name:           req.Name,
		UserName:       req.Username,
		Email:          &req.Email,
		Phone:          &req.PhoneNumber,
		HashedPassword: hashed,
		Role:           userModel.RoleEmployee,
		OrganizationID: &organization.ID,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&employee).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Username Taken")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat employee")
	}

	return helper.JsonCreated(c, "Employee Created", fiber.Map{
		"user": userDTO.FromUserModel(employee),
	})
}

// POST /api/auth/educational/createstudent
func (ctrl *MemberController) CreateStudent(c *fiber.Ctx) error {
	var req authDTO.CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil || req.CurrentEducational == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing Fields")
	}

	var educational educationalModel.EducationalModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&educational, "name = ?", req.CurrentEducational).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Educational Not Found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil institusi")
	}

	if taken, err := ctrl.usernameTaken(c, req.Username); err != nil {
		return err
	} else if taken {
		return fiber.NewError(fiber.StatusConflict, "Username Taken")
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal hash password")
	}

	student := userModel.UserModel{
		Name:           req.Name,
		UserName:       req.Username,
		Email:          &req.Email,
		Phone:          &req.PhoneNumber,
		HashedPassword: hashed,
		Role:           userModel.RoleStudent,
		EducationalID:  &educational.ID,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&student).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Username Taken")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat student")
	}

	return helper.JsonCreated(c, "Student Created", fiber.Map{
		"user": userDTO.FromUserModel(student),
	})
}

// POST /api/auth/organization/updateemployee
// Identitas lama via old_username (konvensi klien: username@organisasi).
func (ctrl *MemberController) UpdateEmployee(c *fiber.Ctx) error {
	var req authDTO.UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing Fields")
	}

	var organization organizationModel.OrganizationModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&organization, "name = ?", req.CurrentOrganization).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Organization Not Found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil organisasi")
	}

	var employee userModel.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&employee, "user_name = ?", req.OldUsername).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Employee Not Found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil employee")
	}

	if req.Username != req.OldUsername {
		if taken, err := ctrl.usernameTaken(c, req.Username); err != nil {
			return err
		} else if taken {
			return fiber.NewError(fiber.StatusConflict, "Username Taken")
		}
	}

	employee.Name = req.Name
	employee.UserName = req.Username
	employee.Email = &req.Email
	employee.Phone = &req.PhoneNumber
	if req.Password != "" {
		hashed, err := authService.HashPassword(req.Password)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal hash password")
		}
		employee.HashedPassword = hashed
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&employee).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Username Taken")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengubah employee")
	}

	return helper.JsonUpdated(c, "Employee Updated", fiber.Map{
		"user": userDTO.FromUserModel(employee),
	})
}

// POST /api/auth/user/delete
func (ctrl *MemberController) DeleteUser(c *fiber.Ctx) error {
	var req authDTO.DeleteUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing Fields")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&userModel.UserModel{}, "id = ?", req.UserID)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus user")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "User Not Found")
	}

	return helper.JsonDeleted(c, "User Deleted", nil)
}
