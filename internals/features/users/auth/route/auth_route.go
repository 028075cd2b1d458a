package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "hadirku_backend/internals/features/users/auth/controller"
)

// AuthRoutes memasang endpoint registrasi & manajemen akun di bawah /api/auth
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	registerCtrl := controller.NewRegisterController(db)
	memberCtrl := controller.NewMemberController(db)

	auth := api.Group("/auth")
	auth.Post("/register", registerCtrl.Register)
	auth.Post("/user/delete", memberCtrl.DeleteUser)

	organization := auth.Group("/organization")
	organization.Post("/createemployee", memberCtrl.CreateEmployee)
	organization.Post("/updateemployee", memberCtrl.UpdateEmployee)

	educational := auth.Group("/educational")
	educational.Post("/createstudent", memberCtrl.CreateStudent)
}
