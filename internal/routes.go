package internal

import (
	"net/http"
	"portfolio/internal/controllers"
	"portfolio/internal/providers"
	"portfolio/internal/services"
)

func InitRoutes(
	apiController *controllers.ApiController,
	adminController *controllers.AdminController,
	authController *controllers.AuthController,
	contactController *controllers.ContactController,
	auth services.AuthServiceInterface,
	logger providers.Logger,
) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()
	admin := func(h http.HandlerFunc) http.Handler {
		return providers.RequireAdmin(auth, logger, h)
	}

	routers.Get("/api/content", http.HandlerFunc(apiController.GetContent))
	routers.Get("/api/projects", http.HandlerFunc(apiController.GetProjects))
	routers.Get("/api/projects/{id}", http.HandlerFunc(apiController.GetProject))
	routers.Get("/api/skills", http.HandlerFunc(apiController.GetSkills))
	routers.Get("/api/skills/{id}", http.HandlerFunc(apiController.GetSkill))
	routers.Get("/api/experiences", http.HandlerFunc(apiController.GetExperiences))
	routers.Get("/api/experiences/{id}", http.HandlerFunc(apiController.GetExperience))
	routers.Get("/api/education", http.HandlerFunc(apiController.GetEducation))
	routers.Get("/api/education/{id}", http.HandlerFunc(apiController.GetEducationEntry))
	routers.Get("/api/about", http.HandlerFunc(apiController.GetAbout))
	routers.Post("/api/contact", http.HandlerFunc(contactController.Send))

	routers.Post("/api/auth/login", http.HandlerFunc(authController.Login))
	routers.Post("/api/auth/logout", admin(authController.Logout))
	routers.Get("/api/auth/me", admin(authController.Me))

	routers.Post("/api/admin/projects", admin(adminController.CreateProject))
	routers.Put("/api/admin/projects/{id}", admin(adminController.UpdateProject))
	routers.Delete("/api/admin/projects/{id}", admin(adminController.DeleteProject))
	routers.Post("/api/admin/skills", admin(adminController.CreateSkill))
	routers.Put("/api/admin/skills/{id}", admin(adminController.UpdateSkill))
	routers.Delete("/api/admin/skills/{id}", admin(adminController.DeleteSkill))
	routers.Post("/api/admin/experiences", admin(adminController.CreateExperience))
	routers.Put("/api/admin/experiences/{id}", admin(adminController.UpdateExperience))
	routers.Delete("/api/admin/experiences/{id}", admin(adminController.DeleteExperience))
	routers.Post("/api/admin/education", admin(adminController.CreateEducation))
	routers.Put("/api/admin/education/{id}", admin(adminController.UpdateEducation))
	routers.Delete("/api/admin/education/{id}", admin(adminController.DeleteEducation))
	routers.Put("/api/admin/about", admin(adminController.UpdateAbout))
	routers.Post("/api/admin/about/reset", admin(adminController.ResetAbout))
	routers.Get("/api/admin/export", admin(adminController.Export))
	routers.Post("/api/admin/import", admin(adminController.Import))
	routers.Post("/api/admin/reset", admin(adminController.Reset))
	return routers
}
