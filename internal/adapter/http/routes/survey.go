package routes

import (
	"net/http"

	"pesquisa_pbr/internal/adapter/http/handlers"
	"pesquisa_pbr/internal/adapter/http/middleware"
	"pesquisa_pbr/internal/domain/entities"
	"pesquisa_pbr/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth      = "/auth"
	PathProjects  = "/projects"
	PathUsers     = "/users"
	PathField     = "/field"
	PathDashboard = "/dashboard"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

// addSurveyRoutes wires the role-gated API surface. Gates mirror the
// frontend's sidebar: managers run projects, coordinators follow the field,
// researchers collect, administrators manage users.
func addSurveyRoutes(
	rg *gin.RouterGroup,
	authUseCase usecase.IAuthUseCase,
	authHandler *handlers.AuthHandler,
	projectHandler *handlers.ProjectHandler,
	userHandler *handlers.UserHandler,
	fieldHandler *handlers.FieldHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", middleware.RequireAuth(authUseCase), authHandler.Me)
	}

	requireAuth := middleware.RequireAuth(authUseCase)

	projects := rg.Group(PathProjects, requireAuth)
	{
		manage := middleware.RequireRole(entities.RoleGerentePesquisa, entities.RoleAdministradorSistema)
		projects.GET("", manage, projectHandler.ListProjects)
		projects.POST("", manage, projectHandler.CreateProject)
		projects.GET("/:project_id", manage, projectHandler.GetProject)
		projects.PUT("/:project_id", manage, projectHandler.UpdateProject)
		projects.DELETE("/:project_id", manage, projectHandler.DeleteProject)
		projects.PATCH("/:project_id/status", manage, projectHandler.UpdateProjectStatus)

		// Coordinators may read collected responses but not manage projects.
		projects.GET("/:project_id/responses",
			middleware.RequireRole(entities.RoleGerentePesquisa, entities.RoleCoordenadorCampo, entities.RoleAdministradorSistema),
			projectHandler.ListProjectResponses)
	}

	users := rg.Group(PathUsers, requireAuth, middleware.RequireRole(entities.RoleAdministradorSistema))
	{
		users.GET("", userHandler.ListUsers)
		users.POST("", userHandler.CreateUser)
		users.GET("/:user_id", userHandler.GetUser)
		users.PUT("/:user_id", userHandler.UpdateUser)
		users.DELETE("/:user_id", userHandler.DeleteUser)
		users.PATCH("/:user_id/role", userHandler.UpdateUserRole)
	}

	field := rg.Group(PathField, requireAuth,
		middleware.RequireRole(entities.RolePesquisadorCampo, entities.RoleCoordenadorCampo))
	{
		field.GET("/areas", fieldHandler.ListAssignments)
		field.GET("/areas/:area_id", fieldHandler.GetArea)
		field.POST("/sessions", fieldHandler.StartSession)
		field.GET("/sessions/:session_id", fieldHandler.GetSession)
		field.PUT("/sessions/:session_id/answers", fieldHandler.SetAnswer)
		field.PUT("/sessions/:session_id/toggles", fieldHandler.ToggleOption)
		field.POST("/sessions/:session_id/submit", fieldHandler.SubmitSession)
		field.DELETE("/sessions/:session_id", fieldHandler.CancelSession)
		field.POST("/sync", fieldHandler.Sync)
	}

	dashboard := rg.Group(PathDashboard, requireAuth,
		middleware.RequireRole(entities.RoleGerentePesquisa, entities.RoleCoordenadorCampo, entities.RoleAdministradorSistema))
	{
		dashboard.GET("/summary", dashboardHandler.GetSummary)
	}
}
