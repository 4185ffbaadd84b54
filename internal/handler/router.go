package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-registry-api/internal/middleware"
	"github.com/noah-isme/school-registry-api/internal/models"
)

// Routes groups every handler served by the API.
type Routes struct {
	Students      *StudentHandler
	Teachers      *TeacherHandler
	Lessons       *LessonHandler
	Classes       *ClassHandler
	ClassStudents *ClassStudentHandler
	ClassTeachers *ClassTeacherHandler
	Users         *UserHandler
	Auth          *AuthHandler
	Metrics       *MetricsHandler
	Tokens        middleware.TokenValidator
}

type crudHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// Register mounts probes and metrics on r and the entity API under prefix.
func (rt Routes) Register(r *gin.Engine, prefix string) {
	r.GET("/health", rt.Metrics.Health)
	r.GET("/ready", rt.Metrics.Ready)
	r.GET("/metrics", rt.Metrics.Prometheus)

	api := r.Group(prefix, middleware.OptionalJWT(rt.Tokens))
	authRequired := middleware.JWT(rt.Tokens)

	auth := api.Group("/auth")
	auth.POST("/login", rt.Auth.Login)
	auth.GET("/me", authRequired, rt.Auth.Me)

	students := api.Group("/students")
	students.GET("", rt.Students.List)
	students.GET("/export", rt.Students.Export)
	students.POST("/import", authRequired, middleware.RequireRoles(models.RoleMarketing, models.RoleManager), rt.Students.Import)
	students.GET("/national-id/:nationalId", rt.Students.GetByNationalID)
	students.GET("/:id", rt.Students.Get)
	students.POST("", authRequired, middleware.RequireRoles(models.RoleMarketing, models.RoleManager), rt.Students.Create)
	students.PUT("/:id", rt.Students.Update)
	students.DELETE("/:id", rt.Students.Delete)

	crud(api.Group("/teachers"), rt.Teachers)
	crud(api.Group("/lessons"), rt.Lessons)
	crud(api.Group("/classes"), rt.Classes)
	crud(api.Group("/class-students"), rt.ClassStudents)
	crud(api.Group("/class-teachers"), rt.ClassTeachers)

	users := api.Group("/users")
	users.GET("", authRequired, middleware.RequireRoles(models.RoleManager), rt.Users.List)
	// open so an empty registry can create its first manager
	users.POST("", rt.Users.Create)

	api.GET("/system/metrics", authRequired, middleware.RequireRoles(models.RoleManager), rt.Metrics.Summary)
}

func crud(g *gin.RouterGroup, h crudHandler) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}
