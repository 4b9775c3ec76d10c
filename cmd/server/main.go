package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/luvremak/db-coursework/internal/config"
	"github.com/luvremak/db-coursework/internal/dal"
	"github.com/luvremak/db-coursework/internal/db"
	"github.com/luvremak/db-coursework/internal/handler"
	"github.com/luvremak/db-coursework/internal/logger"
	"github.com/luvremak/db-coursework/internal/middleware"
	"github.com/luvremak/db-coursework/internal/service"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	gdb, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := db.Migrate(gdb); err != nil {
		slog.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	companyDAL, err := dal.NewCompanyDAL(gdb)
	if err != nil {
		slog.Error("dal init failed", "err", err)
		os.Exit(1)
	}
	projectDAL, err := dal.NewProjectDAL(gdb)
	if err != nil {
		slog.Error("dal init failed", "err", err)
		os.Exit(1)
	}
	employeeDAL, err := dal.NewEmployeeDAL(gdb)
	if err != nil {
		slog.Error("dal init failed", "err", err)
		os.Exit(1)
	}
	taskDAL, err := dal.NewTaskDAL(gdb)
	if err != nil {
		slog.Error("dal init failed", "err", err)
		os.Exit(1)
	}
	timeEntryDAL, err := dal.NewTimeEntryDAL(gdb)
	if err != nil {
		slog.Error("dal init failed", "err", err)
		os.Exit(1)
	}

	companySvc := service.NewCompanyService(companyDAL)
	employeeSvc := service.NewEmployeeService(employeeDAL, companySvc)
	projectSvc := service.NewProjectService(projectDAL, companySvc)
	taskSvc := service.NewTaskService(taskDAL, projectSvc, employeeSvc, companySvc)
	trackingSvc := service.NewTimeTrackingService(timeEntryDAL)
	authSvc := service.NewAuthService(cfg.Auth)

	authH := handler.NewAuthHandler(authSvc)
	companyH := handler.NewCompanyHandler(companySvc)
	projectH := handler.NewProjectHandler(projectSvc)
	employeeH := handler.NewEmployeeHandler(employeeSvc)
	taskH := handler.NewTaskHandler(taskSvc)
	trackingH := handler.NewTimeTrackingHandler(trackingSvc)

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.POST("/api/auth/token", authH.Token)

	api := r.Group("/api", middleware.JWTAuth([]byte(cfg.Auth.JWTSecret)))

	api.POST("/companies", companyH.Create)
	api.GET("/companies", companyH.Mine)
	api.GET("/companies/:id", companyH.Details)
	api.DELETE("/companies/:id", companyH.Delete)
	api.GET("/companies/:id/projects", projectH.ListByCompany)
	api.GET("/companies/:id/employees", employeeH.ListByCompany)
	api.GET("/companies/:id/reports/projects", trackingH.ProjectStats)
	api.GET("/companies/:id/reports/employees", trackingH.EmployeeStats)

	api.POST("/projects", projectH.Create)
	api.GET("/projects/:id", projectH.Details)
	api.DELETE("/projects/:id", projectH.Delete)
	api.GET("/projects/:id/tasks", taskH.ListByProject)

	api.POST("/employees", employeeH.Create)
	api.GET("/employees/:id", employeeH.Details)
	api.DELETE("/employees/:id", employeeH.Delete)
	api.PATCH("/employees/:id/display-name", employeeH.SetDisplayName)
	api.PATCH("/employees/:id/salary", employeeH.SetSalary)
	api.PATCH("/employees/:id/active", employeeH.SetActive)

	api.POST("/tasks", taskH.Create)
	api.GET("/tasks", taskH.Mine)
	api.GET("/tasks/deadlines", taskH.SoonDeadlines)
	api.GET("/tasks/by-code/:company/:project/:task", taskH.ByFullCode)
	api.GET("/tasks/:id", taskH.Details)
	api.DELETE("/tasks/:id", taskH.Delete)
	api.PATCH("/tasks/:id/name", taskH.SetName)
	api.PATCH("/tasks/:id/description", taskH.SetDescription)
	api.PATCH("/tasks/:id/deadline", taskH.SetDeadline)
	api.PATCH("/tasks/:id/assignee", taskH.Assign)
	api.PATCH("/tasks/:id/status", taskH.SetStatus)

	api.POST("/time-entries", trackingH.Create)
	api.GET("/time-entries/total", trackingH.Total)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
