package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/digitpainter/vote-v4/docs"
	v1 "github.com/digitpainter/vote-v4/internal/api/handler/v1"
	"github.com/digitpainter/vote-v4/internal/api/middleware"
	"github.com/digitpainter/vote-v4/internal/config"
	"github.com/digitpainter/vote-v4/internal/domain"
	"github.com/digitpainter/vote-v4/internal/pkg/cas"
	"github.com/digitpainter/vote-v4/internal/repository"
	"github.com/digitpainter/vote-v4/internal/repository/dao"
	"github.com/digitpainter/vote-v4/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	sessions *service.SessionStore
	logs     *service.AdminLogService
}

func NewServer(conf *config.AppConfig, db *gorm.DB, redisClient *redis.Client) *Server {
	gin.SetMode(conf.API.GinMode)
	engine := gin.New()

	s := &Server{
		Config:   conf,
		Router:   engine,
		sessions: service.NewSessionStore(redisClient, conf.Redis.SessionTTL),
		logs:     service.NewAdminLogService(repository.NewAdminLogRepository(dao.NewAdminLogDAO(db))),
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	voteHandler := s.initVoteHandler(db)
	activityHandler := s.initActivityHandler(db)
	candidateHandler := s.initCandidateHandler(db)
	adminHandler := s.initAdminHandler(db)
	applicationHandler := s.initApplicationHandler(db)
	adminLogHandler := v1.NewAdminLogHandler(s.logs)
	uploadHandler := v1.NewUploadHandler(service.NewUploadService(conf), s.logs)
	collegeHandler := v1.NewCollegeHandler(conf.Colleges)

	s.MountHandlers(
		authHandler,
		voteHandler,
		activityHandler,
		candidateHandler,
		adminHandler,
		applicationHandler,
		adminLogHandler,
		uploadHandler,
		collegeHandler,
	)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	validator := cas.NewClient(s.Config.CAS.ServerURL, s.Config.CAS.ServiceURL)
	admins := repository.NewAdminRepository(dao.NewAdminDAO(db))
	svc := service.NewAuthService(validator, admins, s.sessions)
	handler := v1.NewAuthHandler(svc)

	return handler
}

func (s *Server) initVoteHandler(db *gorm.DB) *v1.VoteHandler {
	repo := repository.NewVoteRepository(dao.NewVoteDAO(db))
	activities := repository.NewActivityRepository(dao.NewActivityDAO(db))
	svc := service.NewVoteService(repo, activities)
	handler := v1.NewVoteHandler(svc)

	return handler
}

func (s *Server) initActivityHandler(db *gorm.DB) *v1.ActivityHandler {
	repo := repository.NewActivityRepository(dao.NewActivityDAO(db))
	candidates := repository.NewCandidateRepository(dao.NewCandidateDAO(db))
	svc := service.NewActivityService(repo, candidates)
	handler := v1.NewActivityHandler(svc, s.logs)

	return handler
}

func (s *Server) initCandidateHandler(db *gorm.DB) *v1.CandidateHandler {
	repo := repository.NewCandidateRepository(dao.NewCandidateDAO(db))
	svc := service.NewCandidateService(repo)
	handler := v1.NewCandidateHandler(svc, s.logs)

	return handler
}

func (s *Server) initAdminHandler(db *gorm.DB) *v1.AdminHandler {
	repo := repository.NewAdminRepository(dao.NewAdminDAO(db))
	svc := service.NewAdminService(repo)
	handler := v1.NewAdminHandler(svc, s.logs)

	return handler
}

func (s *Server) initApplicationHandler(db *gorm.DB) *v1.ApplicationHandler {
	repo := repository.NewApplicationRepository(dao.NewApplicationDAO(db))
	admins := repository.NewAdminRepository(dao.NewAdminDAO(db))
	svc := service.NewApplicationService(repo, admins)
	handler := v1.NewApplicationHandler(svc, s.logs)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	voteHandler *v1.VoteHandler,
	activityHandler *v1.ActivityHandler,
	candidateHandler *v1.CandidateHandler,
	adminHandler *v1.AdminHandler,
	applicationHandler *v1.ApplicationHandler,
	adminLogHandler *v1.AdminLogHandler,
	uploadHandler *v1.UploadHandler,
	collegeHandler *v1.CollegeHandler,
) {
	auth := middleware.NewAuthenticator(s.sessions)
	anySession := auth.RequireSession(nil, nil)
	anyAdmin := auth.RequireSession(nil, []string{domain.AdminTypeSchool, domain.AdminTypeCollege})
	schoolAdmin := auth.RequireSession(nil, []string{domain.AdminTypeSchool})

	public := s.Router.Group("")
	{
		public.GET("/auth/cas-login", authHandler.HandleCASLogin)
		public.GET("/auth/cas-callback", authHandler.HandleCASCallback)
		public.GET("/college-mapping", collegeHandler.HandleGetCollegeMapping)
	}

	authenticated := s.Router.Group("", anySession)
	{
		authenticated.GET("/auth/users/me", authHandler.HandleGetMe)
		authenticated.POST("/auth/logout", authHandler.HandleLogout)

		authenticated.GET("/vote/activities", activityHandler.HandleGetActivities)
		authenticated.GET("/vote/activities/active", activityHandler.HandleGetActiveActivities)
		authenticated.GET("/vote/activities/:id", activityHandler.HandleGetActivity)
		authenticated.GET("/vote/candidates", candidateHandler.HandleGetCandidates)
		authenticated.GET("/vote/candidates/batch", candidateHandler.HandleGetCandidatesBatch)
		authenticated.GET("/vote/candidates/:id", candidateHandler.HandleGetCandidate)

		authenticated.POST("/vote/vote/batch", voteHandler.HandleBulkVote)
		authenticated.GET("/vote/votes/me", voteHandler.HandleMyVotes)

		authenticated.POST("/admin/applications", applicationHandler.HandleCreateApplication)
		authenticated.GET("/admin/applications/me", applicationHandler.HandleGetMyApplications)
	}

	admins := s.Router.Group("", anyAdmin)
	{
		admins.POST("/vote/candidates", candidateHandler.HandleCreateCandidate)
		admins.PUT("/vote/candidates/:id", candidateHandler.HandleUpdateCandidate)
		admins.DELETE("/vote/candidates/:id", candidateHandler.HandleDeleteCandidate)
		// College admins manage their candidates' photos too.
		admins.POST("/admin/upload/image", uploadHandler.HandleUploadImage)
	}

	school := s.Router.Group("", schoolAdmin)
	{
		school.POST("/vote/activities", activityHandler.HandleCreateActivity)
		school.PUT("/vote/activities/:id", activityHandler.HandleUpdateActivity)
		school.DELETE("/vote/activities/:id", activityHandler.HandleDeleteActivity)
		school.PUT("/vote/activities/:id/activate", activityHandler.HandleActivateActivity)
		school.PUT("/vote/activities/:id/deactivate", activityHandler.HandleDeactivateActivity)
		school.GET("/vote/activities/:id/results", voteHandler.HandleActivityResults)

		school.POST("/admin/admins", adminHandler.HandleCreateAdmin)
		school.GET("/admin/admins", adminHandler.HandleGetAdmins)
		school.GET("/admin/admins/:staff_id", adminHandler.HandleGetAdmin)
		school.PUT("/admin/admins/:staff_id", adminHandler.HandleUpdateAdmin)
		school.DELETE("/admin/admins/:staff_id", adminHandler.HandleDeleteAdmin)

		school.GET("/admin/applications", applicationHandler.HandleGetApplications)
		school.POST("/admin/applications/:id/review", applicationHandler.HandleReviewApplication)

		school.GET("/admin-logs", adminLogHandler.HandleGetAdminLogs)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.Static("/uploads/images", s.Config.Upload.Dir)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "Campus Voting API"
	docs.SwaggerInfo.Description = "Election backend with SSO login, scoped admins and batch voting."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
