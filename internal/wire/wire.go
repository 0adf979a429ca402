package wire

import (
	"Kazuru/internal/api"
	"Kazuru/internal/api/config"
	"Kazuru/internal/api/handler"
	"Kazuru/internal/job"
	"Kazuru/internal/pkg/cron"
	"Kazuru/internal/pkg/media"
	"Kazuru/internal/pkg/util"
	"Kazuru/internal/repository"
	"Kazuru/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer holds every top-level component the process runs.
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	mediaClient, err := media.NewClient(cfg.Cloudinary)
	if err != nil {
		return nil, err
	}
	rewriter := util.NewURLRewriter(cfg.Cloudinary.CloudName, cfg.Site.PublicBaseURL)

	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepository(db)
	tagCache := repository.NewRedisTagCache()

	userService := service.NewUserService(userRepo, postRepo, mediaClient)
	postService := service.NewPostService(postRepo, mediaClient, rewriter, cfg.Site.PageSize)
	uploadService := service.NewUploadService(postRepo, mediaClient, mediaClient, rewriter)
	tagService := service.NewTagService(postRepo, tagCache)

	handlers := &api.HandlersGroup{
		UserHandler:   handler.NewUserHandler(userService),
		PostHandler:   handler.NewPostHandler(postService),
		TagHandler:    handler.NewTagHandler(tagService),
		UploadHandler: handler.NewUploadHandler(uploadService),
		MediaHandler:  handler.NewMediaHandler(mediaClient),
		LegacyHandler: handler.NewLegacyHandler(cfg.Site.PageSize),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewTagCacheJob(postRepo, tagCache))

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
