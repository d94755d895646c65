package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	httpapi "github.com/yamada-kensetsu/corporate-backend/internal/api/http"
	"github.com/yamada-kensetsu/corporate-backend/internal/api/http/middleware"
	"github.com/yamada-kensetsu/corporate-backend/internal/cache"
	cataloghttp "github.com/yamada-kensetsu/corporate-backend/internal/catalog/http"
	catalogrepo "github.com/yamada-kensetsu/corporate-backend/internal/catalog/repository"
	"github.com/yamada-kensetsu/corporate-backend/internal/contact"
	"github.com/yamada-kensetsu/corporate-backend/internal/news"
)

type RouterDeps struct {
	ServiceName  string
	Version      string
	DB           *pgxpool.Pool
	Cache        *cache.Store // nil disables the read cache
	CORSOrigins  []string
	ContactRPM   int
	ContactBurst int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins: dep.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "X-Request-Id"},
		MaxAge:       12 * time.Hour,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	// Typed nil must not reach the handlers' interface fields.
	var catalogCache cataloghttp.Cache
	var newsCache news.Cache
	if dep.Cache != nil {
		catalogCache = dep.Cache
		newsCache = dep.Cache
	}

	api := r.Group("/api")

	projectRepo := catalogrepo.NewProjectRepository(dep.DB)
	cataloghttp.NewHandler(projectRepo, catalogCache).Register(api.Group("/projects"))

	newsRepo := news.NewRepo(dep.DB)
	news.NewHandler(newsRepo, newsCache).Register(api.Group("/news"))

	contactGroup := api.Group("/contact")
	contactGroup.Use(middleware.RateLimit(dep.ContactRPM, dep.ContactBurst))
	contact.NewHandler(contact.NewRepo(dep.DB)).Register(contactGroup)

	return r
}
