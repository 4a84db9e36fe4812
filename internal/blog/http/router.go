package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/quill/internal/blog/graphql"
	"github.com/aussiebroadwan/quill/internal/blog/images"
	"github.com/aussiebroadwan/quill/internal/blog/service"
	"github.com/aussiebroadwan/quill/internal/blog/store"
	"github.com/aussiebroadwan/quill/pkg/httpx"
	"github.com/aussiebroadwan/quill/pkg/slogx"

	_ "github.com/aussiebroadwan/quill/api/blog" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store  store.Store
	images *images.Store

	TokenService *service.TokenService
	UserService  *service.UserService
	PostService  *service.PostService

	// MaxUploadBytes caps a /post-image request (DefaultMaxUploadBytes when 0).
	MaxUploadBytes int64
	// GraphiQL serves the in-browser IDE at /graphiql.
	GraphiQL bool
}

func NewRouter(
	tokens *service.TokenService,
	buildVersion string,
	st store.Store,
	imgs *images.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		store:        st,
		images:       imgs,
		TokenService: tokens,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(),
		IdentityMiddleware(tokens),
	}

	return r
}

// ApplyRoutes registers every route. It fails only when the GraphQL schema
// cannot be bound to the resolvers.
func (r *Router) ApplyRoutes() error {
	if err := r.registerGraphQL(); err != nil {
		return err
	}
	r.registerImages()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
	return nil
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Quill Blog Service API
//	@version		0.1.0
//	@description	REST surface of the Quill blog. Users, posts and statuses are served by the GraphQL endpoint at /graphql;
//	@description	the routes documented here handle image uploads and health probes.
//	@description
//	@description				Tokens are obtained from the login query and signed with HS256.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/quill
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Login token. Format: "Bearer {token}" or the bare token.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerGraphQL() error {
	schema, err := graphql.NewSchema(&graphql.Resolver{
		UserService: r.UserService,
		PostService: r.PostService,
	})
	if err != nil {
		return err
	}

	// Login and registration go through here too, so limit by IP
	h := httpx.Chain(&graphql.Handler{Schema: schema},
		httpx.RateLimitByIP(httpx.GraphQLLimit),
	)
	r.Mux.Handle("POST /graphql", h)
	r.Mux.Handle("GET /graphql", h)

	if r.GraphiQL {
		r.Mux.Handle("GET /graphiql", graphql.GraphiQLHandler("/graphql"))
	}
	return nil
}

func (r *Router) registerImages() {
	h := &ImagesHandler{Images: r.images, MaxUploadBytes: r.MaxUploadBytes}

	r.Mux.Handle("PUT /post-image",
		httpx.Chain(http.HandlerFunc(h.HandleUpload),
			httpx.RateLimitByUser(httpx.UploadLimit),
		),
	)
	r.Mux.Handle("PUT /delete-image",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.RateLimitByUser(httpx.UploadLimit),
		),
	)

	// Static files; directory listings are not served
	files := http.StripPrefix("/"+images.URLPrefix+"/", http.FileServer(http.Dir(r.images.Root())))
	r.Mux.Handle("GET /"+images.URLPrefix+"/",
		httpx.Chain(noDirListing(files),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.TokenService),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func noDirListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
