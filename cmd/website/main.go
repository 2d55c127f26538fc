package main

import (
	"context"
	"embed"
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/awsconfig"
	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/mux"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/adamgokit/retrier"
	"github.com/adampresley/adamgokit/s3"
	"github.com/weissgruber/website/cmd/website/internal/catalogue"
	"github.com/weissgruber/website/cmd/website/internal/configuration"
	"github.com/weissgruber/website/cmd/website/internal/home"
	"github.com/weissgruber/website/cmd/website/internal/mapview"
	"github.com/weissgruber/website/pkg/mapscene"
	"github.com/weissgruber/website/pkg/models"
	"github.com/weissgruber/website/pkg/services"
	_ "gocloud.dev/blob/s3blob"
)

var (
	Version string = "development"
	appName string = "weissgruber-website"

	//go:embed app
	appFS embed.FS

	config configuration.Config

	/* Services */
	artworkLoader    services.ArtworkLoaderServicer
	assetService     services.AssetServicer
	catalogueService services.CatalogueServicer
	renderer         rendering.TemplateRenderer

	/* Controllers */
	catalogueController catalogue.CatalogueHandlers
	homeController      home.HomeHandlers
	mapController       mapview.MapHandlers
)

func main() {
	var (
		err      error
		artworks []models.Artwork
		checker  services.AssetChecker
	)

	config = configuration.LoadConfig()
	setupLogger(&config, Version)

	slog.Info("configuration loaded",
		slog.String("app", appName),
		slog.String("version", Version),
		slog.String("loglevel", config.LogLevel),
		slog.String("host", config.Host),
		slog.String("sourceURL", config.SourceURL),
		slog.String("sourceKey", config.SourceKey),
		slog.Bool("assetCheck", config.AssetCheck),
	)

	slog.Debug("setting up...")

	/*
	 * Setup services. The catalogue is loaded exactly once, before any
	 * controller exists.
	 */
	if config.AssetCheck {
		assetService = setupAssetService()

		if err = assetService.Refresh(); err != nil {
			panic(err)
		}

		checker = assetService
	}

	artworkLoader = services.NewArtworkLoader(services.ArtworkLoaderConfig{
		AssetChecker:        checker,
		GalleryImageBaseURL: config.GalleryImageBaseURL,
		MainImageBaseURL:    config.MainImageBaseURL,
		PlaceholderImageURL: config.PlaceholderImageURL,
		SourceKey:           config.SourceKey,
		SourceURL:           config.SourceURL,
	})

	if artworks, err = artworkLoader.Load(context.Background()); err != nil {
		panic(err)
	}

	slog.Info("catalogue loaded", "numArtworks", len(artworks))

	catalogueService = services.NewCatalogueService(services.CatalogueServiceConfig{
		Artworks: artworks,
	})

	renderer, err = rendering.NewGoTemplateRenderer(rendering.GoTemplateRendererConfig{
		TemplateDir:       "app",
		TemplateExtension: ".html",
		TemplateFS:        appFS,
		PagesDir:          "pages",
	})

	if err != nil {
		panic(err)
	}

	/*
	 * Setup controllers
	 */
	homeController = home.NewHomeController(home.HomeControllerConfig{
		CatalogueService: catalogueService,
		Renderer:         renderer,
	})

	catalogueController = catalogue.NewCatalogueController(catalogue.CatalogueControllerConfig{
		CatalogueService: catalogueService,
		NotFound:         homeController.NotFoundPage,
		Renderer:         renderer,
	})

	mapController = mapview.NewMapController(mapview.MapControllerConfig{
		CatalogueService: catalogueService,
		ClusterOptions: mapscene.ClusterOptions{
			RadiusPx:      float64(config.ClusterRadius),
			DisableAtZoom: config.ClusterDisableAtZoom,
			MaxZoom:       config.MapMaxZoom,
		},
		NotFound: homeController.NotFoundPage,
		Renderer: renderer,
		ViewportOptions: mapscene.ViewportOptions{
			WidthPx:   config.MapWidth,
			HeightPx:  config.MapHeight,
			PaddingPx: config.MapPadding,
			MaxZoom:   config.MapMaxZoom,
		},
	})

	/*
	 * Setup router and http server
	 */
	slog.Debug("setting up routes...")

	requestLogger := newRequestLoggerMiddleware([]string{"/static", "/heartbeat"})
	recovery := newRecoveryMiddleware(homeController.ErrorPage)
	pageMiddlewares := []mux.MiddlewareFunc{requestLogger, recovery}

	routes := []mux.Route{
		{Path: "GET /heartbeat", HandlerFunc: heartbeat},
		{Path: "GET /{$}", HandlerFunc: homeController.HomePage, Middlewares: pageMiddlewares},
		{Path: "GET /biography", HandlerFunc: homeController.BiographyPage, Middlewares: pageMiddlewares},
		{Path: "GET /publications", HandlerFunc: homeController.PublicationsPage, Middlewares: pageMiddlewares},
		{Path: "GET /exhibitions", HandlerFunc: homeController.ExhibitionsPage, Middlewares: pageMiddlewares},
		{Path: "GET /catalogue", HandlerFunc: catalogueController.CataloguePage, Middlewares: pageMiddlewares},
		{Path: "GET /catalogue/{id}", HandlerFunc: catalogueController.ArtworkPage, Middlewares: pageMiddlewares},
		{Path: "GET /catalogue/{id}/gallery", HandlerFunc: catalogueController.GalleryPartial, Middlewares: pageMiddlewares},
		{Path: "GET /catalogue/{id}/gallery/{direction}", HandlerFunc: catalogueController.GalleryStep, Middlewares: pageMiddlewares},
		{Path: "GET /catalogue/{id}/navigate/{direction}", HandlerFunc: catalogueController.NavigateStep, Middlewares: pageMiddlewares},
		{Path: "GET /map", HandlerFunc: mapController.MapPage, Middlewares: pageMiddlewares},
		{Path: "GET /map/decades/{decade}/toggle", HandlerFunc: mapController.ToggleDecade, Middlewares: pageMiddlewares},
		{Path: "GET /map/popup/{id}", HandlerFunc: mapController.Popup, Middlewares: pageMiddlewares},
		{Path: "GET /api/map/scene", HandlerFunc: mapController.SceneAPI, Middlewares: pageMiddlewares},
		{Path: "GET /api/map/clusters", HandlerFunc: mapController.ClustersAPI, Middlewares: pageMiddlewares},
		{Path: "GET /api/map/clusters/{clusterID}/spiderfy", HandlerFunc: mapController.SpiderfyAPI, Middlewares: pageMiddlewares},
		{Path: "GET /", HandlerFunc: homeController.NotFoundPage, Middlewares: pageMiddlewares},
	}

	routerConfig := mux.RouterConfig{
		Address:              config.Host,
		Debug:                Version == "development",
		ServeStaticContent:   true,
		StaticContentRootDir: "app",
		StaticContentPrefix:  "/static/",
		StaticFS:             appFS,
		HttpWriteTimeout:     60,
	}

	m := mux.SetupRouter(routerConfig, routes)
	httpServer, quit := mux.SetupServer(routerConfig, m)

	/*
	 * Wait for graceful shutdown
	 */
	slog.Info("server started")

	<-quit

	mux.Shutdown(httpServer)
	slog.Info("server stopped")
}

func heartbeat(w http.ResponseWriter, r *http.Request) {
	httphelpers.TextOK(w, "OK")
}

func setupAssetService() services.AssetServicer {
	var (
		err      error
		s3Client s3.S3Client
	)

	awsConfig := &awsconfig.Config{
		Endpoint:        config.AwsEndpointUrl,
		Region:          config.AwsRegion,
		AccessKeyID:     config.AwsAccessKeyId,
		SecretAccessKey: config.AwsSecretAccessKey,
	}

	retrier.Retry(func() error {
		if err = awsConfig.Load(); err != nil {
			slog.Error("failed to load AWS config. trying again", "error", err)
			return err
		}

		return nil
	})

	if err != nil {
		panic(err)
	}

	if s3Client, err = s3.NewClient(awsConfig); err != nil {
		panic(err)
	}

	return services.NewAssetService(services.AssetServiceConfig{
		Bucket:   config.AwsBucket,
		Prefix:   config.AssetPrefix,
		S3Client: s3Client,
	})
}
