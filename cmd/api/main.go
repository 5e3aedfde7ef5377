//go:build lambda
// +build lambda

package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"github.com/gin-gonic/gin"
	"github.com/regime-co/regime-api/apps/api/server"
	"github.com/regime-co/regime-api/libs/go/logger"
	"go.uber.org/zap"
)

// @title           Regime API
// @version         1.0
// @description     Storefront and admin API for the Regime skincare shop

// @contact.name   Regime Support
// @contact.email  care@regime.example

// @host      localhost:8000
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the Supabase access token.

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

var ginLambda *ginadapter.GinLambda

func init() {
	logger.InitLogger(os.Getenv("STAGE"))

	r := gin.New()
	r.Use(gin.Recovery())

	server.InitializeHandlers()
	server.InitializeRoutes(r)

	ginLambda = ginadapter.New(r)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.String("request", spew.Sdump(req.RequestContext)),
	)

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer func() { _ = logger.Sync() }()
	lambda.Start(Handler)
}
