package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsclient "github.com/regime-co/regime-api/libs/go/client/aws"
	"github.com/regime-co/regime-api/libs/go/client/email"
	appconfig "github.com/regime-co/regime-api/libs/go/config"
	"github.com/regime-co/regime-api/libs/go/interfaces"
	"github.com/regime-co/regime-api/libs/go/logger"
	"github.com/regime-co/regime-api/libs/go/services"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger.InitLogger(os.Getenv("STAGE"))
	defer func() { _ = logger.Sync() }()

	cfg, err := appconfig.Parse()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		logger.Fatal("Failed to load AWS config", zap.Error(err))
	}
	secretsClient := awsclient.NewSecretsManagerClient(awsCfg)

	var sender interfaces.EmailSender
	resendAPIKey, err := secretsClient.GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY")
	if err != nil {
		logger.Warn("RESEND_API_KEY not set, emails are logged instead of sent", zap.Error(err))
		sender = email.NewLogSender()
	} else {
		sender = email.NewResendSender(resendAPIKey, cfg.EmailFromAddress, cfg.EmailFromName)
	}

	emailService := services.NewEmailService(sender, services.EmailBranding{
		ShopName:     cfg.ShopName,
		SupportEmail: cfg.SupportEmail,
	})

	app := NewApplication(emailService)
	logger.Info("Notification processor started", zap.String("stage", cfg.Stage))
	lambda.Start(app.HandleSQSEvent)
}
