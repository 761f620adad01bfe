package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"billed-fe-svc/internal/config"
	"billed-fe-svc/internal/models"
	"billed-fe-svc/internal/session"
	"billed-fe-svc/pkg/logger"
)

// devtoken signs a session token with JWT_SECRET so the pages can be used
// without the bills API login flow. Print it and set it as the session cookie.
func main() {
	email := flag.String("email", "employee@test.tld", "session email")
	userType := flag.String("type", models.UserTypeEmployee, "session user type")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	// stdout carries only the token
	appLogger.SetOutput(os.Stderr)

	token, err := session.NewDecoder(cfg.Session.JWTSecret).Issue(models.Session{
		Type:  *userType,
		Email: *email,
	}, *ttl)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to issue session token")
	}

	appLogger.WithFields(map[string]interface{}{
		"email":  *email,
		"type":   *userType,
		"cookie": cfg.Session.CookieName,
	}).Info("Session token issued")
	fmt.Println(token)
}
