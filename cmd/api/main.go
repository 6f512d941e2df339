package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// @title           Locksmith Invoicing API
// @version         1.0
// @description     Records locksmith jobs as lines on daily QuickBooks Online invoices.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
