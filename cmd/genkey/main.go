package main

import (
	"fmt"
	"os"
	"strings"

	"realty_backend/internal/auth"
	"realty_backend/internal/config"
	"realty_backend/internal/models"

	"github.com/spf13/pflag"
)

func main() {
	email := pflag.StringP("email", "e", "", "email the key is issued for")
	role := pflag.StringP("role", "r", string(models.UserRoleRealtor), "REALTOR or ADMIN")
	secret := pflag.String("secret", "", "product key secret (defaults to PRODUCT_KEY from config)")
	pflag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "--email is required")
		pflag.Usage()
		os.Exit(2)
	}

	userRole := models.UserRole(strings.ToUpper(*role))
	if !userRole.IsPrivileged() {
		fmt.Fprintf(os.Stderr, "role must be REALTOR or ADMIN, got %q\n", *role)
		os.Exit(2)
	}

	key := *secret
	if key == "" {
		cfg, err := config.LoadUnvalidated()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
		key = cfg.Auth.ProductKey
	}
	if key == "" {
		fmt.Fprintln(os.Stderr, "product key secret is not configured (PRODUCT_KEY or --secret)")
		os.Exit(1)
	}

	productKey, err := auth.NewProductKeyIssuer(key).IssueProductKey(*email, userRole)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to issue product key: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(productKey)
}
