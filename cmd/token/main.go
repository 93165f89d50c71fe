// token 簽發開發用的 access token，管理者帳號無法經由公開註冊建立
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go-gin-checkout/config"
	"go-gin-checkout/internal/model"
	"go-gin-checkout/pkg/auth"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	userID := flag.Int("user", 0, "user id")
	cartID := flag.Int("cart", 0, "cart id")
	role := flag.String("role", string(model.RoleUser), "user | premium | admin")
	flag.Parse()

	_ = godotenv.Load()

	var cfg config.AuthConfig
	if err := envconfig.Process("", &cfg); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	token, err := auth.MintAccessToken(cfg, time.Now(), &model.User{
		ID:     *userID,
		CartID: *cartID,
		Role:   model.UserRole(*role),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "mint:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
