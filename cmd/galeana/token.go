package main

import (
	"fmt"
	"time"

	"galeana-pepper/domain"
	"galeana-pepper/internal/utils"
	"galeana-pepper/pkg/jwt"

	"github.com/spf13/cobra"
)

var (
	tokenSubject string
	tokenRole    string
	tokenTTL     time.Duration
)

// tokenCmd mints a bearer token for local development; production tokens come
// from the identity provider sharing JWT_SECRET.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print a signed operator token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if tokenRole != domain.RoleOperador && tokenRole != domain.RoleSupervisor {
			return fmt.Errorf("unknown role %q", tokenRole)
		}
		jwtService := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"), utils.GetConfig("JWT_ISSUER"))
		token, err := jwtService.GenerateToken(tokenSubject, tokenRole, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "operador", "Token subject recorded as actor")
	tokenCmd.Flags().StringVar(&tokenRole, "role", domain.RoleOperador, "operador or supervisor")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 12*time.Hour, "Token lifetime")
}
