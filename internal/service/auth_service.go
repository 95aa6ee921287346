package service

import (
	"mbo_backend/internal/config"
	"mbo_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

// AuthService 单用户登录。账号和口令哈希都来自配置文件
type AuthService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

// Enabled 未配置口令哈希时认证关闭
func (s *AuthService) Enabled() bool {
	return s.cfg.Auth.PasswordHash != ""
}

func (s *AuthService) Login(username, password string) (string, error) {
	if username != s.cfg.Auth.Username {
		return "", util.ErrLoginFailed
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Auth.PasswordHash), []byte(password)); err != nil {
		return "", util.ErrLoginFailed
	}
	return util.GenerateJWT(username, s.cfg.Auth.JWTSecret, s.cfg.Auth.ExpireTime)
}
