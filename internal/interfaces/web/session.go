package web

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/rmaia/estoque-web/pkg/config"
)

// Chaves guardadas na sessão. A sessão carrega um único campo de identidade:
// o ID da empresa autenticada. As flashes são consumidas na próxima renderização.
const (
	sessionEmpresaID = "empresa_id"
	flashSuccessKey  = "flash_success"
	flashErrorKey    = "flash_error"
)

// SessionManager encapsula o store de sessões do Fiber: identidade da empresa
// logada e mensagens flash (semântica do express-flash da aplicação original).
type SessionManager struct {
	store *session.Store
}

// NewSessionManager cria o store com cookie HTTPOnly/SameSite Lax.
func NewSessionManager(cfg config.SessionConfig) *SessionManager {
	store := session.New(session.Config{
		KeyLookup:      "cookie:" + cfg.CookieName,
		Expiration:     time.Duration(cfg.Expiration) * time.Minute,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	return &SessionManager{store: store}
}

// EmpresaID devolve o ID da empresa logada, ou "" sem sessão válida.
func (m *SessionManager) EmpresaID(c *fiber.Ctx) string {
	sess, err := m.store.Get(c)
	if err != nil {
		return ""
	}
	id, _ := sess.Get(sessionEmpresaID).(string)
	return id
}

// Login grava o ID da empresa na sessão.
func (m *SessionManager) Login(c *fiber.Ctx, empresaID string) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(sessionEmpresaID, empresaID)
	return sess.Save()
}

// Logout destrói a sessão.
func (m *SessionManager) Logout(c *fiber.Ctx) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// FlashSuccess registra uma mensagem de sucesso para a próxima renderização.
func (m *SessionManager) FlashSuccess(c *fiber.Ctx, msg string) {
	m.setFlash(c, flashSuccessKey, msg)
}

// FlashError registra uma mensagem de erro para a próxima renderização.
func (m *SessionManager) FlashError(c *fiber.Ctx, msg string) {
	m.setFlash(c, flashErrorKey, msg)
}

func (m *SessionManager) setFlash(c *fiber.Ctx, key, msg string) {
	sess, err := m.store.Get(c)
	if err != nil {
		return
	}
	sess.Set(key, msg)
	_ = sess.Save()
}

// PopFlashes consome e devolve as mensagens flash pendentes.
func (m *SessionManager) PopFlashes(c *fiber.Ctx) (success, errMsg string) {
	sess, err := m.store.Get(c)
	if err != nil {
		return "", ""
	}
	success, _ = sess.Get(flashSuccessKey).(string)
	errMsg, _ = sess.Get(flashErrorKey).(string)
	if success != "" || errMsg != "" {
		sess.Delete(flashSuccessKey)
		sess.Delete(flashErrorKey)
		_ = sess.Save()
	}
	return success, errMsg
}

// RequireEmpresa é o gate de autenticação: sem empresa na sessão, registra a
// flash de erro e redireciona para o login; caso contrário passa adiante.
func (m *SessionManager) RequireEmpresa() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m.EmpresaID(c) == "" {
			m.FlashError(c, "Você precisa estar logado para acessar esta página.")
			return c.Redirect("/loginEmpresa")
		}
		return c.Next()
	}
}
