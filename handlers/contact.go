package handlers

import (
	"fmt"
	"net/http"
	"net/smtp"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/frebomedia/freboapi/models"
)

type contactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Category string `json:"category"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

// Contact stores a contact-form submission and notifies the site owner by
// mail when SMTP is configured. A mail failure is logged but does not fail
// the request: the row is already saved.
func (h *Handler) Contact(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name, email, subject and message are required")
	}
	if !strings.Contains(req.Email, "@") {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid email address")
	}

	row := &models.ContactRequest{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if p := strings.TrimSpace(req.Phone); p != "" {
		row.Phone = &p
	}
	if cat := strings.TrimSpace(req.Category); cat != "" {
		row.Category = &cat
	}

	if err := h.contacts.Create(c.Request().Context(), row); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if h.cfg.SMTPHost != "" {
		if err := h.notifyOwner(row); err != nil {
			zap.L().Error("contact notification failed", zap.Error(err))
		}
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message": "Your request has been received. We will get back to you soon!",
	})
}

func (h *Handler) notifyOwner(row *models.ContactRequest) error {
	cfg := h.cfg
	body := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Kontaktanfrage: %s\r\n\r\nName: %s\nEmail: %s\n\n%s\r\n",
		cfg.MailFrom, cfg.MailTo, row.Subject, row.Name, row.Email, row.Message,
	)

	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	addr := cfg.SMTPHost + ":" + cfg.SMTPPort
	return smtp.SendMail(addr, auth, cfg.MailFrom, []string{cfg.MailTo}, []byte(body))
}
