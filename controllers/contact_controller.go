package controllers

import (
	"context"
	"log"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"agricola-shop/models"
	"agricola-shop/utils"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type ContactStore interface {
	Save(ctx context.Context, sub *models.ContactSubmission) error
}

type ContactMailer interface {
	SendContactNotification(sub *models.ContactSubmission) error
}

type ContactController struct {
	Store  ContactStore
	Mailer ContactMailer // nil disables notifications
	Page   string
}

// Submit godoc
// @Summary Submit the contact form
// @Description Validate and persist a contact form submission
// @Tags Contact
// @Accept json
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Router /api/contact [post]
func (ctrl *ContactController) Submit(c *gin.Context) {
	var req models.ContactRequest
	// A malformed body behaves like an empty form and fails the first
	// validation below, matching the site's previous behavior.
	_ = c.ShouldBindJSON(&req)

	// Honeypot: bots that fill the hidden field get a success response
	// and nothing is validated or stored.
	if strings.TrimSpace(req.Website) != "" {
		c.JSON(200, gin.H{"ok": true})
		return
	}

	sub := &models.ContactSubmission{
		Name:    clamp(req.Name, 120),
		Email:   strings.ToLower(clamp(req.Email, 180)),
		Phone:   clamp(req.Phone, 40),
		Subject: clamp(req.Subject, 40),
		Message: clamp(req.Message, 4000),
		Consent: req.Privacy,
		Source:  "web",
		Page:    ctrl.Page,
	}

	if utf8.RuneCountInString(sub.Name) < 2 {
		c.JSON(400, gin.H{"error": "Nome non valido"})
		return
	}
	if sub.Email == "" || !emailPattern.MatchString(sub.Email) {
		c.JSON(400, gin.H{"error": "Email non valida"})
		return
	}
	if sub.Subject == "" {
		c.JSON(400, gin.H{"error": "Seleziona un oggetto"})
		return
	}
	if utf8.RuneCountInString(sub.Message) < 10 {
		c.JSON(400, gin.H{"error": "Messaggio troppo breve"})
		return
	}
	if !sub.Consent {
		c.JSON(400, gin.H{"error": "Consenso privacy obbligatorio"})
		return
	}

	if ip := clientAddress(c); ip != "" {
		hash := utils.HashIP(ip)
		sub.IPHash = &hash
	}

	if err := ctrl.Store.Save(c.Request.Context(), sub); err != nil {
		log.Printf("contact insert error: %v", err)
		c.JSON(500, gin.H{"error": "Errore server"})
		return
	}

	if ctrl.Mailer != nil {
		if err := ctrl.Mailer.SendContactNotification(sub); err != nil {
			log.Printf("contact notification error: %v", err)
		}
	}

	c.JSON(200, gin.H{"ok": true})
}

// clamp trims and truncates to max characters, never splitting a
// multibyte character.
func clamp(s string, max int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

// clientAddress picks the first forwarded-for hop, falling back to the
// raw connection address.
func clientAddress(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		first := strings.TrimSpace(strings.Split(fwd, ",")[0])
		if first != "" {
			return first
		}
	}
	return c.RemoteIP()
}
