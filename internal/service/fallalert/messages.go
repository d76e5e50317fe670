package fallalert

import (
	"fmt"
	"math"
	"time"

	"github.com/heartmarshall/carealert-backend/internal/domain"
	"github.com/heartmarshall/carealert-backend/internal/service/notify"
)

const (
	emailSubject = "🚨 URGENT: Fall Detected!"
	timeLayout   = "Jan 2, 2006 3:04 PM"
)

func (s *Service) formatTime(t time.Time) string {
	return t.In(s.opts.Location).Format(timeLayout)
}

func confidencePercent(c *float64) string {
	if c == nil {
		return ""
	}
	return fmt.Sprintf("%d%%", int(math.Round(*c*100)))
}

func (s *Service) pushMessage(a *domain.FallAlert, elderlyName string) notify.Message {
	body := "Fall detected at " + s.formatTime(a.DetectedAt)
	if pct := confidencePercent(a.Confidence); pct != "" {
		body += " (confidence " + pct + ")"
	}
	body += ". Please check immediately."

	return notify.Message{
		Category: domain.CategoryFallAlert,
		UserID:   &a.UserID,
		Title:    "🚨 Fall Alert: " + elderlyName,
		Body:     body,
		Tag:      "fall-alert-" + a.ID.String(),
		URL:      "/dashboard",
		Data:     map[string]string{"fallAlertId": a.ID.String()},
		Urgent:   true,
	}
}

func (s *Service) emailMessage(a *domain.FallAlert, elderlyName, recipientName string) notify.Message {
	var image string
	if a.ImageURL != nil {
		image = *a.ImageURL
	}
	return notify.Message{
		Category: domain.CategoryFallAlert,
		UserID:   &a.UserID,
		Title:    emailSubject,
		Template: notify.TemplateFallAlert,
		TemplateData: notify.FallAlertEmail{
			RecipientName: recipientName,
			ElderlyName:   elderlyName,
			DetectedAt:    s.formatTime(a.DetectedAt),
			Confidence:    confidencePercent(a.Confidence),
			ImageURL:      image,
			DashboardURL:  s.opts.DashboardURL,
		},
		Urgent: true,
	}
}

func (s *Service) escalationMessage(a *domain.FallAlert) notify.Message {
	return notify.Message{
		Category: domain.CategoryEscalation,
		UserID:   &a.UserID,
		Body: fmt.Sprintf("🚨 URGENT: %s fell at %s. Alert not acknowledged. Please respond immediately!",
			a.UserName, s.formatTime(a.DetectedAt)),
		Urgent: true,
	}
}
